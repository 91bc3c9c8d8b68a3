package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/innkeeper/internal/entities"
	"github.com/KirkDiggler/innkeeper/internal/grid"
)

var (
	fpWidth, fpDepth int
	fpX, fpY, fpZ    int
	fpDegrees        float64
)

var footprintCmd = &cobra.Command{
	Use:   "footprint",
	Short: "Print the cells an object covers",
	Long:  `Print the cells covered by an object of the given size anchored at a cell and rotated in quarter turns.`,
	RunE:  runFootprint,
}

func init() {
	footprintCmd.Flags().IntVar(&fpWidth, "width", 1, "width in cells before rotation")
	footprintCmd.Flags().IntVar(&fpDepth, "depth", 1, "depth in cells before rotation")
	footprintCmd.Flags().IntVar(&fpX, "x", 0, "anchor cell x")
	footprintCmd.Flags().IntVar(&fpY, "y", 0, "anchor cell level")
	footprintCmd.Flags().IntVar(&fpZ, "z", 0, "anchor cell z")
	footprintCmd.Flags().Float64Var(&fpDegrees, "rotation", 0, "rotation in degrees, snapped to quarter turns")
}

func runFootprint(cmd *cobra.Command, args []string) error {
	if fpWidth < 1 || fpDepth < 1 {
		return fmt.Errorf("size must be at least 1x1, got %dx%d", fpWidth, fpDepth)
	}

	rot := entities.RotationFromDegrees(fpDegrees)
	size := entities.Size{Width: fpWidth, Depth: fpDepth}
	cells := grid.ComputeFootprint(entities.Cell{X: fpX, Y: fpY, Z: fpZ}, size, rot)

	out := cmd.OutOrStdout()
	rotated := grid.RotatedSize(size, rot)
	fmt.Fprintf(out, "rotation %d°, rotated size %dx%d\n", rot.Degrees(), rotated.Width, rotated.Depth)
	for _, c := range cells {
		fmt.Fprintf(out, "  %s\n", c)
	}
	return nil
}
