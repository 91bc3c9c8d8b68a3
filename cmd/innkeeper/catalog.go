package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/innkeeper/internal/entities"
	"github.com/KirkDiggler/innkeeper/internal/repositories/catalog"
)

var (
	catalogPath     string
	catalogCategory string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List placeable objects",
	RunE:  runCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&catalogPath, "file", "", "catalog file (YAML); empty uses the built-in catalog")
	catalogCmd.Flags().StringVar(&catalogCategory, "category", "", "only list floor, furniture, wall or decoration")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	defs, err := loadCatalog(catalogPath)
	if err != nil {
		return err
	}
	repo, err := catalog.NewInMemory(&catalog.Config{Definitions: defs})
	if err != nil {
		return fmt.Errorf("failed to create catalog: %w", err)
	}

	input := catalog.ListInput{}
	if catalogCategory != "" {
		cat, ok := entities.ParseCategory(catalogCategory)
		if !ok {
			return fmt.Errorf("unknown category %q", catalogCategory)
		}
		input.Category = &cat
	}

	out, err := repo.List(context.Background(), input)
	if err != nil {
		return fmt.Errorf("failed to list catalog: %w", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tSIZE\tPRICE\tTAGS")
	for _, d := range out.Definitions {
		fmt.Fprintf(w, "%d\t%s\t%s\t%dx%d\t%d\t%s\n",
			d.ID, d.Name, d.Category, d.Size.Width, d.Size.Depth, d.BasePrice, strings.Join(d.Tags, ","))
	}
	return w.Flush()
}
