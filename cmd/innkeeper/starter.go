package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/innkeeper/internal/engine/headless"
	"github.com/KirkDiggler/innkeeper/internal/entities"
	"github.com/KirkDiggler/innkeeper/internal/orchestrators/placement"
	"github.com/KirkDiggler/innkeeper/internal/simulation"
)

// Built-in catalog ids used by the starter room
const (
	woodFloor = 0
	singleBed = 10
	plainWall = 20
	door      = 21
)

type starterPiece struct {
	objectID int
	x, z     int
	turns    int
}

// starterPieces lay out a 2x2 bedroom on cells (6..7, 6..7) with the door on
// the north side. The bed goes in before the walls so its probe sees none.
var starterPieces = []starterPiece{
	{objectID: woodFloor, x: 6, z: 6},
	{objectID: woodFloor, x: 7, z: 6},
	{objectID: woodFloor, x: 6, z: 7},
	{objectID: woodFloor, x: 7, z: 7},
	{objectID: singleBed, x: 6, z: 6},
	{objectID: plainWall, x: 5, z: 6, turns: 1},
	{objectID: plainWall, x: 5, z: 7, turns: 1},
	{objectID: plainWall, x: 8, z: 6, turns: 1},
	{objectID: plainWall, x: 8, z: 7, turns: 1},
	{objectID: plainWall, x: 6, z: 5},
	{objectID: plainWall, x: 7, z: 5},
	{objectID: plainWall, x: 6, z: 8},
	{objectID: door, x: 7, z: 8},
}

// buildStarterRoom drives the placement orchestrator the way a player would
func buildStarterRoom(ctx context.Context, sim *simulation.Simulation, pointer *headless.Pointer) error {
	orch := sim.Placement()
	placed := 0

	for _, p := range starterPieces {
		if _, err := orch.StartPlacement(ctx, &placement.StartPlacementInput{ObjectID: p.objectID}); err != nil {
			return fmt.Errorf("select object %d: %w", p.objectID, err)
		}
		for i := 0; i < p.turns; i++ {
			if _, err := orch.Rotate(ctx); err != nil {
				return fmt.Errorf("rotate object %d: %w", p.objectID, err)
			}
		}

		pointer.MoveTo(entities.Vec3{X: float64(p.x) + 0.5, Z: float64(p.z) + 0.5})
		out, err := orch.CommitAtPointer(ctx)
		if err != nil {
			return fmt.Errorf("place object %d: %w", p.objectID, err)
		}
		if out.Placed {
			placed++
		} else {
			slog.Warn("Starter piece rejected", "object_id", p.objectID, "x", p.x, "z", p.z, "reason", out.Reason)
		}

		if err := orch.StopPlacement(ctx); err != nil {
			return fmt.Errorf("stop placement: %w", err)
		}
	}

	slog.Info("Starter room built", "placed", placed, "pieces", len(starterPieces))
	return nil
}
