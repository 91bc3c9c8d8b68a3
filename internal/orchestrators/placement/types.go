package placement

import (
	"fmt"

	"github.com/KirkDiggler/innkeeper/internal/engine"
	"github.com/KirkDiggler/innkeeper/internal/entities"
)

// State is the build mode of the orchestrator
type State int

// Build modes
const (
	StateIdle State = iota
	StateSelecting
	StateDragging
	StateDeleting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSelecting:
		return "selecting"
	case StateDragging:
		return "dragging"
	case StateDeleting:
		return "deleting"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Reasons a commit or delete did nothing
const (
	ReasonOverUI    = "pointer_over_ui"
	ReasonInvalid   = "invalid_placement"
	ReasonNoTarget  = "no_target"
	ReasonUntracked = "untracked_instance"
)

// StartPlacementInput selects the object to build
type StartPlacementInput struct {
	ObjectID int
}

// StartPlacementOutput returns the selected definition and preview instance
type StartPlacementOutput struct {
	Definition *entities.ObjectDefinition
	Preview    engine.Handle
}

// RotateOutput returns the new preview rotation
type RotateOutput struct {
	Rotation entities.Rotation
}

// CommitOutput describes one placement attempt. Rejections set Placed false
// and Reason; they are not errors.
type CommitOutput struct {
	Placed bool
	Reason string
	Anchor entities.Cell
	Cells  []entities.Cell
	Handle engine.Handle
	Record *entities.PlacementRecord
}

// DragOutput reports every step of a line placement
type DragOutput struct {
	Start   entities.Cell
	End     entities.Cell
	Steps   []*CommitOutput
	Placed  int
	Skipped int
}

// DeleteOutput describes a delete attempt
type DeleteOutput struct {
	Deleted bool
	Reason  string
	Handle  engine.Handle
	Record  *entities.PlacementRecord
}

// PreviewOutput is what the UI needs to tint the preview and draw cell indicators
type PreviewOutput struct {
	State    State
	Anchor   entities.Cell
	Rotation entities.Rotation
	Valid    bool
	Cells    []entities.Cell
	// Line holds the footprint cells of every drag step while dragging
	Line []entities.Cell
}
