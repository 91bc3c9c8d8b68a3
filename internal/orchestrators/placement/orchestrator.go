// Package placement drives the build tool: selecting an object, previewing
// it under the pointer, committing single and dragged placements, and the
// delete mode.
package placement

//go:generate mockgen -destination=mock/mock_service.go -package=placementmock github.com/KirkDiggler/innkeeper/internal/orchestrators/placement Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/innkeeper/internal/engine"
	"github.com/KirkDiggler/innkeeper/internal/entities"
	"github.com/KirkDiggler/innkeeper/internal/errors"
	"github.com/KirkDiggler/innkeeper/internal/grid"
	"github.com/KirkDiggler/innkeeper/internal/pkg/notify"
	"github.com/KirkDiggler/innkeeper/internal/repositories/catalog"
	"github.com/KirkDiggler/innkeeper/internal/services/validator"
)

// Service defines the build tool operations
type Service interface {
	// StartPlacement selects an object and spawns its preview. Any active
	// placement or delete mode is stopped first.
	StartPlacement(ctx context.Context, input *StartPlacementInput) (*StartPlacementOutput, error)

	// StopPlacement destroys the preview and returns to idle
	StopPlacement(ctx context.Context) error

	// Rotate turns the preview a quarter turn clockwise
	Rotate(ctx context.Context) (*RotateOutput, error)

	// CommitAtPointer places the selected object at the pointer cell
	CommitAtPointer(ctx context.Context) (*CommitOutput, error)

	// BeginDrag latches the pointer cell as the start of a line placement
	BeginDrag(ctx context.Context) error

	// EndDrag places the selected object along the dominant axis between the
	// latched cell and the pointer cell. Invalid steps are skipped.
	EndDrag(ctx context.Context) (*DragOutput, error)

	StartDelete(ctx context.Context) error
	StopDelete(ctx context.Context) error

	// DeleteAtPointer removes the clicked tracked instance
	DeleteAtPointer(ctx context.Context) (*DeleteOutput, error)

	// Preview follows the pointer and reports validity for the current cell
	Preview(ctx context.Context) (*PreviewOutput, error)

	State() State
	Rotation() entities.Rotation
}

// Config holds the dependencies for the placement orchestrator
type Config struct {
	Catalog      catalog.Repository
	Validator    validator.Validator
	Grids        *grid.Set
	Layout       engine.GridLayout
	Instantiator engine.Instantiator
	Pointer      engine.Pointer
	EventBus     events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Validator == nil {
		vb.RequiredField("Validator")
	}
	if c.Grids == nil {
		vb.RequiredField("Grids")
	}
	if c.Layout == nil {
		vb.RequiredField("Layout")
	}
	if c.Instantiator == nil {
		vb.RequiredField("Instantiator")
	}
	if c.Pointer == nil {
		vb.RequiredField("Pointer")
	}

	return vb.Build()
}

type orchestrator struct {
	catalog      catalog.Repository
	validator    validator.Validator
	grids        *grid.Set
	layout       engine.GridLayout
	instantiator engine.Instantiator
	pointer      engine.Pointer
	bus          events.EventBus
	source       *notify.Source

	mu        sync.Mutex
	state     State
	selected  *entities.ObjectDefinition
	rotation  entities.Rotation
	preview   engine.Handle
	dragStart entities.Cell
}

// NewOrchestrator creates a new placement orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		catalog:      cfg.Catalog,
		validator:    cfg.Validator,
		grids:        cfg.Grids,
		layout:       cfg.Layout,
		instantiator: cfg.Instantiator,
		pointer:      cfg.Pointer,
		bus:          cfg.EventBus,
		source:       notify.NewSource("placement", "build_tool"),
		state:        StateIdle,
		preview:      engine.NoHandle,
	}, nil
}

func (o *orchestrator) StartPlacement(ctx context.Context, input *StartPlacementInput) (*StartPlacementOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.stopLocked(ctx); err != nil {
		return nil, err
	}

	got, err := o.catalog.Get(ctx, catalog.GetInput{ID: input.ObjectID})
	if err != nil {
		slog.Warn("Unknown object selected", "object_id", input.ObjectID, "error", err)
		return nil, errors.Wrapf(err, "failed to select object %d", input.ObjectID)
	}
	def := got.Definition

	cell := o.pointerCell()
	h, err := o.instantiator.Instantiate(ctx, engine.InstanceSpec{
		Asset:    def.Asset,
		Position: o.positionFor(def, cell, 0),
		Layer:    engine.LayerNone,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to spawn preview")
	}

	o.selected = def
	o.rotation = 0
	o.preview = h
	o.state = StateSelecting

	slog.Info("Placement started",
		"object_id", def.ID,
		"name", def.Name,
		"category", def.Category.String(),
	)

	return &StartPlacementOutput{Definition: def, Preview: h}, nil
}

func (o *orchestrator) StopPlacement(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state != StateSelecting && o.state != StateDragging {
		return nil
	}
	return o.stopLocked(ctx)
}

// stopLocked leaves whatever mode is active and destroys the preview
func (o *orchestrator) stopLocked(ctx context.Context) error {
	if o.preview != engine.NoHandle {
		if err := o.instantiator.Destroy(ctx, o.preview); err != nil {
			return errors.Wrap(err, "failed to destroy preview")
		}
	}
	o.preview = engine.NoHandle
	o.selected = nil
	o.rotation = 0
	o.state = StateIdle
	return nil
}

func (o *orchestrator) Rotate(ctx context.Context) (*RotateOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state != StateSelecting {
		return nil, errors.FailedPreconditionf("cannot rotate while %s", o.state)
	}

	o.rotation = o.rotation.Next()
	if err := o.movePreview(ctx, o.pointerCell()); err != nil {
		return nil, err
	}

	return &RotateOutput{Rotation: o.rotation}, nil
}

func (o *orchestrator) CommitAtPointer(ctx context.Context) (*CommitOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state != StateSelecting {
		return nil, errors.FailedPreconditionf("cannot place while %s", o.state)
	}
	if o.pointer.OverUI() {
		return &CommitOutput{Reason: ReasonOverUI}, nil
	}

	return o.commit(ctx, o.pointerCell())
}

func (o *orchestrator) commit(ctx context.Context, anchor entities.Cell) (*CommitOutput, error) {
	def := o.selected
	out := &CommitOutput{
		Anchor: anchor,
		Cells:  grid.ComputeFootprint(anchor, def.Size, o.rotation),
		Handle: engine.NoHandle,
	}

	if !o.validator.IsPlacementValid(ctx, anchor, def, o.rotation) {
		out.Reason = ReasonInvalid
		return out, nil
	}

	h, err := o.instantiator.Instantiate(ctx, engine.InstanceSpec{
		Asset:    def.Asset,
		Position: o.positionFor(def, anchor, o.rotation),
		Rotation: o.rotation,
		Layer:    engine.LayerFor(def.Category),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to instantiate object %d", def.ID)
	}

	rec := o.grids.For(def.Category).Add(anchor, def.Size, def.ID, int(h), def.Category, o.rotation, def.IsWall)

	slog.Info("Object placed",
		"object_id", def.ID,
		"instance", int(h),
		"anchor", anchor.String(),
		"rotation", o.rotation.Degrees(),
	)

	err = notify.Publish(ctx, o.bus, notify.TopicPlacementCommitted, o.source, notify.Data{
		"object_id": def.ID,
		"instance":  int(h),
		"category":  def.Category.String(),
		"x":         anchor.X,
		"y":         anchor.Y,
		"z":         anchor.Z,
	})
	if err != nil {
		slog.Warn("Failed to publish placement", "error", err)
	}

	out.Placed = true
	out.Handle = h
	out.Record = rec
	return out, nil
}

func (o *orchestrator) BeginDrag(_ context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state != StateSelecting {
		return errors.FailedPreconditionf("cannot drag while %s", o.state)
	}
	if o.pointer.OverUI() {
		return nil
	}

	o.dragStart = o.pointerCell()
	o.state = StateDragging
	return nil
}

func (o *orchestrator) EndDrag(ctx context.Context) (*DragOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state != StateDragging {
		return nil, errors.FailedPreconditionf("no drag in progress while %s", o.state)
	}
	o.state = StateSelecting

	end := o.pointerCell()
	out := &DragOutput{Start: o.dragStart, End: end}
	for _, anchor := range lineCells(o.dragStart, end) {
		step, err := o.commit(ctx, anchor)
		if err != nil {
			return nil, err
		}
		out.Steps = append(out.Steps, step)
		if step.Placed {
			out.Placed++
		} else {
			out.Skipped++
		}
	}

	slog.Info("Line placement finished",
		"object_id", o.selected.ID,
		"start", out.Start.String(),
		"end", out.End.String(),
		"placed", out.Placed,
		"skipped", out.Skipped,
	)

	return out, nil
}

// lineCells walks from start toward end along whichever axis has the larger
// span; ties go to X. The other coordinate stays at start's.
func lineCells(start, end entities.Cell) []entities.Cell {
	dx, dz := end.X-start.X, end.Z-start.Z
	alongX := abs(dx) >= abs(dz)

	d := dz
	if alongX {
		d = dx
	}
	step := 1
	if d < 0 {
		step = -1
	}

	cells := make([]entities.Cell, 0, abs(d)+1)
	for i := 0; i <= abs(d); i++ {
		if alongX {
			cells = append(cells, start.Offset(i*step, 0))
		} else {
			cells = append(cells, start.Offset(0, i*step))
		}
	}
	return cells
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (o *orchestrator) StartDelete(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.stopLocked(ctx); err != nil {
		return err
	}
	o.state = StateDeleting
	slog.Info("Delete mode started")
	return nil
}

func (o *orchestrator) StopDelete(_ context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state == StateDeleting {
		o.state = StateIdle
	}
	return nil
}

func (o *orchestrator) DeleteAtPointer(ctx context.Context) (*DeleteOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state != StateDeleting {
		return nil, errors.FailedPreconditionf("cannot delete while %s", o.state)
	}
	if o.pointer.OverUI() {
		return &DeleteOutput{Reason: ReasonOverUI, Handle: engine.NoHandle}, nil
	}

	h, ok := o.pointer.ClickedInstance()
	if !ok {
		return &DeleteOutput{Reason: ReasonNoTarget, Handle: engine.NoHandle}, nil
	}

	occ, rec, found := o.grids.FindInstance(int(h))
	if !found {
		slog.Warn("Clicked instance is not tracked by any grid", "instance", int(h))
		return &DeleteOutput{Reason: ReasonUntracked, Handle: h}, nil
	}

	// the record stays while the instance is still in the scene
	if err := o.instantiator.Destroy(ctx, h); err != nil {
		return nil, errors.Wrapf(err, "failed to destroy instance %d", int(h))
	}
	occ.RemoveByInstance(int(h))

	slog.Info("Object removed",
		"object_id", rec.ObjectID,
		"instance", int(h),
		"category", rec.Category.String(),
	)

	err := notify.Publish(ctx, o.bus, notify.TopicPlacementRemoved, o.source, notify.Data{
		"object_id": rec.ObjectID,
		"instance":  int(h),
		"category":  rec.Category.String(),
	})
	if err != nil {
		slog.Warn("Failed to publish removal", "error", err)
	}

	return &DeleteOutput{Deleted: true, Handle: h, Record: rec}, nil
}

func (o *orchestrator) Preview(ctx context.Context) (*PreviewOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	out := &PreviewOutput{State: o.state, Rotation: o.rotation}
	if o.state != StateSelecting && o.state != StateDragging {
		return out, nil
	}

	cell := o.pointerCell()
	if err := o.movePreview(ctx, cell); err != nil {
		return nil, err
	}

	out.Anchor = cell
	out.Cells = grid.ComputeFootprint(cell, o.selected.Size, o.rotation)
	out.Valid = o.validator.IsPlacementValid(ctx, cell, o.selected, o.rotation)

	if o.state == StateDragging {
		for _, anchor := range lineCells(o.dragStart, cell) {
			out.Line = append(out.Line, grid.ComputeFootprint(anchor, o.selected.Size, o.rotation)...)
		}
	}

	return out, nil
}

func (o *orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *orchestrator) Rotation() entities.Rotation {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.rotation
}

func (o *orchestrator) pointerCell() entities.Cell {
	return o.layout.WorldToCell(o.pointer.SelectedWorldPosition())
}

// positionFor is the spawn point: walls sit on their anchor cell, everything
// else on the center of its footprint
func (o *orchestrator) positionFor(def *entities.ObjectDefinition, anchor entities.Cell, rot entities.Rotation) entities.Vec3 {
	if def.IsWall || def.Category == entities.CategoryWall {
		return o.layout.CellToWorld(anchor)
	}
	return o.layout.FootprintCenter(grid.ComputeFootprint(anchor, def.Size, rot))
}

func (o *orchestrator) movePreview(ctx context.Context, cell entities.Cell) error {
	if o.preview == engine.NoHandle {
		return nil
	}
	if err := o.instantiator.Move(ctx, o.preview, o.positionFor(o.selected, cell, o.rotation), o.rotation); err != nil {
		return errors.Wrap(err, "failed to move preview")
	}
	return nil
}
