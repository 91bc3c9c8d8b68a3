package headless

import (
	"sync"

	"github.com/KirkDiggler/innkeeper/internal/engine"
	"github.com/KirkDiggler/innkeeper/internal/entities"
)

// Pointer is a scripted engine.Pointer driven by tests and the CLI
type Pointer struct {
	mu      sync.RWMutex
	pos     entities.Vec3
	clicked engine.Handle
	hasHit  bool
	overUI  bool
}

var _ engine.Pointer = (*Pointer)(nil)

// NewPointer returns a pointer at the world origin with nothing clicked
func NewPointer() *Pointer {
	return &Pointer{clicked: engine.NoHandle}
}

// MoveTo sets the selected world position
func (p *Pointer) MoveTo(pos entities.Vec3) {
	p.mu.Lock()
	p.pos = pos
	p.mu.Unlock()
}

// Click records a click on an instance
func (p *Pointer) Click(h engine.Handle) {
	p.mu.Lock()
	p.clicked, p.hasHit = h, true
	p.mu.Unlock()
}

// ClearClick forgets the last clicked instance
func (p *Pointer) ClearClick() {
	p.mu.Lock()
	p.clicked, p.hasHit = engine.NoHandle, false
	p.mu.Unlock()
}

// SetOverUI marks the pointer as hovering a UI panel
func (p *Pointer) SetOverUI(over bool) {
	p.mu.Lock()
	p.overUI = over
	p.mu.Unlock()
}

// SelectedWorldPosition implements engine.Pointer
func (p *Pointer) SelectedWorldPosition() entities.Vec3 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.pos
}

// ClickedInstance implements engine.Pointer
func (p *Pointer) ClickedInstance() (engine.Handle, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.clicked, p.hasHit
}

// OverUI implements engine.Pointer
func (p *Pointer) OverUI() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.overUI
}
