package catalog

import (
	"context"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/innkeeper/internal/entities"
	"github.com/KirkDiggler/innkeeper/internal/errors"
)

// Config holds the definitions to index
type Config struct {
	Definitions []*entities.ObjectDefinition
}

// Validate ensures the definitions are usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if len(c.Definitions) == 0 {
		vb.RequiredField("Definitions")
	}
	for i, def := range c.Definitions {
		if def == nil {
			vb.Fieldf("Definitions", "entry %d is nil", i)
			continue
		}
		if err := validateDefinition(def); err != nil {
			vb.Fieldf("Definitions", "entry %d (id %d): %s", i, def.ID, errors.GetMessage(err))
		}
	}

	return vb.Build()
}

func validateDefinition(def *entities.ObjectDefinition) error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("Name", def.Name, vb)
	errors.ValidateRequired("Asset", def.Asset, vb)
	if !def.Category.Valid() {
		vb.InvalidField("Category", def.Category.String())
	}
	errors.ValidatePositive("Size.Width", def.Size.Width, vb)
	errors.ValidatePositive("Size.Depth", def.Size.Depth, vb)
	errors.ValidateNonNegative("BasePrice", def.BasePrice, vb)

	return vb.Build()
}

type inMemoryRepository struct {
	byID map[int]*entities.ObjectDefinition
	ids  []int
}

// NewInMemory indexes the definitions by id. A later definition with an
// id already seen replaces the earlier one.
func NewInMemory(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	byID := make(map[int]*entities.ObjectDefinition, len(cfg.Definitions))
	for _, def := range cfg.Definitions {
		if prev, ok := byID[def.ID]; ok {
			slog.Warn("Duplicate catalog id overwrites earlier definition",
				"id", def.ID,
				"previous", prev.Name,
				"replacement", def.Name,
			)
		}
		clone := *def
		clone.Tags = append([]string(nil), def.Tags...)
		byID[def.ID] = &clone
	}

	ids := make([]int, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return &inMemoryRepository{byID: byID, ids: ids}, nil
}

// Ensure inMemoryRepository implements Repository
var _ Repository = (*inMemoryRepository)(nil)

// Get returns the definition for an id
func (r *inMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	def, ok := r.byID[input.ID]
	if !ok {
		return nil, errors.NotFoundf("object %d not in catalog", input.ID)
	}
	return &GetOutput{Definition: def}, nil
}

// List returns definitions ordered by id
func (r *inMemoryRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	if input.Category != nil && !input.Category.Valid() {
		return nil, errors.InvalidArgumentf("unknown category %s", input.Category)
	}

	out := make([]*entities.ObjectDefinition, 0, len(r.ids))
	for _, id := range r.ids {
		def := r.byID[id]
		if input.Category != nil && def.Category != *input.Category {
			continue
		}
		out = append(out, def)
	}
	return &ListOutput{Definitions: out}, nil
}
