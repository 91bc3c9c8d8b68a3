package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/innkeeper/internal/entities"
	"github.com/KirkDiggler/innkeeper/internal/errors"
)

//go:embed default.yaml
var defaultCatalog []byte

//go:embed catalog.schema.json
var catalogSchemaJSON string

var catalogSchema = jsonschema.MustCompileString("catalog.schema.json", catalogSchemaJSON)

type fileObject struct {
	ID       int      `yaml:"id"`
	Name     string   `yaml:"name"`
	Category string   `yaml:"category"`
	IsWall   *bool    `yaml:"is_wall"`
	Width    int      `yaml:"width"`
	Depth    int      `yaml:"depth"`
	Price    int      `yaml:"price"`
	Asset    string   `yaml:"asset"`
	Tags     []string `yaml:"tags"`
}

type fileCatalog struct {
	Objects []fileObject `yaml:"objects"`
}

// Parse decodes a YAML catalog document. Walls default to is_wall true.
func Parse(data []byte) ([]*entities.ObjectDefinition, error) {
	if err := checkSchema(data); err != nil {
		return nil, err
	}

	var doc fileCatalog
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode catalog")
	}

	defs := make([]*entities.ObjectDefinition, 0, len(doc.Objects))
	for _, obj := range doc.Objects {
		category, ok := entities.ParseCategory(obj.Category)
		if !ok {
			return nil, errors.InvalidArgumentf("object %d: unknown category %q", obj.ID, obj.Category)
		}
		isWall := category == entities.CategoryWall
		if obj.IsWall != nil {
			isWall = *obj.IsWall
		}
		defs = append(defs, &entities.ObjectDefinition{
			ID:        obj.ID,
			Name:      obj.Name,
			Category:  category,
			IsWall:    isWall,
			Size:      entities.Size{Width: obj.Width, Depth: obj.Depth},
			BasePrice: obj.Price,
			Asset:     obj.Asset,
			Tags:      obj.Tags,
		})
	}
	return defs, nil
}

// checkSchema validates the document shape before it is decoded, so unknown
// keys and non-positive sizes are reported with their path
func checkSchema(data []byte) error {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode catalog")
	}

	asJSON, err := json.Marshal(raw)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "catalog is not representable as JSON")
	}
	dec := json.NewDecoder(bytes.NewReader(asJSON))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode catalog")
	}

	if err := catalogSchema.Validate(doc); err != nil {
		return errors.InvalidArgumentf("catalog does not match schema: %v", err)
	}
	return nil
}

// LoadFile reads and parses a catalog file
func LoadFile(path string) ([]*entities.ObjectDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeNotFound, "failed to read catalog %s", path)
	}
	defs, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog %s", path)
	}
	return defs, nil
}

// Default returns the built-in inn furniture set
func Default() ([]*entities.ObjectDefinition, error) {
	return Parse(defaultCatalog)
}
