package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/innkeeper/internal/entities"
	"github.com/KirkDiggler/innkeeper/internal/errors"
	"github.com/KirkDiggler/innkeeper/internal/repositories/catalog"
)

type CatalogTestSuite struct {
	suite.Suite
	ctx  context.Context
	repo catalog.Repository
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) SetupTest() {
	s.ctx = context.Background()

	defs, err := catalog.Default()
	s.Require().NoError(err)

	s.repo, err = catalog.NewInMemory(&catalog.Config{Definitions: defs})
	s.Require().NoError(err)
}

func (s *CatalogTestSuite) TestDefaultCatalog() {
	out, err := s.repo.Get(s.ctx, catalog.GetInput{ID: 21})
	s.Require().NoError(err)
	s.Equal("Door", out.Definition.Name)
	s.True(out.Definition.IsWall)
	s.True(out.Definition.HasTag(entities.TagDoor))

	out, err = s.repo.Get(s.ctx, catalog.GetInput{ID: 10})
	s.Require().NoError(err)
	s.False(out.Definition.IsWall)
	s.Equal(entities.Size{Width: 1, Depth: 2}, out.Definition.Size)
	s.True(out.Definition.HasTag(entities.TagBed))
}

func (s *CatalogTestSuite) TestGetUnknown() {
	_, err := s.repo.Get(s.ctx, catalog.GetInput{ID: 999})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *CatalogTestSuite) TestListByCategory() {
	walls := entities.CategoryWall
	out, err := s.repo.List(s.ctx, catalog.ListInput{Category: &walls})
	s.Require().NoError(err)
	s.Require().Len(out.Definitions, 2)
	s.Equal(20, out.Definitions[0].ID)
	s.Equal(21, out.Definitions[1].ID)

	all, err := s.repo.List(s.ctx, catalog.ListInput{})
	s.Require().NoError(err)
	s.Len(all.Definitions, 11)

	bad := entities.Category(12)
	_, err = s.repo.List(s.ctx, catalog.ListInput{Category: &bad})
	s.True(errors.IsInvalidArgument(err))
}

func (s *CatalogTestSuite) TestDuplicateIDOverwrites() {
	defs, err := catalog.LoadFile("testdata/duplicate.yaml")
	s.Require().NoError(err)

	repo, err := catalog.NewInMemory(&catalog.Config{Definitions: defs})
	s.Require().NoError(err)

	out, err := repo.Get(s.ctx, catalog.GetInput{ID: 1})
	s.Require().NoError(err)
	s.Equal("New Bed", out.Definition.Name)

	half, err := repo.Get(s.ctx, catalog.GetInput{ID: 2})
	s.Require().NoError(err)
	s.False(half.Definition.IsWall, "explicit is_wall wins")

	list, err := repo.List(s.ctx, catalog.ListInput{})
	s.Require().NoError(err)
	s.Len(list.Definitions, 2)
}

func (s *CatalogTestSuite) TestLoadErrors() {
	_, err := catalog.LoadFile("testdata/bad_category.yaml")
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = catalog.LoadFile("testdata/missing.yaml")
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	_, err = catalog.Parse([]byte("objects: [this is not: valid"))
	s.True(errors.IsInvalidArgument(err))
}

func (s *CatalogTestSuite) TestParseRejectsSchemaViolations() {
	cases := map[string]string{
		"unknown key": "objects:\n  - {id: 1, name: Bed, category: furniture, width: 1, depth: 2, asset: bed, prize: 4}\n",
		"zero width":  "objects:\n  - {id: 1, name: Bed, category: furniture, width: 0, depth: 2, asset: bed}\n",
		"no asset":    "objects:\n  - {id: 1, name: Bed, category: furniture, width: 1, depth: 2}\n",
		"no objects":  "things: []\n",
	}
	for name, doc := range cases {
		s.Run(name, func() {
			_, err := catalog.Parse([]byte(doc))
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *CatalogTestSuite) TestConfigValidation() {
	_, err := catalog.NewInMemory(&catalog.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = catalog.NewInMemory(&catalog.Config{Definitions: []*entities.ObjectDefinition{
		{ID: 1, Name: "Flat", Asset: "flat", Category: entities.CategoryFloor, Size: entities.Size{Width: 0, Depth: 1}},
	}})
	s.Require().Error(err)
	s.Contains(err.Error(), "Size.Width")
}

func (s *CatalogTestSuite) TestDefinitionsAreCopied() {
	defs := []*entities.ObjectDefinition{
		{ID: 3, Name: "Lamp", Asset: "lamp", Category: entities.CategoryDecoration, Size: entities.Size{Width: 1, Depth: 1}},
	}
	repo, err := catalog.NewInMemory(&catalog.Config{Definitions: defs})
	s.Require().NoError(err)

	defs[0].Name = "Changed"
	out, err := repo.Get(s.ctx, catalog.GetInput{ID: 3})
	s.Require().NoError(err)
	s.Equal("Lamp", out.Definition.Name)
}
