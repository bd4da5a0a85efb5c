package documents

import "context"

type Repository interface {
	Templates(ctx context.Context) ([]Template, error)
	Schema(ctx context.Context, id string) (Schema, bool, error)
}

type FixtureRepository struct {
	templates []Template
	schemas   map[string]Schema
}

func NewFixtureRepository(templates []Template, schemas map[string]Schema) *FixtureRepository {
	return &FixtureRepository{templates: templates, schemas: schemas}
}

func (r *FixtureRepository) Templates(ctx context.Context) ([]Template, error) {
	return append([]Template(nil), r.templates...), nil
}

func (r *FixtureRepository) Schema(ctx context.Context, id string) (Schema, bool, error) {
	s, ok := r.schemas[id]
	return s, ok, nil
}
