package cases

import "context"

type Repository interface {
	List(ctx context.Context, status string) ([]Case, error)
	GetByID(ctx context.Context, id string) (Case, error)
}

type FixtureRepository struct {
	items []Case
}

func NewFixtureRepository(items []Case) *FixtureRepository {
	return &FixtureRepository{items: items}
}

func (r *FixtureRepository) List(ctx context.Context, status string) ([]Case, error) {
	out := make([]Case, 0, len(r.items))
	for _, c := range r.items {
		if status == "" || string(c.Status) == status {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *FixtureRepository) GetByID(ctx context.Context, id string) (Case, error) {
	for _, c := range r.items {
		if c.ID == id {
			return c, nil
		}
	}
	return Case{}, ErrNotFound
}
