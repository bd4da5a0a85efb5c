package reviews

import "context"

type Repository interface {
	List(ctx context.Context, filter Filter) ([]Review, error)
	Stats(ctx context.Context) ([]LawyerStats, error)
}

type FixtureRepository struct {
	reviews []Review
	stats   []LawyerStats
}

func NewFixtureRepository(reviews []Review, stats []LawyerStats) *FixtureRepository {
	return &FixtureRepository{reviews: reviews, stats: stats}
}

func (r *FixtureRepository) List(ctx context.Context, filter Filter) ([]Review, error) {
	out := make([]Review, 0, len(r.reviews))
	for _, rv := range r.reviews {
		if filter.Matches(rv) {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (r *FixtureRepository) Stats(ctx context.Context) ([]LawyerStats, error) {
	return append([]LawyerStats(nil), r.stats...), nil
}
