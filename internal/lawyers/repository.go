package lawyers

import (
	"context"
	"errors"
	"regexp"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	List(ctx context.Context, filter Filter) ([]Lawyer, error)
	GetByID(ctx context.Context, id string) (Lawyer, error)
	ReviewsFor(ctx context.Context, lawyerID string) ([]ProfileReview, error)
	Create(ctx context.Context, l Lawyer) error
	// Delete removes the lawyer and its profile reviews; an unknown id is ErrNotFound.
	Delete(ctx context.Context, id string) error
}

type FixtureRepository struct {
	mu      sync.RWMutex
	lawyers []Lawyer
	reviews []ProfileReview
}

func NewFixtureRepository(lawyers []Lawyer, reviews []ProfileReview) *FixtureRepository {
	return &FixtureRepository{
		lawyers: append([]Lawyer(nil), lawyers...),
		reviews: append([]ProfileReview(nil), reviews...),
	}
}

func (r *FixtureRepository) List(ctx context.Context, filter Filter) ([]Lawyer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]Lawyer, 0, len(r.lawyers))
	for _, l := range r.lawyers {
		if filter.Matches(l) {
			items = append(items, l)
		}
	}
	return items, nil
}

func (r *FixtureRepository) GetByID(ctx context.Context, id string) (Lawyer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, l := range r.lawyers {
		if l.ID == id {
			return l, nil
		}
	}
	return Lawyer{}, ErrNotFound
}

func (r *FixtureRepository) ReviewsFor(ctx context.Context, lawyerID string) ([]ProfileReview, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]ProfileReview, 0)
	for _, rv := range r.reviews {
		if rv.LawyerID == lawyerID {
			items = append(items, rv)
		}
	}
	return items, nil
}

func (r *FixtureRepository) Create(ctx context.Context, l Lawyer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lawyers = append(r.lawyers, l)
	return nil
}

func (r *FixtureRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, l := range r.lawyers {
		if l.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}
	r.lawyers = append(r.lawyers[:idx:idx], r.lawyers[idx+1:]...)

	kept := r.reviews[:0:0]
	for _, rv := range r.reviews {
		if rv.LawyerID != id {
			kept = append(kept, rv)
		}
	}
	r.reviews = kept
	return nil
}

type MongoRepository struct {
	lawyers *mongo.Collection
	reviews *mongo.Collection
}

func NewMongoRepository(lawyers, reviews *mongo.Collection) *MongoRepository {
	return &MongoRepository{lawyers: lawyers, reviews: reviews}
}

func buildQuery(filter Filter) bson.M {
	query := bson.M{}
	if filter.Query != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Query), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"specialty": pattern},
			bson.M{"bio": pattern},
		}
	}
	if filter.Specialty != "" {
		query["specialty"] = filter.Specialty
	}
	if filter.Location != "" {
		query["location"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Location)}
	}
	rate := bson.M{}
	if filter.MinRate != nil {
		rate["$gte"] = *filter.MinRate
	}
	if filter.MaxRate != nil {
		rate["$lte"] = *filter.MaxRate
	}
	if len(rate) > 0 {
		query["hourlyRate"] = rate
	}
	if filter.MinRating != nil {
		query["rating"] = bson.M{"$gte": *filter.MinRating}
	}
	return query
}

func (r *MongoRepository) List(ctx context.Context, filter Filter) ([]Lawyer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.lawyers.Find(ctx, buildQuery(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]Lawyer, 0)
	for cursor.Next(ctx) {
		var l Lawyer
		if err := cursor.Decode(&l); err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (Lawyer, error) {
	var l Lawyer
	if err := r.lawyers.FindOne(ctx, bson.M{"_id": id}).Decode(&l); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Lawyer{}, ErrNotFound
		}
		return Lawyer{}, err
	}
	return l, nil
}

func (r *MongoRepository) ReviewsFor(ctx context.Context, lawyerID string) ([]ProfileReview, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.reviews.Find(ctx, bson.M{"lawyerId": lawyerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]ProfileReview, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepository) Create(ctx context.Context, l Lawyer) error {
	_, err := r.lawyers.InsertOne(ctx, l)
	return err
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.lawyers.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	_, err = r.reviews.DeleteMany(ctx, bson.M{"lawyerId": id})
	return err
}

func (r *MongoRepository) UpsertLawyer(ctx context.Context, l Lawyer) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.lawyers.ReplaceOne(ctx, bson.M{"_id": l.ID}, l, opts)
	return err
}

func (r *MongoRepository) UpsertReview(ctx context.Context, rv ProfileReview) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.reviews.ReplaceOne(ctx, bson.M{"_id": rv.ID}, rv, opts)
	return err
}
