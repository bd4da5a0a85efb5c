package articles

import (
	"context"
	"errors"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateSection is returned by repositories when a section is already stored.
var ErrDuplicateSection = errors.New("duplicate section")

type Repository interface {
	List(ctx context.Context) ([]Article, error)
	GetBySection(ctx context.Context, section string) (Article, bool, error)
	Create(ctx context.Context, item Article) error
}

type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]Article
}

func NewMemoryRepository(seed []Article) *MemoryRepository {
	items := make(map[string]Article, len(seed))
	for _, a := range seed {
		items[a.Section] = a
	}
	return &MemoryRepository{items: items}
}

func (r *MemoryRepository) List(ctx context.Context) ([]Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Article, 0, len(r.items))
	for _, a := range r.items {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryRepository) GetBySection(ctx context.Context, section string) (Article, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.items[section]
	return a, ok, nil
}

func (r *MemoryRepository) Create(ctx context.Context, item Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.Section]; ok {
		return ErrDuplicateSection
	}
	r.items[item.Section] = item
	return nil
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) List(ctx context.Context) ([]Article, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]Article, 0)
	for cursor.Next(ctx) {
		var a Article
		if err := cursor.Decode(&a); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepository) GetBySection(ctx context.Context, section string) (Article, bool, error) {
	var a Article
	err := r.col.FindOne(ctx, bson.M{"section": section}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Article{}, false, nil
	}
	if err != nil {
		return Article{}, false, err
	}
	return a, true, nil
}

// Create relies on the unique section index.
func (r *MongoRepository) Create(ctx context.Context, item Article) error {
	_, err := r.col.InsertOne(ctx, item)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateSection
	}
	return err
}

// Upsert replaces the article stored under item's section, used by the seeder.
func (r *MongoRepository) Upsert(ctx context.Context, item Article) error {
	_, err := r.col.ReplaceOne(ctx, bson.M{"section": item.Section}, item, options.Replace().SetUpsert(true))
	return err
}
