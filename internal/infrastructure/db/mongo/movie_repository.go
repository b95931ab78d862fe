package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cinemateca/catalog-api/internal/core/domain"
)

const moviesCollection = "movies"

type MovieRepository struct {
	coll *mongo.Collection
}

func NewMovieRepository(db *mongo.Database) *MovieRepository {
	return &MovieRepository{coll: db.Collection(moviesCollection)}
}

type movieDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"name"`
	Description     string             `bson:"description"`
	DurationMinutes int                `bson:"duration_minutes"`
	Classification  string             `bson:"classification"`
	ImageURL        string             `bson:"image_url,omitempty"`
	CategoryID      string             `bson:"category_id"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
}

func (d movieDoc) toDomain() *domain.Movie {
	return &domain.Movie{
		ID:              d.ID.Hex(),
		Name:            d.Name,
		Description:     d.Description,
		DurationMinutes: d.DurationMinutes,
		Classification:  domain.Classification(d.Classification),
		ImageURL:        d.ImageURL,
		CategoryID:      d.CategoryID,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func fromDomainMovie(m *domain.Movie) movieDoc {
	return movieDoc{
		Name:            m.Name,
		Description:     m.Description,
		DurationMinutes: m.DurationMinutes,
		Classification:  string(m.Classification),
		ImageURL:        m.ImageURL,
		CategoryID:      m.CategoryID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// EnsureIndexes creates the movie indexes: unique name plus the category
// lookup index used by the by-category listing.
func (r *MovieRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "category_id", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create movie indexes: %w", err)
	}
	return nil
}

func (r *MovieRepository) List(ctx context.Context) ([]domain.Movie, error) {
	return r.find(ctx, bson.M{})
}

func (r *MovieRepository) FindByID(ctx context.Context, id string) (*domain.Movie, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMovieNotFound
	}

	var doc movieDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, fmt.Errorf("find movie: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MovieRepository) FindByCategory(ctx context.Context, categoryID string) ([]domain.Movie, error) {
	return r.find(ctx, bson.M{"category_id": categoryID})
}

// Search matches term as a case-insensitive substring of name or description.
// The term is regex-quoted so user input cannot inject pattern syntax.
func (r *MovieRepository) Search(ctx context.Context, term string) ([]domain.Movie, error) {
	if term == "" {
		return r.List(ctx)
	}

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
	return r.find(ctx, bson.M{"$or": []bson.M{
		{"name": pattern},
		{"description": pattern},
	}})
}

func (r *MovieRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"name": name}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count movies: %w", err)
	}
	return n > 0, nil
}

func (r *MovieRepository) Create(ctx context.Context, movie *domain.Movie) (*domain.Movie, error) {
	res, err := r.coll.InsertOne(ctx, fromDomainMovie(movie))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrMovieExists
		}
		return nil, fmt.Errorf("insert movie: %w", err)
	}

	created := *movie
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	oid, err := primitive.ObjectIDFromHex(movie.ID)
	if err != nil {
		return domain.ErrMovieNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":             movie.Name,
		"description":      movie.Description,
		"duration_minutes": movie.DurationMinutes,
		"classification":   string(movie.Classification),
		"image_url":        movie.ImageURL,
		"category_id":      movie.CategoryID,
		"updated_at":       movie.UpdatedAt,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrMovieExists
		}
		return fmt.Errorf("update movie: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrMovieNotFound
	}
	return nil
}

func (r *MovieRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMovieNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMovieNotFound
	}
	return nil
}

func (r *MovieRepository) find(ctx context.Context, filter bson.M) ([]domain.Movie, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find movies: %w", err)
	}
	defer cur.Close(ctx)

	var docs []movieDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode movies: %w", err)
	}

	movies := make([]domain.Movie, 0, len(docs))
	for _, d := range docs {
		movies = append(movies, *d.toDomain())
	}
	return movies, nil
}
