package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/artisio/marketplace-api/internal/core/domain"
	"github.com/artisio/marketplace-api/internal/core/ports"
)

const artworksCollection = "images"

// ArtworkRepository implements ports.ArtworkRepository on MongoDB.
type ArtworkRepository struct {
	col *mongo.Collection
}

func NewArtworkRepository(db *mongo.Database) *ArtworkRepository {
	return &ArtworkRepository{col: db.Collection(artworksCollection)}
}

type mongoArtwork struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"user_id"`
	ArtistName  string             `bson:"artist_name"`
	Name        string             `bson:"name"`
	ImageLink   string             `bson:"image_link,omitempty"`
	Price       float64            `bson:"price"`
	Description string             `bson:"description"`
	Views       int64              `bson:"views"`
	Category    string             `bson:"category"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
	Version     int64              `bson:"__v"`
}

func (ma *mongoArtwork) toDomain() *domain.Artwork {
	return &domain.Artwork{
		ID:          ma.ID.Hex(),
		UserID:      ma.UserID,
		ArtistName:  ma.ArtistName,
		Name:        ma.Name,
		ImageLink:   ma.ImageLink,
		Price:       ma.Price,
		Description: ma.Description,
		Views:       ma.Views,
		Category:    domain.ArtworkCategory(ma.Category),
		CreatedAt:   ma.CreatedAt,
		UpdatedAt:   ma.UpdatedAt,
		Version:     ma.Version,
	}
}

func (r *ArtworkRepository) Create(ctx context.Context, a *domain.Artwork) (*domain.Artwork, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoArtwork{
		UserID:      a.UserID,
		ArtistName:  a.ArtistName,
		Name:        a.Name,
		ImageLink:   a.ImageLink,
		Price:       a.Price,
		Description: a.Description,
		Category:    string(a.Category),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert artwork: %w", err)
	}

	created := *a
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// ownedFilter scopes a query to a document owned by userID. Missing and
// not-owned are indistinguishable on purpose.
func ownedFilter(id, userID string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrArtworkNotFound
	}
	return bson.M{"_id": oid, "user_id": userID}, nil
}

func (r *ArtworkRepository) FindOwned(ctx context.Context, id, userID string) (*domain.Artwork, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, err := ownedFilter(id, userID)
	if err != nil {
		return nil, err
	}

	var ma mongoArtwork
	if err := r.col.FindOne(ctx, filter).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrArtworkNotFound
		}
		return nil, fmt.Errorf("find artwork: %w", err)
	}
	return ma.toDomain(), nil
}

func (r *ArtworkRepository) FindByID(ctx context.Context, id string) (*domain.Artwork, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrArtworkNotFound
	}

	var ma mongoArtwork
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrArtworkNotFound
		}
		return nil, fmt.Errorf("find artwork: %w", err)
	}
	return ma.toDomain(), nil
}

// UpdateOwned applies a partial update and bumps the version counter, the
// way the storefront has always tracked edits.
func (r *ArtworkRepository) UpdateOwned(ctx context.Context, id, userID string, update ports.ArtworkUpdate) (*domain.Artwork, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, err := ownedFilter(id, userID)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.ImageLink != nil {
		set["image_link"] = *update.ImageLink
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Category != nil {
		set["category"] = *update.Category
	}

	change := bson.M{
		"$set": set,
		"$inc": bson.M{"__v": 1},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var ma mongoArtwork
	if err := r.col.FindOneAndUpdate(ctx, filter, change, opts).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrArtworkNotFound
		}
		return nil, fmt.Errorf("update artwork: %w", err)
	}
	return ma.toDomain(), nil
}

func (r *ArtworkRepository) DeleteOwned(ctx context.Context, id, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, err := ownedFilter(id, userID)
	if err != nil {
		return err
	}

	res, err := r.col.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete artwork: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrArtworkNotFound
	}
	return nil
}

func (r *ArtworkRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Artwork, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list artworks: %w", err)
	}
	defer cur.Close(ctx)

	return decodeArtworks(ctx, cur)
}

func (r *ArtworkRepository) ListGallery(ctx context.Context, filter ports.ListGalleryFilter) ([]*domain.Artwork, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count gallery: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list gallery: %w", err)
	}
	defer cur.Close(ctx)

	items, err := decodeArtworks(ctx, cur)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *ArtworkRepository) IncrementViews(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrArtworkNotFound
	}

	_, err = r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"views": 1}})
	return err
}

// EnsureIndexes creates the query indexes for the listings collection.
func (r *ArtworkRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func decodeArtworks(ctx context.Context, cur *mongo.Cursor) ([]*domain.Artwork, error) {
	var out []*domain.Artwork
	for cur.Next(ctx) {
		var ma mongoArtwork
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode artwork: %w", err)
		}
		out = append(out, ma.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
