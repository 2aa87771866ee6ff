package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Natanjhon7/delivery-backend-v2/models"
)

type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{
		collection: db.Collection("products"),
	}
}

// List returns active products matching the filter, name-sorted.
func (r *ProductRepository) List(ctx context.Context, f models.ProductFilter) ([]models.Product, error) {
	filter := bson.M{"is_active": true}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Search != "" {
		filter["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// FindActiveByID resolves an active product; soft-deleted products report
// ErrNotFound.
func (r *ProductRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	filter := bson.M{"_id": id, "is_active": true}
	var product models.Product
	if err := r.collection.FindOne(ctx, filter).Decode(&product); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	_, err := r.collection.InsertOne(ctx, product)
	return err
}

func (r *ProductRepository) Update(ctx context.Context, id uuid.UUID, patch models.ProductPatch) (*models.Product, error) {
	updates := bson.M{"updated_at": time.Now().UTC()}
	setIfPresent(updates, "name", patch.Name)
	setIfPresent(updates, "description", patch.Description)
	setIfPresent(updates, "price", patch.Price)
	setIfPresent(updates, "category", patch.Category)
	setIfPresent(updates, "image_url", patch.ImageURL)
	setIfPresent(updates, "brand", patch.Brand)
	setIfPresent(updates, "volume", patch.Volume)
	setIfPresent(updates, "alcohol_content", patch.AlcoholContent)
	if patch.Stock != nil {
		updates["stock"] = *patch.Stock
	}

	filter := bson.M{"_id": id, "is_active": true}
	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var product models.Product
	err := r.collection.FindOneAndUpdate(ctx, filter, bson.M{"$set": updates}, opts).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// SoftDelete flips is_active; the document is never removed so order
// snapshots keep valid references.
func (r *ProductRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	filter := bson.M{"_id": id, "is_active": true}
	update := bson.M{"$set": bson.M{"is_active": false, "updated_at": time.Now().UTC()}}
	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func setIfPresent[T any](updates bson.M, key string, val *T) {
	if val != nil {
		updates[key] = *val
	}
}
