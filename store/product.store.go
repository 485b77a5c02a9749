package store

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"velomart-backend/models"
)

// ProductMongo is the MongoDB implementation of ProductStore. It also
// reads the categories collection to attach referenced documents.
type ProductMongo struct {
	col        *mongo.Collection
	categories *mongo.Collection
}

func NewProductStore(db *mongo.Database) *ProductMongo {
	return &ProductMongo{
		col:        db.Collection("products"),
		categories: db.Collection("categories"),
	}
}

var noPhoto = bson.M{"photo": 0}

func (s *ProductMongo) Create(ctx context.Context, product *models.Product) error {
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	result, err := s.col.InsertOne(ctx, product)
	if err != nil {
		return err
	}
	product.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *ProductMongo) Update(ctx context.Context, id string, product *models.Product) (*models.Product, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	set := bson.M{
		"name":        product.Name,
		"slug":        product.Slug,
		"description": product.Description,
		"price":       product.Price,
		"category":    product.CategoryID,
		"quantity":    product.Quantity,
		"shipping":    product.Shipping,
		"updatedAt":   time.Now(),
	}
	if len(product.Photo.Data) > 0 {
		set["photo"] = product.Photo
	}

	var updated models.Product
	err = s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After).SetProjection(noPhoto),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete is idempotent: deleting an id that no longer exists succeeds.
func (s *ProductMongo) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	_, err = s.col.DeleteOne(ctx, bson.M{"_id": objID})
	return err
}

func (s *ProductMongo) List(ctx context.Context, limit int) ([]models.Product, int64, error) {
	total, err := s.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetProjection(noPhoto).
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(int64(limit))
	products, err := s.find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (s *ProductMongo) Page(ctx context.Context, page, perPage int) ([]models.Product, error) {
	if page < 1 {
		page = 1
	}
	opts := options.Find().
		SetProjection(noPhoto).
		SetSort(bson.M{"createdAt": -1}).
		SetSkip(int64((page - 1) * perPage)).
		SetLimit(int64(perPage))
	return s.find(ctx, bson.M{}, opts)
}

func (s *ProductMongo) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := s.col.FindOne(ctx, bson.M{"slug": slug},
		options.FindOne().SetProjection(noPhoto)).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	products := []models.Product{product}
	if err := s.attachCategories(ctx, products); err != nil {
		return nil, err
	}
	return &products[0], nil
}

func (s *ProductMongo) GetPhoto(ctx context.Context, id string) (*models.Photo, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var product models.Product
	err = s.col.FindOne(ctx, bson.M{"_id": objID},
		options.FindOne().SetProjection(bson.M{"photo": 1})).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product.Photo, nil
}

func (s *ProductMongo) Filter(ctx context.Context, checked []string, radio []float64) ([]models.Product, error) {
	categoryIDs := make([]primitive.ObjectID, 0, len(checked))
	for _, id := range checked {
		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, ErrInvalidID
		}
		categoryIDs = append(categoryIDs, objID)
	}
	return s.find(ctx, FilterQuery(categoryIDs, radio),
		options.Find().SetProjection(noPhoto))
}

func (s *ProductMongo) Count(ctx context.Context) (int64, error) {
	return s.col.EstimatedDocumentCount(ctx)
}

func (s *ProductMongo) Search(ctx context.Context, keyword string) ([]models.Product, error) {
	pattern := regexp.QuoteMeta(keyword)
	query := bson.M{"$or": []bson.M{
		{"name": bson.M{"$regex": pattern, "$options": "i"}},
		{"description": bson.M{"$regex": pattern, "$options": "i"}},
	}}
	return s.find(ctx, query, options.Find().SetProjection(noPhoto))
}

func (s *ProductMongo) Related(ctx context.Context, productID, categoryID string, limit int) ([]models.Product, error) {
	pid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, ErrInvalidID
	}
	cid, err := primitive.ObjectIDFromHex(categoryID)
	if err != nil {
		return nil, ErrInvalidID
	}

	query := bson.M{
		"category": cid,
		"_id":      bson.M{"$ne": pid},
	}
	return s.find(ctx, query,
		options.Find().SetProjection(noPhoto).SetLimit(int64(limit)))
}

func (s *ProductMongo) ByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.Product, error) {
	return s.find(ctx, bson.M{"category": categoryID},
		options.Find().SetProjection(noPhoto))
}

func (s *ProductMongo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Product, error) {
	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	if err = s.attachCategories(ctx, products); err != nil {
		return nil, err
	}
	return products, nil
}

// attachCategories fills in the Category field of each product with one
// $in query over the referenced ids.
func (s *ProductMongo) attachCategories(ctx context.Context, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}

	seen := map[primitive.ObjectID]bool{}
	ids := []primitive.ObjectID{}
	for _, p := range products {
		if !seen[p.CategoryID] {
			seen[p.CategoryID] = true
			ids = append(ids, p.CategoryID)
		}
	}

	cursor, err := s.categories.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err = cursor.All(ctx, &categories); err != nil {
		return err
	}

	byID := map[primitive.ObjectID]models.Category{}
	for _, c := range categories {
		byID[c.ID] = c
	}
	for i := range products {
		if c, ok := byID[products[i].CategoryID]; ok {
			category := c
			products[i].Category = &category
		}
	}
	return nil
}
