package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"velomart-backend/models"
)

// OrderMongo is the MongoDB implementation of OrderStore. It reads the
// products collection to attach the ordered documents.
type OrderMongo struct {
	col      *mongo.Collection
	products *mongo.Collection
}

func NewOrderStore(db *mongo.Database) *OrderMongo {
	return &OrderMongo{
		col:      db.Collection("orders"),
		products: db.Collection("products"),
	}
}

func (s *OrderMongo) Create(ctx context.Context, order *models.Order) error {
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	result, err := s.col.InsertOne(ctx, order)
	if err != nil {
		return err
	}
	order.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *OrderMongo) ByBuyer(ctx context.Context, buyerID string) ([]models.Order, error) {
	objID, err := primitive.ObjectIDFromHex(buyerID)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.find(ctx, bson.M{"buyer": objID})
}

func (s *OrderMongo) All(ctx context.Context) ([]models.Order, error) {
	return s.find(ctx, bson.M{})
}

func (s *OrderMongo) UpdateStatus(ctx context.Context, id, status string) (*models.Order, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var order models.Order
	err = s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	orders := []models.Order{order}
	if err := s.attachProducts(ctx, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

func (s *OrderMongo) find(ctx context.Context, filter bson.M) ([]models.Order, error) {
	cursor, err := s.col.Find(ctx, filter,
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err = cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	if err = s.attachProducts(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// attachProducts fills in the Products field of each order, photo
// payloads excluded.
func (s *OrderMongo) attachProducts(ctx context.Context, orders []models.Order) error {
	seen := map[primitive.ObjectID]bool{}
	ids := []primitive.ObjectID{}
	for _, o := range orders {
		for _, id := range o.ProductIDs {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	if len(ids) == 0 {
		return nil
	}

	cursor, err := s.products.Find(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetProjection(noPhoto))
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err = cursor.All(ctx, &products); err != nil {
		return err
	}

	byID := map[primitive.ObjectID]models.Product{}
	for _, p := range products {
		byID[p.ID] = p
	}
	for i := range orders {
		attached := make([]models.Product, 0, len(orders[i].ProductIDs))
		for _, id := range orders[i].ProductIDs {
			if p, ok := byID[id]; ok {
				attached = append(attached, p)
			}
		}
		orders[i].Products = attached
	}
	return nil
}
