package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"velomart-backend/models"
)

// Sentinel errors the handlers map onto HTTP statuses.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate")
	ErrInvalidID = errors.New("invalid id")
)

// CategoryStore persists categories.
type CategoryStore interface {
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, id, name, slug string) (*models.Category, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	GetByName(ctx context.Context, name string) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
}

// ProductStore persists products. Listing methods exclude the photo
// payload and attach the referenced category document.
type ProductStore interface {
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id string, product *models.Product) (*models.Product, error)
	// Delete succeeds for ids that do not exist; a malformed id errors.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit int) ([]models.Product, int64, error)
	Page(ctx context.Context, page, perPage int) ([]models.Product, error)
	// GetBySlug returns (nil, nil) when no product matches.
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetPhoto(ctx context.Context, id string) (*models.Photo, error)
	Filter(ctx context.Context, checked []string, radio []float64) ([]models.Product, error)
	Count(ctx context.Context) (int64, error)
	Search(ctx context.Context, keyword string) ([]models.Product, error)
	Related(ctx context.Context, productID, categoryID string, limit int) ([]models.Product, error)
	ByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.Product, error)
}

// OrderStore persists orders. Reads attach the product documents.
type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	ByBuyer(ctx context.Context, buyerID string) ([]models.Order, error)
	All(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Order, error)
}

// UserStore persists accounts.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, name, passwordHash, phone, address string) (*models.User, error)
	UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error
}
