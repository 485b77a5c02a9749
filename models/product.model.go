package models

import (
	"strconv"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxPhotoBytes is the exclusive upper bound for an inline product photo.
// A 999,999 byte payload is accepted, a 1,000,000 byte payload is not.
const MaxPhotoBytes = 1000000

// Photo is the inline binary payload stored on the product document.
// The raw bytes never appear in JSON responses; they are served through
// the dedicated photo endpoint.
type Photo struct {
	Data        []byte `json:"-" bson:"data,omitempty"`
	ContentType string `json:"contentType,omitempty" bson:"contentType,omitempty"`
}

// Product is a catalog item. CategoryID is what is persisted; Category
// carries the attached category document when a query populates it.
type Product struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Slug        string             `json:"slug" bson:"slug"`
	Description string             `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price"`
	CategoryID  primitive.ObjectID `json:"-" bson:"category"`
	Category    *Category          `json:"category,omitempty" bson:"-"`
	Quantity    int                `json:"quantity" bson:"quantity"`
	Shipping    bool               `json:"shipping" bson:"shipping"`
	Photo       Photo              `json:"photo,omitempty" bson:"photo,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ProductInput carries the raw multipart form fields of a create or
// update request before they are validated and typed.
type ProductInput struct {
	Name        string
	Description string
	Price       string
	Category    string
	Quantity    string
	Shipping    string
}

// Parse validates the fields in their fixed order and returns either the
// typed product values or the message naming the first failed check.
// photoSize is the attached photo's byte size, zero when none was sent.
func (in ProductInput) Parse(photoSize int64) (*Product, string) {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return nil, "Name is Required"
	case strings.TrimSpace(in.Description) == "":
		return nil, "Description is Required"
	case strings.TrimSpace(in.Price) == "":
		return nil, "Price is Required"
	case strings.TrimSpace(in.Category) == "":
		return nil, "Category is Required"
	case strings.TrimSpace(in.Quantity) == "":
		return nil, "Quantity is Required"
	case photoSize >= MaxPhotoBytes:
		return nil, "photo should be less than 1mb"
	}

	price, err := strconv.ParseFloat(in.Price, 64)
	if err != nil || price < 0 {
		return nil, "Price must be a non-negative number"
	}
	quantity, err := strconv.Atoi(in.Quantity)
	if err != nil || quantity < 0 {
		return nil, "Quantity must be a non-negative integer"
	}
	categoryID, err := primitive.ObjectIDFromHex(strings.TrimSpace(in.Category))
	if err != nil {
		return nil, "Invalid category ID"
	}
	shipping := false
	if in.Shipping != "" {
		shipping, _ = strconv.ParseBool(in.Shipping)
	}

	return &Product{
		Name:        in.Name,
		Slug:        slug.Make(in.Name),
		Description: in.Description,
		Price:       price,
		CategoryID:  categoryID,
		Quantity:    quantity,
		Shipping:    shipping,
	}, ""
}
