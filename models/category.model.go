package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category groups products under a human-readable name. The slug is
// derived from the name and is the public identifier used in URLs.
type Category struct {
	ID   primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name string             `json:"name" bson:"name"`
	Slug string             `json:"slug" bson:"slug"`
}

// CategoryInput is the request body for creating or updating a category.
type CategoryInput struct {
	Name string `json:"name"`
}
