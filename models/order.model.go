package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses. The two misspelled members match what existing
// documents and the storefront already use, so they stay as-is.
const (
	StatusNotProcess = "Not Process"
	StatusProcessing = "Processing"
	StatusShipped    = "Shipped"
	StatusDelivered  = "deliverd"
	StatusCancel     = "cancel"
)

var orderStatuses = map[string]bool{
	StatusNotProcess: true,
	StatusProcessing: true,
	StatusShipped:    true,
	StatusDelivered:  true,
	StatusCancel:     true,
}

// ValidOrderStatus reports whether s is a member of the closed status set.
func ValidOrderStatus(s string) bool {
	return orderStatuses[s]
}

// PaymentInfo is the gateway result stored on a successful order.
type PaymentInfo struct {
	Success       bool   `json:"success" bson:"success"`
	TransactionID string `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
	Message       string `json:"message,omitempty" bson:"message,omitempty"`
}

// Order records a completed checkout. ProductIDs is what is persisted;
// Products carries the attached product documents when populated.
type Order struct {
	ID         primitive.ObjectID   `json:"_id,omitempty" bson:"_id,omitempty"`
	ProductIDs []primitive.ObjectID `json:"-" bson:"products"`
	Products   []Product            `json:"products,omitempty" bson:"-"`
	Payment    PaymentInfo          `json:"payment" bson:"payment"`
	Buyer      primitive.ObjectID   `json:"buyer" bson:"buyer"`
	Status     string               `json:"status" bson:"status"`
	CreatedAt  time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// CartItem is one entry of the checkout payload sent by the storefront.
type CartItem struct {
	ID    string  `json:"_id"`
	Price float64 `json:"price"`
}
