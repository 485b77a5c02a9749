package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"velomart-backend/middlewares"
	"velomart-backend/models"
	"velomart-backend/store"
)

// BraintreeToken handles GET /product/braintree/token (signed-in). The
// gateway's client token is passed through verbatim.
func (ctrl *Controller) BraintreeToken(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientToken, err := ctrl.Gateway.ClientToken(ctx)
	if err != nil {
		internalError(c, "Error generating client token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"clientToken": clientToken,
	})
}

// paymentRequest keeps the cart raw so a missing or empty cart can be
// told apart from a structurally wrong one: the former is a validation
// failure, the latter an internal error. The storefront depends on that
// asymmetry.
type paymentRequest struct {
	Nonce string          `json:"nonce"`
	Cart  json.RawMessage `json:"cart"`
}

// BraintreePayment handles POST /product/braintree/payment (signed-in):
// validates the cart, submits the sale, and persists the order only when
// the gateway accepted the transaction.
func (ctrl *Controller) BraintreePayment(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		internalError(c, "Error processing payment", err)
		return
	}

	if strings.TrimSpace(req.Nonce) == "" {
		badRequest(c, "Nonce is required")
		return
	}
	if len(req.Cart) == 0 || string(req.Cart) == "null" {
		badRequest(c, "Cart is empty")
		return
	}

	var cart []models.CartItem
	if err := json.Unmarshal(req.Cart, &cart); err != nil {
		internalError(c, "Error processing payment", err)
		return
	}
	if len(cart) == 0 {
		badRequest(c, "Cart is empty")
		return
	}

	buyer, err := primitive.ObjectIDFromHex(c.GetString(middlewares.UserIDKey))
	if err != nil {
		internalError(c, "Error processing payment", err)
		return
	}

	// Item prices are summed as sent, negative values included; the
	// gateway rejects non-positive totals itself.
	total := decimal.Zero
	productIDs := make([]primitive.ObjectID, 0, len(cart))
	for _, item := range cart {
		id, err := primitive.ObjectIDFromHex(item.ID)
		if err != nil {
			internalError(c, "Error processing payment", err)
			return
		}
		productIDs = append(productIDs, id)
		total = total.Add(decimal.NewFromFloat(item.Price))
	}

	result, err := ctrl.Gateway.Sale(ctx, total, req.Nonce)
	if err != nil {
		log.Println("payment gateway sale failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Transaction failed",
		})
		return
	}

	order := &models.Order{
		ProductIDs: productIDs,
		Payment: models.PaymentInfo{
			Success:       true,
			TransactionID: result.TransactionID,
			Message:       result.Status,
		},
		Buyer:  buyer,
		Status: models.StatusNotProcess,
	}
	if err := ctrl.Orders.Create(ctx, order); err != nil {
		internalError(c, "Error processing payment", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment successful",
	})
}

// GetOrders handles GET /auth/orders: the signed-in user's orders.
func (ctrl *Controller) GetOrders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	orders, err := ctrl.Orders.ByBuyer(ctx, c.GetString(middlewares.UserIDKey))
	if err != nil {
		internalError(c, "Error while getting orders", err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetAllOrders handles GET /auth/all-orders (admin), newest first.
func (ctrl *Controller) GetAllOrders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	orders, err := ctrl.Orders.All(ctx)
	if err != nil {
		internalError(c, "Error while getting orders", err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// OrderStatus handles PUT /auth/order-status/:orderId (admin).
func (ctrl *Controller) OrderStatus(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		badRequest(c, "Missing Order Status")
		return
	}
	if !models.ValidOrderStatus(req.Status) {
		badRequest(c, "Invalid order status")
		return
	}

	order, err := ctrl.Orders.UpdateStatus(ctx, c.Param("orderId"), req.Status)
	switch {
	case errors.Is(err, store.ErrInvalidID):
		badRequest(c, "Invalid order ID")
	case errors.Is(err, store.ErrNotFound):
		notFound(c, "Order not found")
	case err != nil:
		internalError(c, "Error While Updating Order Status", err)
	default:
		c.JSON(http.StatusOK, order)
	}
}
