package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"velomart-backend/gateway"
	"velomart-backend/store"
)

// Controller holds the dependencies shared by all handlers.
type Controller struct {
	DB              *mongo.Database
	Categories      store.CategoryStore
	Products        store.ProductStore
	Orders          store.OrderStore
	Users           store.UserStore
	Gateway         gateway.Gateway
	PasetoSecretKey []byte
}

// internalError logs an unexpected failure and converts it to a 500.
func internalError(c *gin.Context, message string, err error) {
	log.Println(message+":", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": message,
		"error":   err.Error(),
	})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": message,
	})
}

func notFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"message": message,
	})
}
