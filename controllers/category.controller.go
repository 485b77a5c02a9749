package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"

	"velomart-backend/models"
	"velomart-backend/store"
)

// CreateCategory handles POST /category/create-category (admin).
func (ctrl *Controller) CreateCategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var input models.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.Name) == "" {
		badRequest(c, "Category name is required")
		return
	}

	existing, err := ctrl.Categories.GetByName(ctx, input.Name)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		internalError(c, "Error in creating category", err)
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"message": "Category already exists",
		})
		return
	}

	category := &models.Category{Name: input.Name, Slug: slug.Make(input.Name)}
	if err := ctrl.Categories.Create(ctx, category); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"message": "Category already exists",
			})
			return
		}
		internalError(c, "Error in creating category", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "new category created",
		"category": category,
	})
}

// UpdateCategory handles PUT /category/update-category/:id (admin).
func (ctrl *Controller) UpdateCategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var input models.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.Name) == "" {
		badRequest(c, "Valid category name is required")
		return
	}

	category, err := ctrl.Categories.Update(ctx, c.Param("id"), input.Name, slug.Make(input.Name))
	switch {
	case errors.Is(err, store.ErrInvalidID):
		badRequest(c, "Invalid category ID")
	case errors.Is(err, store.ErrNotFound):
		notFound(c, "Category not found")
	case err != nil:
		internalError(c, "Error while updating category", err)
	default:
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"message":  "Category Updated Successfully",
			"category": category,
		})
	}
}

// GetCategories handles GET /category/get-category.
func (ctrl *Controller) GetCategories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	categories, err := ctrl.Categories.List(ctx)
	if err != nil {
		internalError(c, "Error while getting all categories", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "All Categories List",
		"category": categories,
	})
}

// SingleCategory handles GET /category/single-category/:slug.
func (ctrl *Controller) SingleCategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	category, err := ctrl.Categories.GetBySlug(ctx, c.Param("slug"))
	switch {
	case errors.Is(err, store.ErrNotFound):
		notFound(c, "Category not found")
	case err != nil:
		internalError(c, "Error while getting single category", err)
	default:
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"message":  "Single Category Fetched",
			"category": category,
		})
	}
}

// DeleteCategory handles DELETE /category/delete-category/:id (admin).
func (ctrl *Controller) DeleteCategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := ctrl.Categories.Delete(ctx, c.Param("id"))
	switch {
	case errors.Is(err, store.ErrInvalidID):
		badRequest(c, "Invalid category ID")
	case errors.Is(err, store.ErrNotFound):
		notFound(c, "Category not found")
	case err != nil:
		internalError(c, "Error while deleting category", err)
	default:
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Category Deleted Successfully",
		})
	}
}
