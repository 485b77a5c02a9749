package controllers

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"velomart-backend/models"
	"velomart-backend/store"
)

const (
	listLimit    = 12
	pageSize     = 6
	relatedLimit = 3
)

func productInputFromForm(c *gin.Context) (models.ProductInput, *multipart.FileHeader) {
	input := models.ProductInput{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Price:       c.PostForm("price"),
		Category:    c.PostForm("category"),
		Quantity:    c.PostForm("quantity"),
		Shipping:    c.PostForm("shipping"),
	}
	photo, err := c.FormFile("photo")
	if err != nil {
		photo = nil
	}
	return input, photo
}

func readPhoto(photo *multipart.FileHeader) (models.Photo, error) {
	f, err := photo.Open()
	if err != nil {
		return models.Photo{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return models.Photo{}, err
	}
	contentType := photo.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return models.Photo{Data: data, ContentType: contentType}, nil
}

// CreateProduct handles POST /product/create-product (admin, multipart).
func (ctrl *Controller) CreateProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	input, photoFile := productInputFromForm(c)
	var photoSize int64
	if photoFile != nil {
		photoSize = photoFile.Size
	}

	product, msg := input.Parse(photoSize)
	if msg != "" {
		badRequest(c, msg)
		return
	}

	if photoFile != nil {
		photo, err := readPhoto(photoFile)
		if err != nil {
			internalError(c, "Error in creating product", err)
			return
		}
		product.Photo = photo
	}

	if err := ctrl.Products.Create(ctx, product); err != nil {
		internalError(c, "Error in creating product", err)
		return
	}

	// The photo bytes stay out of the response; only the dedicated photo
	// endpoint serves them.
	product.Photo = models.Photo{}
	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Product Created Successfully",
		"products": product,
	})
}

// UpdateProduct handles PUT /product/update-product/:id (admin, multipart).
func (ctrl *Controller) UpdateProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	input, photoFile := productInputFromForm(c)
	var photoSize int64
	if photoFile != nil {
		photoSize = photoFile.Size
	}

	product, msg := input.Parse(photoSize)
	if msg != "" {
		badRequest(c, msg)
		return
	}

	if photoFile != nil {
		photo, err := readPhoto(photoFile)
		if err != nil {
			internalError(c, "Error in updating product", err)
			return
		}
		product.Photo = photo
	}

	updated, err := ctrl.Products.Update(ctx, c.Param("id"), product)
	switch {
	case errors.Is(err, store.ErrInvalidID):
		badRequest(c, "Invalid product ID")
	case errors.Is(err, store.ErrNotFound):
		notFound(c, "Product not found")
	case err != nil:
		internalError(c, "Error in updating product", err)
	default:
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"message":  "Product Updated Successfully",
			"products": updated,
		})
	}
}

// DeleteProduct handles DELETE /product/delete-product/:id (admin).
// Deleting an id that no longer exists is a success; a malformed id is
// an internal error, matching the contract the storefront relies on.
func (ctrl *Controller) DeleteProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := ctrl.Products.Delete(ctx, c.Param("id")); err != nil {
		internalError(c, "Error while deleting product", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product Deleted Successfully",
	})
}

// GetProducts handles GET /product/get-product: the 12 newest products,
// photo excluded, with the total match count.
func (ctrl *Controller) GetProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	products, total, err := ctrl.Products.List(ctx, listLimit)
	if err != nil {
		internalError(c, "Error in getting products", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"total":    total,
		"message":  "All Products",
		"products": products,
	})
}

// ProductList handles GET /product/product-list/:page. Out-of-range
// pages return an empty list.
func (ctrl *Controller) ProductList(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	page, err := strconv.Atoi(c.Param("page"))
	if err != nil || page < 1 {
		page = 1
	}

	products, err := ctrl.Products.Page(ctx, page, pageSize)
	if err != nil {
		internalError(c, "Error in getting products", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"products": products,
	})
}

// GetSingleProduct handles GET /product/get-product/:slug. No match is
// still a success with a null product.
func (ctrl *Controller) GetSingleProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	product, err := ctrl.Products.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		internalError(c, "Error while getting single product", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Single Product Fetched",
		"product": product,
	})
}

// ProductPhoto handles GET /product/product-photo/:id and serves the
// inline photo bytes with their stored content type.
func (ctrl *Controller) ProductPhoto(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	photo, err := ctrl.Products.GetPhoto(ctx, c.Param("id"))
	switch {
	case errors.Is(err, store.ErrInvalidID):
		badRequest(c, "Invalid product ID")
	case errors.Is(err, store.ErrNotFound):
		notFound(c, "Product not found")
	case err != nil:
		internalError(c, "Error while getting photo", err)
	case len(photo.Data) == 0:
		notFound(c, "No photo found for this product")
	default:
		c.Data(http.StatusOK, photo.ContentType, photo.Data)
	}
}

// FilterRequest is the body of POST /product/product-filters.
type FilterRequest struct {
	Checked []string  `json:"checked"`
	Radio   []float64 `json:"radio"`
}

// ProductFilters handles POST /product/product-filters. Empty filters
// match everything.
func (ctrl *Controller) ProductFilters(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid filter request")
		return
	}

	products, err := ctrl.Products.Filter(ctx, req.Checked, req.Radio)
	switch {
	case errors.Is(err, store.ErrInvalidID):
		badRequest(c, "Invalid category ID")
	case err != nil:
		internalError(c, "Error while filtering products", err)
	default:
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"products": products,
		})
	}
}

// ProductCount handles GET /product/product-count.
func (ctrl *Controller) ProductCount(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	total, err := ctrl.Products.Count(ctx)
	if err != nil {
		internalError(c, "Error in product count", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"total":   total,
	})
}

// SearchProduct handles GET /product/search/:keyword with a
// case-insensitive substring match over name and description. The
// response is the bare result array the storefront expects.
func (ctrl *Controller) SearchProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	results, err := ctrl.Products.Search(ctx, c.Param("keyword"))
	if err != nil {
		internalError(c, "Error in search product", err)
		return
	}

	c.JSON(http.StatusOK, results)
}

// RelatedProduct handles GET /product/related-product/:pid/:cid: up to
// three other products sharing the category.
func (ctrl *Controller) RelatedProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	products, err := ctrl.Products.Related(ctx, c.Param("pid"), c.Param("cid"), relatedLimit)
	switch {
	case errors.Is(err, store.ErrInvalidID):
		badRequest(c, "Invalid product or category ID")
	case err != nil:
		internalError(c, "Error while getting related products", err)
	default:
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"products": products,
		})
	}
}

// ProductCategory handles GET /product/product-category/:slug: the
// category plus every product in it.
func (ctrl *Controller) ProductCategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	category, err := ctrl.Categories.GetBySlug(ctx, c.Param("slug"))
	if errors.Is(err, store.ErrNotFound) {
		notFound(c, "Category not found")
		return
	}
	if err != nil {
		internalError(c, "Error while getting products by category", err)
		return
	}

	products, err := ctrl.Products.ByCategory(ctx, category.ID)
	if err != nil {
		internalError(c, "Error while getting products by category", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"category": category,
		"products": products,
	})
}
