package controllers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"velomart-backend/models"
)

func multipartRequest(t *testing.T, method, path string, fields map[string]string, photo []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, mw.WriteField(key, value))
	}
	if photo != nil {
		part, err := mw.CreateFormFile("photo", "photo.jpg")
		require.NoError(t, err)
		_, err = part.Write(photo)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func productFields(app *testApp, overrides map[string]string) map[string]string {
	fields := map[string]string{
		"name":        "Walnut Desk",
		"description": "A sturdy walnut desk",
		"price":       "249.99",
		"category":    newCategoryID(app),
		"quantity":    "5",
		"shipping":    "true",
	}
	for k, v := range overrides {
		if v == "" {
			delete(fields, k)
		} else {
			fields[k] = v
		}
	}
	return fields
}

func newCategoryID(app *testApp) string {
	if len(app.categories.categories) == 0 {
		app.categories.categories = []models.Category{{ID: primitive.NewObjectID(), Name: "Desks", Slug: "desks"}}
	}
	return app.categories.categories[0].ID.Hex()
}

func TestCreateProduct(t *testing.T) {
	t.Run("creates with slug and stored photo", func(t *testing.T) {
		app := newTestApp(t)

		w := app.do(asAdmin(multipartRequest(t, http.MethodPost,
			"/api/v1/product/create-product", productFields(app, nil), []byte("jpegdata")), app))

		require.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Product Created Successfully", body["message"])
		product := body["products"].(map[string]any)
		assert.Equal(t, "walnut-desk", product["slug"])

		require.Len(t, app.products.products, 1)
		assert.Equal(t, []byte("jpegdata"), app.products.products[0].Photo.Data)
	})

	t.Run("validates fields in order", func(t *testing.T) {
		cases := []struct {
			field   string
			message string
		}{
			{"name", "Name is Required"},
			{"description", "Description is Required"},
			{"price", "Price is Required"},
			{"category", "Category is Required"},
			{"quantity", "Quantity is Required"},
		}
		for _, tc := range cases {
			app := newTestApp(t)

			w := app.do(asAdmin(multipartRequest(t, http.MethodPost,
				"/api/v1/product/create-product",
				productFields(app, map[string]string{tc.field: ""}), nil), app))

			require.Equal(t, http.StatusBadRequest, w.Code, tc.field)
			assert.Equal(t, tc.message, decodeBody(t, w)["message"])
		}
	})

	t.Run("photo boundary", func(t *testing.T) {
		app := newTestApp(t)

		accepted := app.do(asAdmin(multipartRequest(t, http.MethodPost,
			"/api/v1/product/create-product", productFields(app, nil),
			make([]byte, models.MaxPhotoBytes-1)), app))
		require.Equal(t, http.StatusCreated, accepted.Code)

		rejected := app.do(asAdmin(multipartRequest(t, http.MethodPost,
			"/api/v1/product/create-product", productFields(app, nil),
			make([]byte, models.MaxPhotoBytes)), app))
		require.Equal(t, http.StatusBadRequest, rejected.Code)
		assert.Equal(t, "photo should be less than 1mb", decodeBody(t, rejected)["message"])
	})
}

func TestUpdateProduct(t *testing.T) {
	app := newTestApp(t)
	app.products.products = []models.Product{{
		ID:         newID(t),
		Name:       "Old Desk",
		Slug:       "old-desk",
		Price:      100,
		CategoryID: newID(t),
		Quantity:   1,
	}}
	id := app.products.products[0].ID.Hex()

	t.Run("re-derives slug from new name", func(t *testing.T) {
		w := app.do(asAdmin(multipartRequest(t, http.MethodPut,
			"/api/v1/product/update-product/"+id,
			productFields(app, map[string]string{"name": "Standing Desk"}), nil), app))

		require.Equal(t, http.StatusOK, w.Code)
		product := decodeBody(t, w)["products"].(map[string]any)
		assert.Equal(t, "standing-desk", product["slug"])
	})

	t.Run("same validation as create", func(t *testing.T) {
		w := app.do(asAdmin(multipartRequest(t, http.MethodPut,
			"/api/v1/product/update-product/"+id,
			productFields(app, map[string]string{"price": ""}), nil), app))

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Price is Required", decodeBody(t, w)["message"])
	})

	t.Run("unknown id not found", func(t *testing.T) {
		w := app.do(asAdmin(multipartRequest(t, http.MethodPut,
			"/api/v1/product/update-product/"+newID(t).Hex(),
			productFields(app, nil), nil), app))

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteProduct(t *testing.T) {
	app := newTestApp(t)

	t.Run("missing id is idempotent", func(t *testing.T) {
		w := app.do(asAdmin(httptest.NewRequest(http.MethodDelete,
			"/api/v1/product/delete-product/"+newID(t).Hex(), nil), app))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Product Deleted Successfully", decodeBody(t, w)["message"])
	})

	t.Run("malformed id errors", func(t *testing.T) {
		w := app.do(asAdmin(httptest.NewRequest(http.MethodDelete,
			"/api/v1/product/delete-product/not-an-id", nil), app))

		require.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestGetProducts(t *testing.T) {
	app := newTestApp(t)
	for i := 0; i < 15; i++ {
		app.products.products = append(app.products.products, models.Product{
			ID:         newID(t),
			Name:       "P",
			CategoryID: newID(t),
			Photo:      models.Photo{Data: []byte("x"), ContentType: "image/jpeg"},
		})
	}

	w := app.do(httptest.NewRequest(http.MethodGet, "/api/v1/product/get-product", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Len(t, body["products"], 12)
	assert.EqualValues(t, 15, body["total"])
}

func TestProductList(t *testing.T) {
	app := newTestApp(t)
	for i := 0; i < 8; i++ {
		app.products.products = append(app.products.products,
			models.Product{ID: newID(t), CategoryID: newID(t)})
	}

	t.Run("first page holds six", func(t *testing.T) {
		w := app.do(httptest.NewRequest(http.MethodGet, "/api/v1/product/product-list/1", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeBody(t, w)["products"], 6)
	})

	t.Run("second page holds the rest", func(t *testing.T) {
		w := app.do(httptest.NewRequest(http.MethodGet, "/api/v1/product/product-list/2", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeBody(t, w)["products"], 2)
	})

	t.Run("out-of-range page is empty, not an error", func(t *testing.T) {
		w := app.do(httptest.NewRequest(http.MethodGet, "/api/v1/product/product-list/99", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, decodeBody(t, w)["products"])
	})
}

func TestGetSingleProduct(t *testing.T) {
	app := newTestApp(t)
	app.products.products = []models.Product{{ID: newID(t), Name: "Desk", Slug: "desk", CategoryID: newID(t)}}

	t.Run("found", func(t *testing.T) {
		w := app.do(httptest.NewRequest(http.MethodGet, "/api/v1/product/get-product/desk", nil))
		require.Equal(t, http.StatusOK, w.Code)
		product := decodeBody(t, w)["product"].(map[string]any)
		assert.Equal(t, "Desk", product["name"])
	})

	t.Run("no match is still a success", func(t *testing.T) {
		w := app.do(httptest.NewRequest(http.MethodGet, "/api/v1/product/get-product/ghost", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, decodeBody(t, w)["product"])
	})
}

func TestProductPhoto(t *testing.T) {
	app := newTestApp(t)
	withPhoto := models.Product{
		ID:    newID(t),
		Photo: models.Photo{Data: []byte("jpegdata"), ContentType: "image/jpeg"},
	}
	withoutPhoto := models.Product{ID: newID(t)}
	app.products.products = []models.Product{withPhoto, withoutPhoto}

	t.Run("serves bytes with content type", func(t *testing.T) {
		w := app.do(httptest.NewRequest(http.MethodGet,
			"/api/v1/product/product-photo/"+withPhoto.ID.Hex(), nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))
		assert.Equal(t, []byte("jpegdata"), w.Body.Bytes())
	})

	t.Run("product without photo", func(t *testing.T) {
		w := app.do(httptest.NewRequest(http.MethodGet,
			"/api/v1/product/product-photo/"+withoutPhoto.ID.Hex(), nil))

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "No photo found for this product", decodeBody(t, w)["message"])
	})

	t.Run("unknown product", func(t *testing.T) {
		w := app.do(httptest.NewRequest(http.MethodGet,
			"/api/v1/product/product-photo/"+newID(t).Hex(), nil))

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Product not found", decodeBody(t, w)["message"])
	})
}

func TestProductFilters(t *testing.T) {
	app := newTestApp(t)
	desks := newID(t)
	chairs := newID(t)
	app.products.products = []models.Product{
		{ID: newID(t), Name: "Desk A", Price: 100, CategoryID: desks},
		{ID: newID(t), Name: "Desk B", Price: 300, CategoryID: desks},
		{ID: newID(t), Name: "Chair", Price: 150, CategoryID: chairs},
	}

	t.Run("empty filters match everything", func(t *testing.T) {
		w := app.do(jsonRequest(http.MethodPost, "/api/v1/product/product-filters",
			map[string]any{"checked": []string{}, "radio": []float64{}}))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeBody(t, w)["products"], 3)
	})

	t.Run("category and price conjunct", func(t *testing.T) {
		w := app.do(jsonRequest(http.MethodPost, "/api/v1/product/product-filters",
			map[string]any{"checked": []string{desks.Hex()}, "radio": []float64{50, 200}}))

		require.Equal(t, http.StatusOK, w.Code)
		products := decodeBody(t, w)["products"].([]any)
		require.Len(t, products, 1)
		assert.Equal(t, "Desk A", products[0].(map[string]any)["name"])
	})

	t.Run("price bounds are inclusive", func(t *testing.T) {
		w := app.do(jsonRequest(http.MethodPost, "/api/v1/product/product-filters",
			map[string]any{"checked": []string{}, "radio": []float64{100, 150}}))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeBody(t, w)["products"], 2)
	})
}

func TestProductCountAndSearch(t *testing.T) {
	app := newTestApp(t)
	app.products.products = []models.Product{
		{ID: newID(t), Name: "Walnut Desk", Description: "solid wood", CategoryID: newID(t)},
		{ID: newID(t), Name: "Chair", Description: "a walnut chair", CategoryID: newID(t)},
		{ID: newID(t), Name: "Lamp", Description: "steel", CategoryID: newID(t)},
	}

	t.Run("count", func(t *testing.T) {
		w := app.do(httptest.NewRequest(http.MethodGet, "/api/v1/product/product-count", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 3, decodeBody(t, w)["total"])
	})

	t.Run("search matches name or description, case-insensitive", func(t *testing.T) {
		w := app.do(httptest.NewRequest(http.MethodGet, "/api/v1/product/search/WALNUT", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var results []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
		assert.Len(t, results, 2)
	})
}

func TestRelatedProduct(t *testing.T) {
	app := newTestApp(t)
	category := newID(t)
	source := models.Product{ID: newID(t), Name: "Source", CategoryID: category}
	app.products.products = []models.Product{source}
	for i := 0; i < 5; i++ {
		app.products.products = append(app.products.products,
			models.Product{ID: newID(t), Name: "Sibling", CategoryID: category})
	}

	t.Run("caps at three and excludes the source", func(t *testing.T) {
		w := app.do(httptest.NewRequest(http.MethodGet,
			"/api/v1/product/related-product/"+source.ID.Hex()+"/"+category.Hex(), nil))

		require.Equal(t, http.StatusOK, w.Code)
		products := decodeBody(t, w)["products"].([]any)
		require.Len(t, products, 3)
		for _, p := range products {
			assert.NotEqual(t, source.ID.Hex(), p.(map[string]any)["_id"])
		}
	})

	t.Run("malformed ids rejected", func(t *testing.T) {
		w := app.do(httptest.NewRequest(http.MethodGet,
			"/api/v1/product/related-product/bad/"+category.Hex(), nil))

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProductCategory(t *testing.T) {
	app := newTestApp(t)
	books := models.Category{ID: newID(t), Name: "Books", Slug: "books"}
	app.categories.categories = []models.Category{books}
	app.products.products = []models.Product{
		{ID: newID(t), Name: "Novel", CategoryID: books.ID},
		{ID: newID(t), Name: "Lamp", CategoryID: newID(t)},
	}

	t.Run("category with its products", func(t *testing.T) {
		w := app.do(httptest.NewRequest(http.MethodGet, "/api/v1/product/product-category/books", nil))

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Len(t, body["products"], 1)
		assert.Equal(t, "Books", body["category"].(map[string]any)["name"])
	})

	t.Run("unknown category slug", func(t *testing.T) {
		w := app.do(httptest.NewRequest(http.MethodGet, "/api/v1/product/product-category/nope", nil))

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Category not found", decodeBody(t, w)["message"])
	})
}
