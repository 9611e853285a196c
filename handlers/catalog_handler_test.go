package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veralum/veralum-backend/internal/store/catalog"
	"github.com/veralum/veralum-backend/middleware"
	"github.com/veralum/veralum-backend/types"
)

func catalogRouter(t *testing.T) *gin.Engine {
	t.Helper()

	catalogStore, err := catalog.NewStore()
	require.NoError(t, err)

	handler := NewCatalogHandler(catalogStore)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	v1 := r.Group("/v1/catalog")
	{
		v1.GET("/collections", handler.ListCollections)
		v1.GET("/collections/:slug", handler.GetCollection)
		v1.GET("/products", handler.ListProducts)
		v1.GET("/products/:slug", handler.GetProduct)
	}
	return r
}

func TestListCollections(t *testing.T) {
	w := httptest.NewRecorder()
	catalogRouter(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog/collections", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var collections []types.Collection
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &collections))
	assert.NotEmpty(t, collections)
}

func TestGetCollection(t *testing.T) {
	r := catalogRouter(t)

	t.Run("known slug", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog/collections/clima-line", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var collection types.Collection
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &collection))
		assert.Equal(t, "Clima Line", collection.Name)
	})

	t.Run("unknown slug", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog/collections/no-such-line", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListProducts(t *testing.T) {
	r := catalogRouter(t)

	t.Run("all products", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog/products", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var products []types.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
		assert.NotEmpty(t, products)
	})

	t.Run("filtered by collection", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog/products?collection=forma-kitchen", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var products []types.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
		require.NotEmpty(t, products)
		for _, p := range products {
			assert.Equal(t, "forma-kitchen", p.Collection)
		}
	})

	t.Run("unknown collection yields empty list", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog/products?collection=nope", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}

func TestGetProduct(t *testing.T) {
	r := catalogRouter(t)

	t.Run("known slug", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog/products/atrium-slide-duo", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var product types.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
		assert.Equal(t, "Atrium Slide Duo", product.Name)
		assert.Equal(t, "atrium-slide", product.Collection)
	})

	t.Run("unknown slug", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog/products/no-such-product", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
