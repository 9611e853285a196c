package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/veralum/veralum-backend/errors"
	"github.com/veralum/veralum-backend/internal/store"
	"github.com/veralum/veralum-backend/types"
)

// CatalogHandler serves the read-only product catalog.
type CatalogHandler struct {
	catalogStore store.CatalogStore
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogStore store.CatalogStore) *CatalogHandler {
	return &CatalogHandler{catalogStore: catalogStore}
}

// ListCollections godoc
// @Summary      List product collections
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  types.Collection
// @Router       /v1/catalog/collections [get]
func (h *CatalogHandler) ListCollections(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogStore.Collections())
}

// GetCollection godoc
// @Summary      Get a collection by slug
// @Tags         catalog
// @Produce      json
// @Param        slug  path      string  true  "Collection slug"
// @Success      200   {object}  types.Collection
// @Failure      404   {object}  middleware.ErrorResponse
// @Router       /v1/catalog/collections/{slug} [get]
func (h *CatalogHandler) GetCollection(c *gin.Context) {
	slug := c.Param("slug")
	collection, err := h.catalogStore.CollectionBySlug(slug)
	if err != nil {
		_ = c.Error(apperrors.NotFound("Collection", slug))
		return
	}
	c.JSON(http.StatusOK, collection)
}

// ListProducts godoc
// @Summary      List products
// @Description  Lists catalog products, optionally filtered by collection
// @Tags         catalog
// @Produce      json
// @Param        collection  query    string  false  "Collection slug filter"
// @Success      200  {array}  types.Product
// @Router       /v1/catalog/products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products := h.catalogStore.Products(c.Query("collection"))
	if products == nil {
		products = []types.Product{}
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct godoc
// @Summary      Get a product by slug
// @Tags         catalog
// @Produce      json
// @Param        slug  path      string  true  "Product slug"
// @Success      200   {object}  types.Product
// @Failure      404   {object}  middleware.ErrorResponse
// @Router       /v1/catalog/products/{slug} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	slug := c.Param("slug")
	product, err := h.catalogStore.ProductBySlug(slug)
	if err != nil {
		_ = c.Error(apperrors.NotFound("Product", slug))
		return
	}
	c.JSON(http.StatusOK, product)
}
