package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/apperrors"
	portssvc "github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/ports/services"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/dto"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/middleware"
	"github.com/gin-gonic/gin"
)

// productHandler handles HTTP requests related to the product catalog.
type productHandler struct {
	productService portssvc.ProductSvcFacade
}

func newProductHandler(ps portssvc.ProductSvcFacade) *productHandler {
	return &productHandler{productService: ps}
}

// registerProductRoutes registers the public catalog reads and admin writes.
func registerProductRoutes(public, admin *gin.RouterGroup, productService portssvc.ProductSvcFacade) {
	h := newProductHandler(productService)

	products := public.Group("/products")
	{
		products.GET("", h.listProducts)
		products.GET("/featured", h.listFeaturedProducts)
		products.GET("/slug/:slug", h.getProductBySlug)
		products.GET("/:id", h.getProductByID)
		products.GET("/:id/whatsapp-link", h.enquiryLink)
	}

	adminProducts := admin.Group("/products")
	{
		adminProducts.POST("", h.createProduct)
		adminProducts.PUT("/:id", h.updateProduct)
		adminProducts.DELETE("/:id", h.deleteProduct)
	}
}

// listProducts godoc
// @Summary List products
// @Description Retrieves a filtered page of products, newest first.
// @Tags products
// @Produce json
// @Param category_id query string false "Filter by category ID"
// @Param category_slug query string false "Filter by category slug"
// @Param featured query bool false "Filter by featured flag"
// @Param active_only query bool false "Only active products" default(true)
// @Param search query string false "Search over name, description and brand"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListProductsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /products [get]
func (h *productHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListProductsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	products, total, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list products", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list products"})
		return
	}

	c.JSON(http.StatusOK, dto.ListProductsResponse{
		Products: dto.ToListProductResponse(products),
		Total:    total,
		Limit:    params.Limit,
		Offset:   params.Offset,
	})
}

// listFeaturedProducts godoc
// @Summary List featured products
// @Description Retrieves active products flagged as featured.
// @Tags products
// @Produce json
// @Param limit query int false "Maximum entries" default(8)
// @Success 200 {array} dto.ProductResponse
// @Failure 500 {object} ErrorResponse
// @Router /products/featured [get]
func (h *productHandler) listFeaturedProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "8"))
	if err != nil || limit < 1 || limit > 100 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid limit"})
		return
	}

	products, err := h.productService.ListFeaturedProducts(c.Request.Context(), limit)
	if err != nil {
		logger.Error("Failed to list featured products", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list featured products"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListProductResponse(products))
}

// getProductByID godoc
// @Summary Get a product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /products/{id} [get]
func (h *productHandler) getProductByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	product, err := h.productService.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Product not found"})
			return
		}
		logger.Error("Failed to get product", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve product"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// getProductBySlug godoc
// @Summary Get a product by slug
// @Tags products
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /products/slug/{slug} [get]
func (h *productHandler) getProductBySlug(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	product, err := h.productService.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Product not found"})
			return
		}
		logger.Error("Failed to get product by slug", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve product"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// enquiryLink godoc
// @Summary WhatsApp enquiry link for a product
// @Description Builds a wa.me deep link that opens a chat with the business, pre-filled with an enquiry about the product.
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} dto.WhatsAppLinkResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /products/{id}/whatsapp-link [get]
func (h *productHandler) enquiryLink(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	link, err := h.productService.EnquiryLink(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Product not found"})
			return
		}
		logger.Error("Failed to build enquiry link", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build enquiry link"})
		return
	}

	c.JSON(http.StatusOK, dto.WhatsAppLinkResponse{WhatsAppURL: link})
}

// createProduct godoc
// @Summary Create a product
// @Description Adds a new product. The slug must be unique.
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Slug already exists"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /products [post]
func (h *productHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "A product with this slug already exists"})
			return
		}
		logger.Error("Failed to create product", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create product"})
		return
	}

	logger.Info("Product created", slog.String("product_id", product.ProductID))
	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// updateProduct godoc
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body dto.UpdateProductRequest true "Fields to update"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Slug already exists"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{id} [put]
func (h *productHandler) updateProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Product not found"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "A product with this slug already exists"})
		default:
			logger.Error("Failed to update product", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update product"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// deleteProduct godoc
// @Summary Delete a product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{id} [delete]
func (h *productHandler) deleteProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.productService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Product not found"})
			return
		}
		logger.Error("Failed to delete product", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
