package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/apperrors"
	portssvc "github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/ports/services"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/dto"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/middleware"
	"github.com/gin-gonic/gin"
)

// categoryHandler handles HTTP requests related to product categories.
type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

func newCategoryHandler(cs portssvc.CategorySvcFacade) *categoryHandler {
	return &categoryHandler{categoryService: cs}
}

// registerCategoryRoutes registers the public reads and admin writes for
// categories.
func registerCategoryRoutes(public, admin *gin.RouterGroup, categoryService portssvc.CategorySvcFacade) {
	h := newCategoryHandler(categoryService)

	categories := public.Group("/categories")
	{
		categories.GET("", h.listCategories)
		categories.GET("/with-counts", h.listCategoriesWithCounts)
		categories.GET("/slug/:slug", h.getCategoryBySlug)
		categories.GET("/:id", h.getCategoryByID)
	}

	adminCategories := admin.Group("/categories")
	{
		adminCategories.POST("", h.createCategory)
		adminCategories.PUT("/:id", h.updateCategory)
		adminCategories.DELETE("/:id", h.deleteCategory)
	}
}

// listCategories godoc
// @Summary List categories
// @Description Retrieves categories ordered by display order. Inactive ones are hidden unless active_only=false.
// @Tags categories
// @Produce json
// @Param active_only query bool false "Only active categories" default(true)
// @Success 200 {array} dto.CategoryResponse
// @Failure 500 {object} ErrorResponse
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListCategoriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	categories, err := h.categoryService.ListCategories(c.Request.Context(), params.ActiveOnly)
	if err != nil {
		logger.Error("Failed to list categories", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list categories"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCategoryResponse(categories))
}

// listCategoriesWithCounts godoc
// @Summary List categories with product counts
// @Description Retrieves categories with the number of active products assigned to each.
// @Tags categories
// @Produce json
// @Param active_only query bool false "Only active categories" default(true)
// @Success 200 {array} dto.CategoryWithCountResponse
// @Failure 500 {object} ErrorResponse
// @Router /categories/with-counts [get]
func (h *categoryHandler) listCategoriesWithCounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListCategoriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	categories, err := h.categoryService.ListCategoriesWithCounts(c.Request.Context(), params.ActiveOnly)
	if err != nil {
		logger.Error("Failed to list categories with counts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list categories"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCategoryWithCountResponse(categories))
}

// getCategoryByID godoc
// @Summary Get a category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /categories/{id} [get]
func (h *categoryHandler) getCategoryByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	category, err := h.categoryService.GetCategoryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Category not found"})
			return
		}
		logger.Error("Failed to get category", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve category"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// getCategoryBySlug godoc
// @Summary Get a category by slug
// @Tags categories
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /categories/slug/{slug} [get]
func (h *categoryHandler) getCategoryBySlug(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	category, err := h.categoryService.GetCategoryBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Category not found"})
			return
		}
		logger.Error("Failed to get category by slug", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve category"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// createCategory godoc
// @Summary Create a category
// @Description Adds a new category. The slug must be unique.
// @Tags categories
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Slug already exists"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "A category with this slug already exists"})
			return
		}
		logger.Error("Failed to create category", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create category"})
		return
	}

	logger.Info("Category created", slog.String("category_id", category.CategoryID))
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// updateCategory godoc
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body dto.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Slug already exists"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories/{id} [put]
func (h *categoryHandler) updateCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Category not found"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "A category with this slug already exists"})
		default:
			logger.Error("Failed to update category", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update category"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// deleteCategory godoc
// @Summary Delete a category
// @Description Removes a category. Products assigned to it are detached, not deleted.
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories/{id} [delete]
func (h *categoryHandler) deleteCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.categoryService.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Category not found"})
			return
		}
		logger.Error("Failed to delete category", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
