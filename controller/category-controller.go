package controller

import (
	"parade/app_error"
	"parade/auth"
	"parade/repository"
	"parade/service"
	"parade/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryController struct {
	categoryService *service.CategoryService
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{
		categoryService: service.NewCategoryService(db),
	}
}

func setupCategoryController(db *gorm.DB) []RouteInfo {
	e := NewCategoryController(db)
	basePath := "/events/:event_id/categories"
	staff := []auth.Role{auth.RoleCoordinator}
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getCategoriesHandler(), Cached: true},
		{Method: "POST", Path: "", HandlerFunc: e.createCategoryHandler(), Authenticated: true, RequiredRoles: staff},
		{Method: "PUT", Path: "/order", HandlerFunc: e.reorderCategoriesHandler(), Authenticated: true, RequiredRoles: staff},
		{Method: "PATCH", Path: "/:category_id", HandlerFunc: e.updateCategoryHandler(), Authenticated: true, RequiredRoles: staff},
		{Method: "DELETE", Path: "/:category_id", HandlerFunc: e.deleteCategoryHandler(), Authenticated: true, RequiredRoles: staff},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @Description Fetches the scoring categories of an event in display order
// @Tags category
// @Produce json
// @Param eventId path int true "Event ID"
// @Success 200 {array} CategoryResponse
// @Router /events/{eventId}/categories [get]
func (e *CategoryController) getCategoriesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := pathInt(c, "event_id")
		if !ok {
			return
		}
		categories, err := e.categoryService.GetCategoriesForEvent(eventId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(categories, toCategoryResponse))
	}
}

// @Description Creates a scoring category
// @Tags category
// @Accept json
// @Produce json
// @Param eventId path int true "Event ID"
// @Param category body CategoryCreate true "Category to create"
// @Success 201 {object} CategoryResponse
// @Security BearerAuth
// @Router /events/{eventId}/categories [post]
func (e *CategoryController) createCategoryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := pathInt(c, "event_id")
		if !ok {
			return
		}
		var categoryCreate CategoryCreate
		if err := c.BindJSON(&categoryCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		category, err := e.categoryService.CreateCategory(eventId, categoryCreate.toModel())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toCategoryResponse(category))
	}
}

// @Description Updates a scoring category, absent fields stay unchanged
// @Tags category
// @Accept json
// @Produce json
// @Param eventId path int true "Event ID"
// @Param categoryId path int true "Category ID"
// @Param category body CategoryUpdate true "Fields to change"
// @Success 200 {object} CategoryResponse
// @Security BearerAuth
// @Router /events/{eventId}/categories/{categoryId} [patch]
func (e *CategoryController) updateCategoryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := pathInt(c, "event_id")
		if !ok {
			return
		}
		categoryId, ok := pathInt(c, "category_id")
		if !ok {
			return
		}
		var update CategoryUpdate
		if err := c.BindJSON(&update); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		category, err := e.categoryService.UpdateCategory(eventId, categoryId, update.toModel())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toCategoryResponse(category))
	}
}

// @Description Renumbers the display order following the given ids
// @Tags category
// @Accept json
// @Produce json
// @Param eventId path int true "Event ID"
// @Param order body CategoryOrder true "Category ids in display order"
// @Success 200 {array} CategoryResponse
// @Security BearerAuth
// @Router /events/{eventId}/categories/order [put]
func (e *CategoryController) reorderCategoriesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := pathInt(c, "event_id")
		if !ok {
			return
		}
		var order CategoryOrder
		if err := c.BindJSON(&order); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		categories, err := e.categoryService.ReorderCategories(eventId, order.CategoryIds)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(categories, toCategoryResponse))
	}
}

// @Description Deletes a category that has no scores yet
// @Tags category
// @Param eventId path int true "Event ID"
// @Param categoryId path int true "Category ID"
// @Success 204
// @Security BearerAuth
// @Router /events/{eventId}/categories/{categoryId} [delete]
func (e *CategoryController) deleteCategoryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := pathInt(c, "event_id")
		if !ok {
			return
		}
		categoryId, ok := pathInt(c, "category_id")
		if !ok {
			return
		}
		if err := e.categoryService.DeleteCategory(eventId, categoryId); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.Status(204)
	}
}

type CategoryCreate struct {
	Name         string `json:"name" binding:"required"`
	DisplayOrder int    `json:"display_order"`
	Required     *bool  `json:"required"`
	AllowNone    bool   `json:"allow_none"`
	MaxScore     int    `json:"max_score"`
}

type CategoryUpdate struct {
	Name         *string `json:"name"`
	DisplayOrder *int    `json:"display_order"`
	Required     *bool   `json:"required"`
	AllowNone    *bool   `json:"allow_none"`
	MaxScore     *int    `json:"max_score"`
}

type CategoryOrder struct {
	CategoryIds []int `json:"category_ids" binding:"required"`
}

type CategoryResponse struct {
	Id           int    `json:"id"`
	EventId      int    `json:"event_id"`
	Name         string `json:"name"`
	DisplayOrder int    `json:"display_order"`
	Required     bool   `json:"required"`
	AllowNone    bool   `json:"allow_none"`
	MaxScore     int    `json:"max_score"`
}

const defaultMaxScore = 10

func (e *CategoryCreate) toModel() *repository.Category {
	category := &repository.Category{
		Name:         e.Name,
		DisplayOrder: e.DisplayOrder,
		Required:     true,
		AllowNone:    e.AllowNone,
		MaxScore:     e.MaxScore,
	}
	if e.Required != nil {
		category.Required = *e.Required
	}
	if category.MaxScore == 0 {
		category.MaxScore = defaultMaxScore
	}
	return category
}

func (e *CategoryUpdate) toModel() *service.CategoryUpdate {
	return &service.CategoryUpdate{
		Name:         e.Name,
		DisplayOrder: e.DisplayOrder,
		Required:     e.Required,
		AllowNone:    e.AllowNone,
		MaxScore:     e.MaxScore,
	}
}

func toCategoryResponse(category *repository.Category) CategoryResponse {
	return CategoryResponse{
		Id:           category.Id,
		EventId:      category.EventId,
		Name:         category.Name,
		DisplayOrder: category.DisplayOrder,
		Required:     category.Required,
		AllowNone:    category.AllowNone,
		MaxScore:     category.MaxScore,
	}
}
