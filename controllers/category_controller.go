package controllers

import (
	"github.com/gin-gonic/gin"

	"restoflow/pkg/resp"
	"restoflow/services"
	"restoflow/utils"
)

type CategoryController struct {
	Catalog *services.CatalogService
}

func NewCategoryController(catalog *services.CatalogService) *CategoryController {
	return &CategoryController{Catalog: catalog}
}

// GET /api/v1/categories
func (cc *CategoryController) List(c *gin.Context) {
	cats, err := cc.Catalog.ListCategories(utils.CurrentTenantID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cats)
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// POST /api/v1/categories
func (cc *CategoryController) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := cc.Catalog.CreateCategory(utils.CurrentTenantID(c), req.Name)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, cat)
}
