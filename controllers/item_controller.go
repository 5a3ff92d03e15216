package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"restoflow/pkg/resp"
	"restoflow/services"
	"restoflow/utils"
)

type ItemController struct {
	Catalog *services.CatalogService
}

func NewItemController(catalog *services.CatalogService) *ItemController {
	return &ItemController{Catalog: catalog}
}

// GET /api/v1/items
func (ic *ItemController) List(c *gin.Context) {
	items, err := ic.Catalog.ListItems(c.Request.Context(), utils.CurrentTenantID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /api/v1/items
func (ic *ItemController) Create(c *gin.Context) {
	var in services.ItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	it, err := ic.Catalog.CreateItem(c.Request.Context(), utils.CurrentTenantID(c), &in)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, it)
}

// PUT /api/v1/items/:id
func (ic *ItemController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	var in services.ItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	it, err := ic.Catalog.UpdateItem(c.Request.Context(), utils.CurrentTenantID(c), uint(id), &in)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, it)
}

// DELETE /api/v1/items/:id
func (ic *ItemController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	if err := ic.Catalog.DeleteItem(c.Request.Context(), utils.CurrentTenantID(c), uint(id)); err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
