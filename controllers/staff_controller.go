package controllers

import (
	"github.com/gin-gonic/gin"

	"restoflow/pkg/resp"
	"restoflow/services"
	"restoflow/utils"
)

type StaffController struct {
	Staff *services.StaffService
}

func NewStaffController(staff *services.StaffService) *StaffController {
	return &StaffController{Staff: staff}
}

// GET /api/v1/users
func (sc *StaffController) List(c *gin.Context) {
	users, err := sc.Staff.List(utils.CurrentTenantID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, users)
}

// POST /api/v1/users
func (sc *StaffController) Create(c *gin.Context) {
	var in services.CreateStaffIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := sc.Staff.Create(utils.CurrentTenantID(c), &in)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, user)
}
