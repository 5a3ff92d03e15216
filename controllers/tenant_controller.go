package controllers

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"restoflow/pkg/resp"
	"restoflow/services"
)

// TenantController is the super-admin console: restaurant lifecycle
// plus logo upload. Forms arrive as multipart because of the logo file
// (the list endpoint is plain JSON).
type TenantController struct {
	Tenants   *services.TenantService
	UploadDir string
}

func NewTenantController(tenants *services.TenantService, uploadDir string) *TenantController {
	return &TenantController{Tenants: tenants, UploadDir: uploadDir}
}

// GET /api/v1/tenants
func (t *TenantController) List(c *gin.Context) {
	tenants, err := t.Tenants.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, tenants)
}

func (t *TenantController) saveLogo(c *gin.Context) (string, error) {
	file, err := c.FormFile("logo")
	if err != nil {
		return "", nil // logo is optional
	}
	name := fmt.Sprintf("logo-%s%s", uuid.NewString(), filepath.Ext(file.Filename))
	dst := filepath.Join(t.UploadDir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

func parseTaxRate(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.NewFromFloat(0.1), nil
	}
	return decimal.NewFromString(raw)
}

// POST /api/v1/tenants (multipart: fields + optional logo file)
func (t *TenantController) Create(c *gin.Context) {
	taxRate, err := parseTaxRate(c.PostForm("taxRate"))
	if err != nil {
		resp.BadRequest(c, "invalid taxRate")
		return
	}
	logo, err := t.saveLogo(c)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	in := &services.CreateTenantIn{
		Name:          c.PostForm("name"),
		Address:       c.PostForm("address"),
		Currency:      c.PostForm("currency"),
		TaxRate:       taxRate,
		Plan:          c.PostForm("plan"),
		Logo:          logo,
		AdminEmail:    c.PostForm("adminEmail"),
		AdminPassword: c.PostForm("adminPassword"),
	}
	rest, err := t.Tenants.Create(in)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, rest)
}

// PUT /api/v1/tenants/:id
func (t *TenantController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid tenant id")
		return
	}

	in := &services.UpdateTenantIn{
		Name:          c.PostForm("name"),
		Address:       c.PostForm("address"),
		Currency:      c.PostForm("currency"),
		Plan:          c.PostForm("plan"),
		AdminEmail:    c.PostForm("adminEmail"),
		AdminPassword: c.PostForm("adminPassword"),
	}
	if raw := c.PostForm("taxRate"); raw != "" {
		rate, err := decimal.NewFromString(raw)
		if err != nil {
			resp.BadRequest(c, "invalid taxRate")
			return
		}
		in.TaxRate = &rate
	}
	if logo, err := t.saveLogo(c); err != nil {
		resp.ServerError(c, err)
		return
	} else if logo != "" {
		in.Logo = logo
	}

	rest, err := t.Tenants.Update(uint(id), in)
	if err != nil {
		if errors.Is(err, services.ErrTenantNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, rest)
}

// GET /api/v1/tenants/:id/admin
func (t *TenantController) Admin(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid tenant id")
		return
	}
	admin, err := t.Tenants.GetAdmin(uint(id))
	if err != nil {
		resp.NotFound(c, "admin not found")
		return
	}
	resp.OK(c, gin.H{"id": admin.ID, "name": admin.Name, "email": admin.Email})
}
