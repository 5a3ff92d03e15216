package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"

	"restoflow/pkg/resp"
	"restoflow/services"
	"restoflow/utils"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// GET /api/v1/orders
func (oc *OrderController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	orders, err := oc.Orders.List(utils.CurrentTenantID(c), limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// POST /api/v1/orders is the submission boundary for POS terminals.
// Echoes the persisted order; replays of the same clientKey echo the
// original row.
func (oc *OrderController) Create(c *gin.Context) {
	var in services.SubmitOrderIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if in.CashierID == 0 {
		in.CashierID = utils.CurrentUserID(c)
	}

	order, err := oc.Orders.Submit(c.Request.Context(), utils.CurrentTenantID(c), &in)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoLines),
			errors.Is(err, services.ErrBadLine),
			errors.Is(err, services.ErrTotalsMismatch):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, order)
}

// GET /api/v1/orders/:code
func (oc *OrderController) Detail(c *gin.Context) {
	order, err := oc.Orders.GetByCode(utils.CurrentTenantID(c), c.Param("code"))
	if err != nil {
		resp.NotFound(c, "order not found")
		return
	}
	resp.OK(c, order)
}

// GET /api/v1/orders/:code/qr serves the PNG printed on the receipt.
// Scanning it opens the order detail.
func (oc *OrderController) QR(c *gin.Context) {
	code := c.Param("code")
	order, err := oc.Orders.GetByCode(utils.CurrentTenantID(c), code)
	if err != nil {
		resp.NotFound(c, "order not found")
		return
	}

	payload := fmt.Sprintf("restoflow://orders/%d/%s", order.RestaurantID, order.Code)
	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
