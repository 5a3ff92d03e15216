package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"restoflow/pkg/resp"
	"restoflow/services"
	"restoflow/utils"
)

type AnalyticsController struct {
	Analytics *services.AnalyticsService
}

func NewAnalyticsController(analytics *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Analytics: analytics}
}

// GET /api/v1/analytics/sales?days=30&format=csv
func (ac *AnalyticsController) Sales(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	summary, err := ac.Analytics.Sales(utils.CurrentTenantID(c), days)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	if c.Query("format") == "csv" {
		c.Header("Content-Disposition", `attachment; filename="sales.csv"`)
		c.Header("Content-Type", "text/csv")
		c.Status(http.StatusOK)
		if err := ac.Analytics.WriteCSV(c.Writer, summary); err != nil {
			// headers are already out; just log through gin's error list
			_ = c.Error(err)
		}
		return
	}

	resp.OK(c, summary)
}
