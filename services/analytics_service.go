package services

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"restoflow/repository"
)

// SalesSummary feeds the dashboard cards and the analytics chart.
type SalesSummary struct {
	Days         []repository.DailySales `json:"days"`
	TotalRevenue decimal.Decimal         `json:"totalRevenue"`
	TotalOrders  int64                   `json:"totalOrders"`
}

type AnalyticsService struct {
	Orders *repository.OrderRepository
}

func NewAnalyticsService(orders *repository.OrderRepository) *AnalyticsService {
	return &AnalyticsService{Orders: orders}
}

func (s *AnalyticsService) Sales(restaurantID uint, days int) (*SalesSummary, error) {
	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)
	rows, err := s.Orders.SalesByDay(restaurantID, since)
	if err != nil {
		return nil, err
	}

	out := &SalesSummary{Days: rows, TotalRevenue: decimal.Zero}
	for _, r := range rows {
		out.TotalRevenue = out.TotalRevenue.Add(r.Revenue)
		out.TotalOrders += r.Orders
	}
	return out, nil
}

// WriteCSV streams the rollup as the export the analytics screen
// downloads.
func (s *AnalyticsService) WriteCSV(w io.Writer, summary *SalesSummary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "revenue", "orders"}); err != nil {
		return err
	}
	for _, r := range summary.Days {
		rec := []string{r.Date, r.Revenue.StringFixed(2), strconv.FormatInt(r.Orders, 10)}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
