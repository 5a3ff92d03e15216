package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItem_LowStockInPayload(t *testing.T) {
	tests := []struct {
		name  string
		stock int
		want  bool
	}{
		{"out of stock", 0, true},
		{"just under threshold", LowStockThreshold - 1, true},
		{"at threshold", LowStockThreshold, false},
		{"well stocked", 50, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := Item{Name: "Burger", Stock: tt.stock}
			assert.Equal(t, tt.want, it.LowStock())

			raw, err := json.Marshal(it)
			assert.NoError(t, err)
			var payload map[string]any
			assert.NoError(t, json.Unmarshal(raw, &payload))
			assert.Equal(t, tt.want, payload["lowStock"])
		})
	}
}
