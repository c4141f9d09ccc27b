package services

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statistics is the dashboard rollup over the whole inventory.
type Statistics struct {
	Total               int     `json:"total"`
	BelowThreshold      int     `json:"below_threshold"`
	OutOfStock          int     `json:"out_of_stock"`
	OrdersSentCount     int     `json:"orders_sent_count"`
	StockValue          float64 `json:"stock_value"`
	ResupplyWindowCount int     `json:"resupply_window_count"`
}

// AggregateStatistics computes the rollup fresh from the given items. Stock
// value is summed exactly and rounded to 2 decimals once at the end.
func AggregateStatistics(items []InventoryRecord, today time.Time, windowDays int) Statistics {
	stats := Statistics{Total: len(items)}
	value := decimal.Zero

	for _, item := range items {
		alert := EvaluateStock(item.Stock, item.Threshold)
		switch {
		case alert.Severity == SeverityOutOfStock:
			stats.OutOfStock++
		case alert.InAlert:
			stats.BelowThreshold++
		}

		if item.OrderSent {
			stats.OrdersSentCount++
		}

		if InResupplyWindow(today, windowDays, item.NextResupplyDate).Included {
			stats.ResupplyWindowCount++
		}

		value = value.Add(decimal.NewFromFloat(item.UnitCost).Mul(decimal.NewFromInt(int64(item.Stock))))
	}

	stats.StockValue = value.Round(2).InexactFloat64()
	return stats
}
