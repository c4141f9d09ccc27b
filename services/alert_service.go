package services

import "time"

// Stock alert severities, most urgent first.
const (
	SeverityOutOfStock = "out_of_stock"
	SeverityCritical   = "critical"
	SeverityLow        = "low"
)

// StockAlert is the result of evaluating an item's stock against its threshold.
type StockAlert struct {
	InAlert  bool   `json:"in_alert"`
	Severity string `json:"severity,omitempty"`
	Message  string `json:"message,omitempty"`
}

// EvaluateStock classifies stock against a reorder threshold. Rules are
// ordered, first match wins. Pure: no I/O, safe for concurrent callers.
func EvaluateStock(stock, threshold int) StockAlert {
	critical := threshold / 2
	if critical < 1 {
		critical = 1
	}

	switch {
	case stock <= 0:
		return StockAlert{InAlert: true, Severity: SeverityOutOfStock, Message: "stock exhausted, urgent order required."}
	case stock <= critical:
		return StockAlert{InAlert: true, Severity: SeverityCritical, Message: "risk of stockout, plan reorder."}
	case stock < threshold:
		return StockAlert{InAlert: true, Severity: SeverityLow, Message: "stock nearly depleted, consider reordering."}
	}
	return StockAlert{}
}

// LowStockAlert pairs an inventory item with its alert classification.
type LowStockAlert struct {
	Item     InventoryRecord `json:"item"`
	Severity string          `json:"severity"`
	Message  string          `json:"message"`
}

// ResupplyAlert pairs an inventory item with its upcoming delivery status.
type ResupplyAlert struct {
	Item          InventoryRecord `json:"item"`
	DaysRemaining *int            `json:"days_remaining"`
	Message       string          `json:"message"`
}

// AlertsMeta describes the parameters an alerts report was generated with.
type AlertsMeta struct {
	WindowDays  int       `json:"window_days"`
	GeneratedAt time.Time `json:"generated_at"`
}

// AlertsReport is the read-side alert listing for dashboards.
type AlertsReport struct {
	LowStock     []LowStockAlert `json:"low_stock"`
	NearResupply []ResupplyAlert `json:"near_resupply"`
	Meta         AlertsMeta      `json:"meta"`
}

// AlertService produces alert listings from the item store.
type AlertService struct {
	store ItemStore
	now   func() time.Time
}

// NewAlertService creates a new alert service.
func NewAlertService(store ItemStore) *AlertService {
	return &AlertService{store: store, now: time.Now}
}

// GetAlerts returns items currently in stock alert and items whose next
// resupply falls within the given window, sorted by resupply date.
func (s *AlertService) GetAlerts(windowDays int) (*AlertsReport, error) {
	if windowDays < 0 {
		return nil, ErrNegativeWindow
	}

	generatedAt := s.now().UTC()
	today := ToUTCDate(generatedAt)

	items, err := s.store.ListAll()
	if err != nil {
		return nil, err
	}

	lowStock := []LowStockAlert{}
	for _, item := range items {
		alert := EvaluateStock(item.Stock, item.Threshold)
		if !alert.InAlert {
			continue
		}
		lowStock = append(lowStock, LowStockAlert{
			Item:     item,
			Severity: alert.Severity,
			Message:  alert.Message,
		})
	}

	upcoming, err := s.store.ListByResupplyWindow(today, windowDays)
	if err != nil {
		return nil, err
	}

	nearResupply := []ResupplyAlert{}
	for _, item := range upcoming {
		status := InResupplyWindow(today, windowDays, item.NextResupplyDate)
		nearResupply = append(nearResupply, ResupplyAlert{
			Item:          item,
			DaysRemaining: status.DaysRemaining,
			Message:       status.Message,
		})
	}

	return &AlertsReport{
		LowStock:     lowStock,
		NearResupply: nearResupply,
		Meta: AlertsMeta{
			WindowDays:  windowDays,
			GeneratedAt: generatedAt,
		},
	}, nil
}
