package usecase

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"

	"autoservis_spz/internal/domain/entities"
	"autoservis_spz/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidOrderNumber = errors.New("invalid order number")
	ErrOrderDateRequired  = errors.New("order date is required")
)

// OrderListFilter combines the optional listing predicates; all given
// predicates must hold (logical AND).
type OrderListFilter struct {
	Search       string
	Overdue      bool
	LicencePlate string
	VehicleID    string
}

// OrderStats are dashboard counters over the whole order table.
type OrderStats struct {
	Total        int `json:"total"`
	Overdue      int `json:"overdue"`
	Confirmed    int `json:"confirmed"`
	PickUpOrders int `json:"pickUpOrders"`
}

// ImportResult reports a plain (insert-only) import batch.
type ImportResult struct {
	Count int `json:"count"`
}

type IOrderUseCase interface {
	ListOrders(ctx context.Context, f OrderListFilter) ([]entities.Order, error)
	GetOrder(ctx context.Context, id string) (entities.Order, error)
	ListOrdersByVehicle(ctx context.Context, vehicleID string) ([]entities.Order, error)
	AddOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	UpdateOrder(ctx context.Context, id string, p entities.OrderPatch) (entities.Order, error)
	DeleteOrder(ctx context.Context, id string) error
	ImportOrders(ctx context.Context, records []entities.Order) (ImportResult, error)
	GetOrderStats(ctx context.Context) (OrderStats, error)
}

type OrderUseCase struct {
	repo interfaces.IOrderRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// ListOrders loads the order table and applies the filters in memory,
// then sorts newest-first by parsing the DD.MM.YYYY date. This path is
// calendar-aware, unlike the lexical sort in ListOrdersByVehicle.
func (u *OrderUseCase) ListOrders(ctx context.Context, f OrderListFilter) ([]entities.Order, error) {
	orders, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if f.VehicleID != "" {
		orders = keepOrders(orders, func(o entities.Order) bool {
			return o.VehicleID == f.VehicleID
		})
	}

	// The search substring is matched exactly as given, padding included.
	if search := strings.ToLower(f.Search); search != "" {
		orders = keepOrders(orders, func(o entities.Order) bool {
			return strings.Contains(strings.ToLower(o.LicencePlate), search) ||
				strings.Contains(strings.ToLower(o.Company), search) ||
				strings.Contains(strings.ToLower(o.ContactName), search) ||
				strings.Contains(strconv.Itoa(o.OrderNumber), search)
		})
	}

	// Overdue only ever restricts to "yes"; there is no not-overdue filter.
	if f.Overdue {
		orders = keepOrders(orders, func(o entities.Order) bool {
			return o.Overdue.Bool()
		})
	}

	// Exact-plate filter kept for compatibility with older callers; the
	// search predicate above is the usual path.
	if f.LicencePlate != "" {
		orders = keepOrders(orders, func(o entities.Order) bool {
			return o.LicencePlate == f.LicencePlate
		})
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return entities.OrderDateValue(orders[i].Date).After(entities.OrderDateValue(orders[j].Date))
	})
	return orders, nil
}

func keepOrders(orders []entities.Order, pred func(entities.Order) bool) []entities.Order {
	kept := orders[:0]
	for _, o := range orders {
		if pred(o) {
			kept = append(kept, o)
		}
	}
	return kept
}

func (u *OrderUseCase) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// ListOrdersByVehicle is the vehicle-detail listing. It sorts descending by
// lexical comparison of the raw date string, which differs from calendar
// order for DD.MM.YYYY dates; existing screens depend on this behavior.
func (u *OrderUseCase) ListOrdersByVehicle(ctx context.Context, vehicleID string) ([]entities.Order, error) {
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return nil, ErrInvalidVehicleID
	}

	orders, err := u.repo.ListByVehicleID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Date > orders[j].Date
	})
	return orders, nil
}

func (u *OrderUseCase) AddOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	if o.OrderNumber <= 0 {
		return entities.Order{}, ErrInvalidOrderNumber
	}
	if strings.TrimSpace(o.Date) == "" {
		return entities.Order{}, ErrOrderDateRequired
	}
	if strings.TrimSpace(o.LicencePlate) == "" {
		return entities.Order{}, ErrPlateRequired
	}

	o.ID = uuid.NewString()
	return u.repo.Create(ctx, o)
}

func (u *OrderUseCase) UpdateOrder(ctx context.Context, id string, p entities.OrderPatch) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	updated, err := u.repo.Patch(ctx, id, p)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return updated, nil
}

func (u *OrderUseCase) DeleteOrder(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidOrderID
	}
	return u.repo.Delete(ctx, id)
}

// ImportOrders bulk-loads legacy rows as-is: every record is inserted
// unconditionally, with no dedup and no vehicle linkage (imported rows get
// linked later by BackfillVehicleIDByPlate). Inserts stop at the first
// store error; prior inserts stay committed and the count reflects them,
// so callers re-run the remaining chunk.
func (u *OrderUseCase) ImportOrders(ctx context.Context, records []entities.Order) (ImportResult, error) {
	var res ImportResult
	for _, rec := range records {
		rec.ID = uuid.NewString()
		rec.VehicleID = ""
		if _, err := u.repo.Create(ctx, rec); err != nil {
			return res, err
		}
		res.Count++
	}
	return res, nil
}

func (u *OrderUseCase) GetOrderStats(ctx context.Context) (OrderStats, error) {
	orders, err := u.repo.List(ctx)
	if err != nil {
		return OrderStats{}, err
	}

	stats := OrderStats{Total: len(orders)}
	for _, o := range orders {
		if o.Overdue.Bool() {
			stats.Overdue++
		}
		if o.Confirmed.Bool() {
			stats.Confirmed++
		}
		if o.PickUp.Bool() {
			stats.PickUpOrders++
		}
	}
	return stats, nil
}
