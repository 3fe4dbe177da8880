package usecase

import (
	"context"
	"log"

	"autoservis_spz/internal/domain/entities"
	"autoservis_spz/internal/usecase/interfaces"
)

// BackfillResult aggregates one reconciliation pass. Total is the order
// count at the time of the scan.
type BackfillResult struct {
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
	Total   int `json:"total"`
}

// IReconcileUseCase is the admin-triggered maintenance operation that links
// legacy orders to vehicle records by normalized plate.

type IReconcileUseCase interface {
	BackfillVehicleIDByPlate(ctx context.Context) (BackfillResult, error)
}

type ReconcileUseCase struct {
	vehicles interfaces.IVehicleRepository
	orders   interfaces.IOrderRepository
}

var _ IReconcileUseCase = (*ReconcileUseCase)(nil)

func NewReconcileUseCase(vehicles interfaces.IVehicleRepository, orders interfaces.IOrderRepository) *ReconcileUseCase {
	return &ReconcileUseCase{vehicles: vehicles, orders: orders}
}

// BackfillVehicleIDByPlate loads both tables, builds a normalized
// plate-to-vehicle map (later vehicles win on duplicate plates, empty
// plates are excluded) and patches every order that has no vehicleId yet
// and whose normalized plate matches a vehicle. Orders that already carry
// a vehicleId are never touched, which makes the pass idempotent.
//
// The scan runs without locking over a point-in-time read of both tables;
// concurrent writers may be missed and are picked up by the next run.
func (u *ReconcileUseCase) BackfillVehicleIDByPlate(ctx context.Context) (BackfillResult, error) {
	vehicles, err := u.vehicles.List(ctx)
	if err != nil {
		return BackfillResult{}, err
	}
	orders, err := u.orders.List(ctx)
	if err != nil {
		return BackfillResult{}, err
	}

	byPlate := make(map[string]string, len(vehicles))
	for _, v := range vehicles {
		if key := entities.NormalizePlate(v.LicencePlate); key != "" {
			byPlate[key] = v.ID
		}
	}

	res := BackfillResult{Total: len(orders)}
	for _, o := range orders {
		if o.VehicleID != "" {
			res.Skipped++
			continue
		}
		vehicleID, ok := byPlate[entities.NormalizePlate(o.LicencePlate)]
		if !ok {
			res.Skipped++
			continue
		}

		if _, err := u.orders.Patch(ctx, o.ID, entities.OrderPatch{VehicleID: &vehicleID}); err != nil {
			log.Printf("[backfill] order %s link to vehicle %s failed: %v", o.ID, vehicleID, err)
			return res, err
		}
		res.Updated++
	}

	log.Printf("[backfill] linked %d of %d orders (%d skipped)", res.Updated, res.Total, res.Skipped)
	return res, nil
}
