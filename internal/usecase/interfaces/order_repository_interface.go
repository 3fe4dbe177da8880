package interfaces

import (
	"context"

	"autoservis_spz/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Deletes are hard and never touch referencing data; GetByID returns a zero
// Order (empty ID) when nothing matches.

type IOrderRepository interface {
	// List returns the whole order table in storage order.
	List(ctx context.Context) ([]entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	// ListByVehicleID queries the vehicle_id-index; ordering is up to the
	// caller.
	ListByVehicleID(ctx context.Context, vehicleID string) ([]entities.Order, error)
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	// Patch writes only the non-nil fields and returns the updated record,
	// or a zero Order when the id does not exist.
	Patch(ctx context.Context, id string, p entities.OrderPatch) (entities.Order, error)
	Delete(ctx context.Context, id string) error
}
