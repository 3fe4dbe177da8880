package interfaces

import (
	"context"

	"autoservis_spz/internal/domain/entities"
)

// IVehicleRepository abstracts DynamoDB persistence for Vehicle.
//
// Absence is not an error: GetByID and FindByPlate return a zero Vehicle
// (empty ID) when nothing matches.

type IVehicleRepository interface {
	// List returns the whole vehicle table in storage order.
	List(ctx context.Context) ([]entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	// FindByPlate is an exact stored-plate index lookup; no normalization
	// happens here.
	FindByPlate(ctx context.Context, licencePlate string) (entities.Vehicle, error)
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	// Patch writes only the non-nil fields and returns the updated record,
	// or a zero Vehicle when the id does not exist.
	Patch(ctx context.Context, id string, p entities.VehiclePatch) (entities.Vehicle, error)
	Delete(ctx context.Context, id string) error
}
