package request

import (
	"strings"

	"autoservis_spz/internal/domain/entities"
)

// VehicleRequest is the manual-entry payload for creating a vehicle.
type VehicleRequest struct {
	LicencePlate string `json:"licencePlate" binding:"required"`

	Make                 string `json:"make"`
	ModelLine            string `json:"modelLine"`
	Trim                 string `json:"trim"`
	EngineCapacity       string `json:"engineCapacity"`
	PowerKw              string `json:"powerKw"`
	FuelType             string `json:"fuelType"`
	Transmission         string `json:"transmission"`
	Powertrain           string `json:"powertrain"`
	VinCode              string `json:"vinCode"`
	Lessor               string `json:"lessor"`
	OwnershipType        string `json:"ownershipType"`
	PermanentAddressCity string `json:"permanentAddressCity"`
}

func (r VehicleRequest) ToEntity() entities.Vehicle {
	return entities.Vehicle{
		LicencePlate:         r.LicencePlate,
		Make:                 r.Make,
		ModelLine:            r.ModelLine,
		Trim:                 r.Trim,
		EngineCapacity:       r.EngineCapacity,
		PowerKw:              r.PowerKw,
		FuelType:             r.FuelType,
		Transmission:         r.Transmission,
		Powertrain:           r.Powertrain,
		VinCode:              r.VinCode,
		Lessor:               r.Lessor,
		OwnershipType:        r.OwnershipType,
		PermanentAddressCity: r.PermanentAddressCity,
	}
}

// VehicleUpdateRequest patches a vehicle in place; absent keys stay
// untouched.
type VehicleUpdateRequest struct {
	LicencePlate *string `json:"licencePlate"`

	Make                 *string `json:"make"`
	ModelLine            *string `json:"modelLine"`
	Trim                 *string `json:"trim"`
	EngineCapacity       *string `json:"engineCapacity"`
	PowerKw              *string `json:"powerKw"`
	FuelType             *string `json:"fuelType"`
	Transmission         *string `json:"transmission"`
	Powertrain           *string `json:"powertrain"`
	VinCode              *string `json:"vinCode"`
	Lessor               *string `json:"lessor"`
	OwnershipType        *string `json:"ownershipType"`
	PermanentAddressCity *string `json:"permanentAddressCity"`
}

func (r VehicleUpdateRequest) ToPatch() entities.VehiclePatch {
	return entities.VehiclePatch{
		LicencePlate:         r.LicencePlate,
		Make:                 r.Make,
		ModelLine:            r.ModelLine,
		Trim:                 r.Trim,
		EngineCapacity:       r.EngineCapacity,
		PowerKw:              r.PowerKw,
		FuelType:             r.FuelType,
		Transmission:         r.Transmission,
		Powertrain:           r.Powertrain,
		VinCode:              r.VinCode,
		Lessor:               r.Lessor,
		OwnershipType:        r.OwnershipType,
		PermanentAddressCity: r.PermanentAddressCity,
	}
}

// BulkImportVehiclesRequest carries one spreadsheet batch for the upsert
// engine. Callers chunk large files before posting.
type BulkImportVehiclesRequest struct {
	Vehicles []entities.VehicleImportRecord `json:"vehicles" binding:"required"`
}

// Records drops rows without a plate; an empty plate must never reach the
// upsert engine's lookup.
func (r BulkImportVehiclesRequest) Records() []entities.VehicleImportRecord {
	records := make([]entities.VehicleImportRecord, 0, len(r.Vehicles))
	for _, rec := range r.Vehicles {
		if strings.TrimSpace(rec.LicencePlate) == "" {
			continue
		}
		records = append(records, rec)
	}
	return records
}
