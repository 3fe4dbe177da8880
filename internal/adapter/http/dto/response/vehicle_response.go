package response

import (
	"autoservis_spz/internal/domain/entities"
)

type VehicleResponse struct {
	ID           string `json:"id"`
	LicencePlate string `json:"licencePlate"`

	Make                 string `json:"make,omitempty"`
	ModelLine            string `json:"modelLine,omitempty"`
	Trim                 string `json:"trim,omitempty"`
	EngineCapacity       string `json:"engineCapacity,omitempty"`
	PowerKw              string `json:"powerKw,omitempty"`
	FuelType             string `json:"fuelType,omitempty"`
	Transmission         string `json:"transmission,omitempty"`
	Powertrain           string `json:"powertrain,omitempty"`
	VinCode              string `json:"vinCode,omitempty"`
	Lessor               string `json:"lessor,omitempty"`
	OwnershipType        string `json:"ownershipType,omitempty"`
	PermanentAddressCity string `json:"permanentAddressCity,omitempty"`
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:                   v.ID,
		LicencePlate:         v.LicencePlate,
		Make:                 v.Make,
		ModelLine:            v.ModelLine,
		Trim:                 v.Trim,
		EngineCapacity:       v.EngineCapacity,
		PowerKw:              v.PowerKw,
		FuelType:             v.FuelType,
		Transmission:         v.Transmission,
		Powertrain:           v.Powertrain,
		VinCode:              v.VinCode,
		Lessor:               v.Lessor,
		OwnershipType:        v.OwnershipType,
		PermanentAddressCity: v.PermanentAddressCity,
	}
}

func FromVehicles(vehicles []entities.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, FromVehicle(v))
	}
	return out
}
