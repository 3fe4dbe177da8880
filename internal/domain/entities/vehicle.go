package entities

// Vehicle is a record in the shop's SPZ (licence plate) register.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (licence_plate-index): licencePlate
//
// LicencePlate keeps the display form exactly as entered (spacing, casing);
// NormalizePlate is applied wherever the plate is used as a match key.
// No two vehicles should share the same normalized plate, but this is not
// hard-enforced: import-by-plate upsert is the de facto dedup mechanism and
// AddVehicle inserts unconditionally.
type Vehicle struct {
	ID           string `json:"id"`
	LicencePlate string `json:"licencePlate"`

	Make                 string `json:"make,omitempty"`
	ModelLine            string `json:"modelLine,omitempty"`
	Trim                 string `json:"trim,omitempty"`
	EngineCapacity       string `json:"engineCapacity,omitempty"`
	PowerKw              string `json:"powerKw,omitempty"`
	FuelType             string `json:"fuelType,omitempty"`
	Transmission         string `json:"transmission,omitempty"`
	Powertrain           string `json:"powertrain,omitempty"` // legacy combined field from the old register
	VinCode              string `json:"vinCode,omitempty"`
	Lessor               string `json:"lessor,omitempty"`
	OwnershipType        string `json:"ownershipType,omitempty"`
	PermanentAddressCity string `json:"permanentAddressCity,omitempty"`
}

// VehiclePatch is a partial update: only non-nil fields are written.
type VehiclePatch struct {
	LicencePlate *string

	Make                 *string
	ModelLine            *string
	Trim                 *string
	EngineCapacity       *string
	PowerKw              *string
	FuelType             *string
	Transmission         *string
	Powertrain           *string
	VinCode              *string
	Lessor               *string
	OwnershipType        *string
	PermanentAddressCity *string
}

// VehicleImportRecord is one externally-sourced row for the bulk upsert
// engine. Plate is required; callers filter out rows without one before the
// record reaches the engine.
type VehicleImportRecord struct {
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

// Vehicle materializes the record as a new vehicle under the given id.
func (r VehicleImportRecord) Vehicle(id string) Vehicle {
	return Vehicle{
		ID:                   id,
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

// Patch expresses the record as a full overwrite of the import schema's
// keys, for the update leg of the upsert.
func (r VehicleImportRecord) Patch() VehiclePatch {
	return VehiclePatch{
		LicencePlate:         &r.LicencePlate,
		Make:                 &r.Make,
		ModelLine:            &r.ModelLine,
		Trim:                 &r.Trim,
		EngineCapacity:       &r.EngineCapacity,
		PowerKw:              &r.PowerKw,
		FuelType:             &r.FuelType,
		Transmission:         &r.Transmission,
		Powertrain:           &r.Powertrain,
		VinCode:              &r.VinCode,
		Lessor:               &r.Lessor,
		OwnershipType:        &r.OwnershipType,
		PermanentAddressCity: &r.PermanentAddressCity,
	}
}
