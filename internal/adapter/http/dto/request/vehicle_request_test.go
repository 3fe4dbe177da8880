package request

import (
	"testing"

	"autoservis_spz/internal/domain/entities"
)

func TestVehicleRequest_ToEntity(t *testing.T) {
	r := VehicleRequest{
		LicencePlate: "1AB 2345",
		Make:         "Škoda",
		ModelLine:    "Octavia",
		VinCode:      "TMBJJ7NE4E0123456",
	}

	v := r.ToEntity()
	if v.ID != "" {
		t.Fatalf("entity id is assigned later, got %q", v.ID)
	}
	// The display plate is stored exactly as entered.
	if v.LicencePlate != "1AB 2345" {
		t.Fatalf("plate must not be normalized here, got %q", v.LicencePlate)
	}
	if v.Make != "Škoda" || v.ModelLine != "Octavia" || v.VinCode != "TMBJJ7NE4E0123456" {
		t.Fatalf("unexpected entity: %+v", v)
	}
}

func TestVehicleUpdateRequest_ToPatch(t *testing.T) {
	fuel := "diesel"
	r := VehicleUpdateRequest{FuelType: &fuel}

	p := r.ToPatch()
	if p.FuelType == nil || *p.FuelType != "diesel" {
		t.Fatalf("unexpected fuel patch: %+v", p.FuelType)
	}
	if p.LicencePlate != nil || p.Make != nil {
		t.Fatalf("absent keys must stay nil: %+v", p)
	}
}

func TestBulkImportVehiclesRequest_Records(t *testing.T) {
	r := BulkImportVehiclesRequest{Vehicles: []entities.VehicleImportRecord{
		{LicencePlate: "1AB2345", Make: "Škoda"},
		{LicencePlate: "   ", Make: "no plate"},
		{LicencePlate: "", Make: "also no plate"},
		{LicencePlate: "5CD6789"},
	}}

	records := r.Records()
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].LicencePlate != "1AB2345" || records[1].LicencePlate != "5CD6789" {
		t.Fatalf("unexpected records: %+v", records)
	}
}
