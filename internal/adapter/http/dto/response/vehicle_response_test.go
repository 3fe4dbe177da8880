package response

import (
	"testing"

	"autoservis_spz/internal/domain/entities"
)

func TestFromVehicle(t *testing.T) {
	v := entities.Vehicle{
		ID:            "v1",
		LicencePlate:  "1AB 2345",
		Make:          "Škoda",
		ModelLine:     "Octavia",
		VinCode:       "TMBJJ7NE4E0123456",
		OwnershipType: "leasing",
	}

	res := FromVehicle(v)
	if res.ID != "v1" || res.LicencePlate != "1AB 2345" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Make != "Škoda" || res.ModelLine != "Octavia" || res.VinCode != "TMBJJ7NE4E0123456" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.OwnershipType != "leasing" {
		t.Fatalf("unexpected ownership: %+v", res)
	}
}

func TestFromVehicles(t *testing.T) {
	res := FromVehicles([]entities.Vehicle{{ID: "v1"}, {ID: "v2"}})
	if len(res) != 2 || res[0].ID != "v1" || res[1].ID != "v2" {
		t.Fatalf("unexpected result: %+v", res)
	}

	if empty := FromVehicles(nil); len(empty) != 0 {
		t.Fatalf("expected empty slice, got %+v", empty)
	}
}
