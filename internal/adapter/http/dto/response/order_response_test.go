package response

import (
	"testing"

	"autoservis_spz/internal/domain/entities"
)

func TestFromOrder(t *testing.T) {
	o := entities.Order{
		ID:           "o1",
		OrderNumber:  1001,
		Date:         "01.01.2024",
		LicencePlate: "1AB2345",
		VehicleID:    "v1",
		Company:      "Alfa s.r.o.",
		ContactName:  "Novák",
		Overdue:      entities.FlagYes,
		Confirmed:    entities.FlagNo,
	}

	res := FromOrder(o)
	if res.ID != "o1" || res.OrderNumber != 1001 || res.Date != "01.01.2024" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.LicencePlate != "1AB2345" || res.VehicleID != "v1" {
		t.Fatalf("unexpected vehicle fields: %+v", res)
	}
	if res.Overdue != "Ano" || res.Confirmed != "Ne" {
		t.Fatalf("flags must keep the legacy string form: %+v", res)
	}
}

func TestFromOrders(t *testing.T) {
	res := FromOrders([]entities.Order{{ID: "o1"}, {ID: "o2"}})
	if len(res) != 2 || res[0].ID != "o1" || res[1].ID != "o2" {
		t.Fatalf("unexpected result: %+v", res)
	}

	if empty := FromOrders(nil); len(empty) != 0 {
		t.Fatalf("expected empty slice, got %+v", empty)
	}
}
