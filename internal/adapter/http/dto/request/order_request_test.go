package request

import (
	"testing"

	"autoservis_spz/internal/domain/entities"
)

func TestOrderRequest_ToEntity(t *testing.T) {
	r := OrderRequest{
		OrderNumber:  1001,
		Date:         "01.01.2024",
		LicencePlate: "1AB2345",
		VehicleID:    "v1",
		Overdue:      "Ano",
	}

	o := r.ToEntity()
	if o.ID != "" {
		t.Fatalf("entity id is assigned later, got %q", o.ID)
	}
	if o.OrderNumber != 1001 || o.Date != "01.01.2024" || o.VehicleID != "v1" {
		t.Fatalf("unexpected entity: %+v", o)
	}
	if o.Overdue != "Ano" {
		t.Fatalf("given flag must pass through, got %q", o.Overdue)
	}
	// Unsupplied flags default to Ne at this boundary.
	if o.PickUp != entities.FlagNo || o.Nv != entities.FlagNo || o.Confirmed != entities.FlagNo ||
		o.Calculation != entities.FlagNo || o.Invoicing != entities.FlagNo {
		t.Fatalf("expected defaulted flags, got %+v", o)
	}
}

func TestOrderUpdateRequest_ToPatch(t *testing.T) {
	confirmed := "Ano"
	r := OrderUpdateRequest{Confirmed: &confirmed}

	p := r.ToPatch()
	if p.Confirmed == nil || *p.Confirmed != entities.FlagYes {
		t.Fatalf("unexpected confirmed patch: %+v", p.Confirmed)
	}
	if p.Date != nil || p.Overdue != nil || p.VehicleID != nil {
		t.Fatalf("absent keys must stay nil: %+v", p)
	}
}

func TestImportOrdersRequest_Records(t *testing.T) {
	r := ImportOrdersRequest{Orders: []OrderImportRecord{
		{OrderNumber: 1, Date: "01.01.2024", LicencePlate: "1AB2345", Overdue: "Ano"},
		{OrderNumber: 2, Date: "02.01.2024", LicencePlate: "5CD6789"},
	}}

	records := r.Records()
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Overdue != "Ano" {
		t.Fatalf("legacy flag must pass through, got %q", records[0].Overdue)
	}
	// Unlike the order form there is no flag defaulting on import.
	if records[1].Overdue != "" || records[1].Confirmed != "" {
		t.Fatalf("empty legacy flags must stay empty: %+v", records[1])
	}
	for _, rec := range records {
		if rec.ID != "" || rec.VehicleID != "" {
			t.Fatalf("import records carry neither id nor vehicle link: %+v", rec)
		}
	}
}
