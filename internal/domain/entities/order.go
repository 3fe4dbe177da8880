package entities

import (
	"strings"
	"time"
)

// Flag is a legacy string-encoded boolean carried over from the spreadsheet
// era: the only truthy value is "ano" (yes), case-insensitive. "Ne", "",
// or anything else reads as false. The string form is kept on the wire and
// in storage; core logic goes through Bool().
type Flag string

const (
	FlagYes Flag = "Ano"
	FlagNo  Flag = "Ne"
)

func (f Flag) Bool() bool {
	return strings.EqualFold(string(f), "ano")
}

// Order is a service order (zakázka).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (vehicle_id-index): vehicleId
//
// LicencePlate is a snapshot of the plate at creation time and stays as
// entered even when VehicleID is set. VehicleID is a non-owning reference:
// it may be absent (legacy/imported rows, until backfill links them) and it
// may dangle after the vehicle is deleted; readers treat a dangling
// reference the same as no reference.
type Order struct {
	ID           string `json:"id"`
	OrderNumber  int    `json:"orderNumber"`
	Date         string `json:"date"` // DD.MM.YYYY
	LicencePlate string `json:"licencePlate"`
	VehicleID    string `json:"vehicleId,omitempty"`

	Company        string `json:"company,omitempty"`
	ContactName    string `json:"contactName,omitempty"`
	ContactCompany string `json:"contactCompany,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty"`

	KmState       string `json:"kmState,omitempty"`
	RepairRequest string `json:"repairRequest,omitempty"`
	Deadline      string `json:"deadline,omitempty"`
	Time          string `json:"time,omitempty"`
	Note          string `json:"note,omitempty"`

	PickUpAddress        string `json:"pickUpAddress,omitempty"`
	PickUpTimeCollection string `json:"pickUpTimeCollection,omitempty"`
	PickUpTimeReturn     string `json:"pickUpTimeReturn,omitempty"`

	AutoService string `json:"autoService,omitempty"`
	Vin         string `json:"vin,omitempty"`
	Brand       string `json:"brand,omitempty"`

	PickUp      Flag `json:"pickUp,omitempty"`
	Nv          Flag `json:"nv,omitempty"`
	Confirmed   Flag `json:"confirmed,omitempty"`
	Calculation Flag `json:"calculation,omitempty"`
	Invoicing   Flag `json:"invoicing,omitempty"`
	Overdue     Flag `json:"overdue,omitempty"`
}

// OrderPatch is a partial update: only non-nil fields are written.
type OrderPatch struct {
	OrderNumber  *int
	Date         *string
	LicencePlate *string
	VehicleID    *string

	Company        *string
	ContactName    *string
	ContactCompany *string
	Phone          *string
	Email          *string

	KmState       *string
	RepairRequest *string
	Deadline      *string
	Time          *string
	Note          *string

	PickUpAddress        *string
	PickUpTimeCollection *string
	PickUpTimeReturn     *string

	AutoService *string
	Vin         *string
	Brand       *string

	PickUp      *Flag
	Nv          *Flag
	Confirmed   *Flag
	Calculation *Flag
	Invoicing   *Flag
	Overdue     *Flag
}

// OrderDateValue parses an order date for calendar-aware sorting: the
// DD.MM.YYYY fields are reversed into YYYY-MM-DD and parsed. Anything that
// does not parse collapses to the zero time, which sorts last in the
// descending order listing.
func OrderDateValue(date string) time.Time {
	parts := strings.Split(date, ".")
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	t, err := time.Parse("2006-1-2", strings.Join(parts, "-"))
	if err != nil {
		return time.Time{}
	}
	return t
}
