package response

import (
	"autoservis_spz/internal/domain/entities"
)

// OrderResponse keeps the legacy Ano/Ne flag strings on the wire; clients
// interpret them the same way the old spreadsheets did.
type OrderResponse struct {
	ID           string `json:"id"`
	OrderNumber  int    `json:"orderNumber"`
	Date         string `json:"date"`
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

	PickUp      string `json:"pickUp,omitempty"`
	Nv          string `json:"nv,omitempty"`
	Confirmed   string `json:"confirmed,omitempty"`
	Calculation string `json:"calculation,omitempty"`
	Invoicing   string `json:"invoicing,omitempty"`
	Overdue     string `json:"overdue,omitempty"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:                   o.ID,
		OrderNumber:          o.OrderNumber,
		Date:                 o.Date,
		LicencePlate:         o.LicencePlate,
		VehicleID:            o.VehicleID,
		Company:              o.Company,
		ContactName:          o.ContactName,
		ContactCompany:       o.ContactCompany,
		Phone:                o.Phone,
		Email:                o.Email,
		KmState:              o.KmState,
		RepairRequest:        o.RepairRequest,
		Deadline:             o.Deadline,
		Time:                 o.Time,
		Note:                 o.Note,
		PickUpAddress:        o.PickUpAddress,
		PickUpTimeCollection: o.PickUpTimeCollection,
		PickUpTimeReturn:     o.PickUpTimeReturn,
		AutoService:          o.AutoService,
		Vin:                  o.Vin,
		Brand:                o.Brand,
		PickUp:               string(o.PickUp),
		Nv:                   string(o.Nv),
		Confirmed:            string(o.Confirmed),
		Calculation:          string(o.Calculation),
		Invoicing:            string(o.Invoicing),
		Overdue:              string(o.Overdue),
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
