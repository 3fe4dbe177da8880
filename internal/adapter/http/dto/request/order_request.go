package request

import (
	"autoservis_spz/internal/domain/entities"
)

// OrderRequest is the order-form payload. The six status flags default to
// "Ne" when the form does not supply them; that convention lives here at
// the boundary, the storage layer takes whatever it is given.
type OrderRequest struct {
	OrderNumber  int    `json:"orderNumber" binding:"required"`
	Date         string `json:"date" binding:"required"`
	LicencePlate string `json:"licencePlate" binding:"required"`
	VehicleID    string `json:"vehicleId"`

	Company        string `json:"company"`
	ContactName    string `json:"contactName"`
	ContactCompany string `json:"contactCompany"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`

	KmState       string `json:"kmState"`
	RepairRequest string `json:"repairRequest"`
	Deadline      string `json:"deadline"`
	Time          string `json:"time"`
	Note          string `json:"note"`

	PickUpAddress        string `json:"pickUpAddress"`
	PickUpTimeCollection string `json:"pickUpTimeCollection"`
	PickUpTimeReturn     string `json:"pickUpTimeReturn"`

	AutoService string `json:"autoService"`
	Vin         string `json:"vin"`
	Brand       string `json:"brand"`

	PickUp      string `json:"pickUp"`
	Nv          string `json:"nv"`
	Confirmed   string `json:"confirmed"`
	Calculation string `json:"calculation"`
	Invoicing   string `json:"invoicing"`
	Overdue     string `json:"overdue"`
}

func (r OrderRequest) ToEntity() entities.Order {
	return entities.Order{
		OrderNumber:          r.OrderNumber,
		Date:                 r.Date,
		LicencePlate:         r.LicencePlate,
		VehicleID:            r.VehicleID,
		Company:              r.Company,
		ContactName:          r.ContactName,
		ContactCompany:       r.ContactCompany,
		Phone:                r.Phone,
		Email:                r.Email,
		KmState:              r.KmState,
		RepairRequest:        r.RepairRequest,
		Deadline:             r.Deadline,
		Time:                 r.Time,
		Note:                 r.Note,
		PickUpAddress:        r.PickUpAddress,
		PickUpTimeCollection: r.PickUpTimeCollection,
		PickUpTimeReturn:     r.PickUpTimeReturn,
		AutoService:          r.AutoService,
		Vin:                  r.Vin,
		Brand:                r.Brand,
		PickUp:               flagOrDefault(r.PickUp),
		Nv:                   flagOrDefault(r.Nv),
		Confirmed:            flagOrDefault(r.Confirmed),
		Calculation:          flagOrDefault(r.Calculation),
		Invoicing:            flagOrDefault(r.Invoicing),
		Overdue:              flagOrDefault(r.Overdue),
	}
}

func flagOrDefault(v string) entities.Flag {
	if v == "" {
		return entities.FlagNo
	}
	return entities.Flag(v)
}

// OrderUpdateRequest patches an order in place; absent keys stay untouched.
type OrderUpdateRequest struct {
	OrderNumber  *int    `json:"orderNumber"`
	Date         *string `json:"date"`
	LicencePlate *string `json:"licencePlate"`
	VehicleID    *string `json:"vehicleId"`

	Company        *string `json:"company"`
	ContactName    *string `json:"contactName"`
	ContactCompany *string `json:"contactCompany"`
	Phone          *string `json:"phone"`
	Email          *string `json:"email"`

	KmState       *string `json:"kmState"`
	RepairRequest *string `json:"repairRequest"`
	Deadline      *string `json:"deadline"`
	Time          *string `json:"time"`
	Note          *string `json:"note"`

	PickUpAddress        *string `json:"pickUpAddress"`
	PickUpTimeCollection *string `json:"pickUpTimeCollection"`
	PickUpTimeReturn     *string `json:"pickUpTimeReturn"`

	AutoService *string `json:"autoService"`
	Vin         *string `json:"vin"`
	Brand       *string `json:"brand"`

	PickUp      *string `json:"pickUp"`
	Nv          *string `json:"nv"`
	Confirmed   *string `json:"confirmed"`
	Calculation *string `json:"calculation"`
	Invoicing   *string `json:"invoicing"`
	Overdue     *string `json:"overdue"`
}

func (r OrderUpdateRequest) ToPatch() entities.OrderPatch {
	return entities.OrderPatch{
		OrderNumber:          r.OrderNumber,
		Date:                 r.Date,
		LicencePlate:         r.LicencePlate,
		VehicleID:            r.VehicleID,
		Company:              r.Company,
		ContactName:          r.ContactName,
		ContactCompany:       r.ContactCompany,
		Phone:                r.Phone,
		Email:                r.Email,
		KmState:              r.KmState,
		RepairRequest:        r.RepairRequest,
		Deadline:             r.Deadline,
		Time:                 r.Time,
		Note:                 r.Note,
		PickUpAddress:        r.PickUpAddress,
		PickUpTimeCollection: r.PickUpTimeCollection,
		PickUpTimeReturn:     r.PickUpTimeReturn,
		AutoService:          r.AutoService,
		Vin:                  r.Vin,
		Brand:                r.Brand,
		PickUp:               toFlagPtr(r.PickUp),
		Nv:                   toFlagPtr(r.Nv),
		Confirmed:            toFlagPtr(r.Confirmed),
		Calculation:          toFlagPtr(r.Calculation),
		Invoicing:            toFlagPtr(r.Invoicing),
		Overdue:              toFlagPtr(r.Overdue),
	}
}

func toFlagPtr(v *string) *entities.Flag {
	if v == nil {
		return nil
	}
	f := entities.Flag(*v)
	return &f
}

// ImportOrdersRequest carries one legacy spreadsheet batch. Rows are
// inserted as-is, no dedup and no vehicle linkage; the backfill operation
// links them afterwards.
type ImportOrdersRequest struct {
	Orders []OrderImportRecord `json:"orders" binding:"required"`
}

// OrderImportRecord mirrors the legacy sheet's columns. Unlike the order
// form there is no flag defaulting: legacy rows keep whatever the sheet
// held, including empty flags.
type OrderImportRecord struct {
	OrderNumber  int    `json:"orderNumber"`
	Date         string `json:"date"`
	LicencePlate string `json:"licencePlate"`

	Company        string `json:"company"`
	ContactName    string `json:"contactName"`
	ContactCompany string `json:"contactCompany"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`

	KmState       string `json:"kmState"`
	RepairRequest string `json:"repairRequest"`
	Deadline      string `json:"deadline"`
	Time          string `json:"time"`
	Note          string `json:"note"`

	PickUpAddress        string `json:"pickUpAddress"`
	PickUpTimeCollection string `json:"pickUpTimeCollection"`
	PickUpTimeReturn     string `json:"pickUpTimeReturn"`

	AutoService string `json:"autoService"`
	Vin         string `json:"vin"`
	Brand       string `json:"brand"`

	PickUp      string `json:"pickUp"`
	Nv          string `json:"nv"`
	Confirmed   string `json:"confirmed"`
	Calculation string `json:"calculation"`
	Invoicing   string `json:"invoicing"`
	Overdue     string `json:"overdue"`
}

func (r ImportOrdersRequest) Records() []entities.Order {
	records := make([]entities.Order, 0, len(r.Orders))
	for _, rec := range r.Orders {
		records = append(records, entities.Order{
			OrderNumber:          rec.OrderNumber,
			Date:                 rec.Date,
			LicencePlate:         rec.LicencePlate,
			Company:              rec.Company,
			ContactName:          rec.ContactName,
			ContactCompany:       rec.ContactCompany,
			Phone:                rec.Phone,
			Email:                rec.Email,
			KmState:              rec.KmState,
			RepairRequest:        rec.RepairRequest,
			Deadline:             rec.Deadline,
			Time:                 rec.Time,
			Note:                 rec.Note,
			PickUpAddress:        rec.PickUpAddress,
			PickUpTimeCollection: rec.PickUpTimeCollection,
			PickUpTimeReturn:     rec.PickUpTimeReturn,
			AutoService:          rec.AutoService,
			Vin:                  rec.Vin,
			Brand:                rec.Brand,
			PickUp:               entities.Flag(rec.PickUp),
			Nv:                   entities.Flag(rec.Nv),
			Confirmed:            entities.Flag(rec.Confirmed),
			Calculation:          entities.Flag(rec.Calculation),
			Invoicing:            entities.Flag(rec.Invoicing),
			Overdue:              entities.Flag(rec.Overdue),
		})
	}
	return records
}
