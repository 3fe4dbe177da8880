package spreadsheet

import (
	"strconv"
	"strings"

	"autoservis_spz/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

// The legacy workbook (zakazky.xlsm) has two sheets with fixed column
// positions: "SPZ" holds the vehicle register with headers on the first
// row, "Objednávky" holds the orders with headers on the second row and
// data from the third.
const (
	VehiclesSheet = "SPZ"
	OrdersSheet   = "Objednávky"
)

// Workbook reads the legacy spreadsheet into import records.
type Workbook struct {
	f *excelize.File
}

func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &Workbook{f: f}, nil
}

func (w *Workbook) Close() error {
	return w.f.Close()
}

// Vehicles reads the SPZ sheet. Rows without a plate in the first column
// are skipped.
func (w *Workbook) Vehicles() ([]entities.VehicleImportRecord, error) {
	rows, err := w.f.GetRows(VehiclesSheet)
	if err != nil {
		return nil, err
	}

	var records []entities.VehicleImportRecord
	for i, row := range rows {
		if i == 0 {
			continue // header row
		}
		if cell(row, 0) == "" {
			continue
		}
		records = append(records, entities.VehicleImportRecord{
			LicencePlate:         cell(row, 0),
			Make:                 cell(row, 1),
			ModelLine:            cell(row, 2),
			Trim:                 cell(row, 5),
			Powertrain:           cell(row, 6),
			VinCode:              cell(row, 10),
			Lessor:               cell(row, 11),
			OwnershipType:        cell(row, 12),
			PermanentAddressCity: cell(row, 13),
		})
	}
	return records, nil
}

// Orders reads the Objednávky sheet. Rows without an order number are
// skipped; an unparseable order number becomes 0, same as the old import
// script.
func (w *Workbook) Orders() ([]entities.Order, error) {
	rows, err := w.f.GetRows(OrdersSheet)
	if err != nil {
		return nil, err
	}

	var records []entities.Order
	for i, row := range rows {
		if i < 2 {
			continue // title + header rows
		}
		if cell(row, 1) == "" {
			continue
		}
		number, _ := strconv.Atoi(cell(row, 1))
		records = append(records, entities.Order{
			Date:                 cell(row, 0),
			OrderNumber:          number,
			LicencePlate:         cell(row, 2),
			Company:              cell(row, 3),
			KmState:              cell(row, 4),
			ContactName:          cell(row, 5),
			ContactCompany:       cell(row, 6),
			Phone:                cell(row, 7),
			RepairRequest:        cell(row, 8),
			Deadline:             cell(row, 9),
			Time:                 cell(row, 10),
			Note:                 cell(row, 11),
			PickUp:               entities.Flag(cell(row, 12)),
			PickUpAddress:        cell(row, 13),
			PickUpTimeCollection: cell(row, 14),
			PickUpTimeReturn:     cell(row, 15),
			Nv:                   entities.Flag(cell(row, 16)),
			Email:                cell(row, 17),
			AutoService:          cell(row, 18),
			Vin:                  cell(row, 19),
			Brand:                cell(row, 20),
			Confirmed:            entities.Flag(cell(row, 21)),
			Calculation:          entities.Flag(cell(row, 22)),
			Invoicing:            entities.Flag(cell(row, 23)),
			Overdue:              entities.Flag(cell(row, 24)),
		})
	}
	return records, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
