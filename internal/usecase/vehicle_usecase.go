package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"autoservis_spz/internal/domain/entities"
	"autoservis_spz/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrVehicleNotFound  = errors.New("vehicle not found")
	ErrInvalidVehicleID = errors.New("invalid vehicle id")
	ErrPlateRequired    = errors.New("licence plate is required")
)

// BulkImportResult aggregates the outcome of a vehicle upsert batch.
type BulkImportResult struct {
	Imported int `json:"imported"`
	Updated  int `json:"updated"`
	Errors   int `json:"errors"`
}

// IVehicleUseCase exposes the vehicle register operations.
//
//   - ListVehicles/GetVehicle/GetVehicleByPlate serve the register screens
//   - AddVehicle/UpdateVehicle/DeleteVehicle are the manual CRUD path
//   - BulkImportVehicles is the spreadsheet upsert engine

type IVehicleUseCase interface {
	ListVehicles(ctx context.Context, search string) ([]entities.Vehicle, error)
	GetVehicle(ctx context.Context, id string) (entities.Vehicle, error)
	GetVehicleByPlate(ctx context.Context, licencePlate string) (entities.Vehicle, error)
	AddVehicle(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	UpdateVehicle(ctx context.Context, id string, p entities.VehiclePatch) (entities.Vehicle, error)
	DeleteVehicle(ctx context.Context, id string) error
	BulkImportVehicles(ctx context.Context, records []entities.VehicleImportRecord) (BulkImportResult, error)
}

type VehicleUseCase struct {
	repo interfaces.IVehicleRepository
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(repo interfaces.IVehicleRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo}
}

// ListVehicles returns the register, optionally narrowed by a
// case-insensitive substring match over plate, make, model line and VIN.
// The result set is small and un-paginated; filtering happens in memory.
func (u *VehicleUseCase) ListVehicles(ctx context.Context, search string) ([]entities.Vehicle, error) {
	vehicles, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return vehicles, nil
	}

	filtered := make([]entities.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if strings.Contains(strings.ToLower(v.LicencePlate), search) ||
			strings.Contains(strings.ToLower(v.Make), search) ||
			strings.Contains(strings.ToLower(v.ModelLine), search) ||
			strings.Contains(strings.ToLower(v.VinCode), search) {
			filtered = append(filtered, v)
		}
	}
	return filtered, nil
}

func (u *VehicleUseCase) GetVehicle(ctx context.Context, id string) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrInvalidVehicleID
	}

	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}

// GetVehicleByPlate resolves a vehicle by plate in two phases: an index
// lookup on the normalized plate first, then a full scan comparing
// normalized plates. The fallback covers stored plates that are not in
// canonical form and must stay even though it is not index-backed.
func (u *VehicleUseCase) GetVehicleByPlate(ctx context.Context, licencePlate string) (entities.Vehicle, error) {
	normalized := entities.NormalizePlate(licencePlate)
	if normalized == "" {
		return entities.Vehicle{}, ErrPlateRequired
	}

	v, err := u.repo.FindByPlate(ctx, normalized)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID != "" {
		return v, nil
	}

	vehicles, err := u.repo.List(ctx)
	if err != nil {
		return entities.Vehicle{}, err
	}
	for _, cand := range vehicles {
		if entities.NormalizePlate(cand.LicencePlate) == normalized {
			return cand, nil
		}
	}
	return entities.Vehicle{}, ErrVehicleNotFound
}

// AddVehicle inserts unconditionally; there is no duplicate-plate check on
// the manual path.
func (u *VehicleUseCase) AddVehicle(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	if strings.TrimSpace(v.LicencePlate) == "" {
		return entities.Vehicle{}, ErrPlateRequired
	}

	v.ID = uuid.NewString()
	return u.repo.Create(ctx, v)
}

func (u *VehicleUseCase) UpdateVehicle(ctx context.Context, id string, p entities.VehiclePatch) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrInvalidVehicleID
	}
	if p.LicencePlate != nil && strings.TrimSpace(*p.LicencePlate) == "" {
		return entities.Vehicle{}, ErrPlateRequired
	}

	updated, err := u.repo.Patch(ctx, id, p)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if updated.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return updated, nil
}

// DeleteVehicle removes the record and nothing else: orders referencing the
// vehicle keep their vehicleId and readers tolerate the dangling reference.
func (u *VehicleUseCase) DeleteVehicle(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidVehicleID
	}
	return u.repo.Delete(ctx, id)
}

// BulkImportVehicles upserts a batch keyed by the stored plate. The lookup
// is an exact index match on the plate value as imported, not a normalized
// one, so a record can miss an existing vehicle whose stored plate differs
// only in spacing or case; operators reconcile such rows via backfill.
// One record's failure never blocks the rest of the batch.
func (u *VehicleUseCase) BulkImportVehicles(ctx context.Context, records []entities.VehicleImportRecord) (BulkImportResult, error) {
	var res BulkImportResult
	for _, rec := range records {
		existing, err := u.repo.FindByPlate(ctx, rec.LicencePlate)
		if err != nil {
			log.Printf("[import] vehicle %q lookup failed: %v", rec.LicencePlate, err)
			res.Errors++
			continue
		}

		if existing.ID != "" {
			if _, err := u.repo.Patch(ctx, existing.ID, rec.Patch()); err != nil {
				log.Printf("[import] vehicle %q update failed: %v", rec.LicencePlate, err)
				res.Errors++
				continue
			}
			res.Updated++
			continue
		}

		if _, err := u.repo.Create(ctx, rec.Vehicle(uuid.NewString())); err != nil {
			log.Printf("[import] vehicle %q insert failed: %v", rec.LicencePlate, err)
			res.Errors++
			continue
		}
		res.Imported++
	}
	return res, nil
}
