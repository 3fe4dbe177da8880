package usecase

import (
	"context"
	"errors"
	"testing"

	"autoservis_spz/internal/domain/entities"
	mock_interfaces "autoservis_spz/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestReconcileUseCase_BackfillVehicleIDByPlate(t *testing.T) {
	t.Run("vehicle list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		vehicles := mock_interfaces.NewMockIVehicleRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewReconcileUseCase(vehicles, orders)

		vehicles.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.BackfillVehicleIDByPlate(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("links by normalized plate and skips linked orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		vehicles := mock_interfaces.NewMockIVehicleRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewReconcileUseCase(vehicles, orders)

		vehicles.EXPECT().List(gomock.Any()).Return([]entities.Vehicle{
			{ID: "v1", LicencePlate: "1ab 2345"}, // stored non-canonical
			{ID: "v2", LicencePlate: "5CD6789"},
		}, nil)
		orders.EXPECT().List(gomock.Any()).Return([]entities.Order{
			{ID: "o1", LicencePlate: "1AB2345"},                  // matches v1 via normalization
			{ID: "o2", LicencePlate: "5CD6789", VehicleID: "v2"}, // already linked
			{ID: "o3", LicencePlate: "9EF0001"},                  // no vehicle
		}, nil)

		orders.EXPECT().Patch(gomock.Any(), "o1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, p entities.OrderPatch) (entities.Order, error) {
				if p.VehicleID == nil || *p.VehicleID != "v1" {
					t.Fatalf("expected link to v1, got %+v", p.VehicleID)
				}
				return entities.Order{ID: id, VehicleID: *p.VehicleID}, nil
			})

		res, err := uc.BackfillVehicleIDByPlate(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := BackfillResult{Updated: 1, Skipped: 2, Total: 3}
		if res != want {
			t.Fatalf("got %+v, want %+v", res, want)
		}
	})

	t.Run("duplicate plates last vehicle wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		vehicles := mock_interfaces.NewMockIVehicleRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewReconcileUseCase(vehicles, orders)

		vehicles.EXPECT().List(gomock.Any()).Return([]entities.Vehicle{
			{ID: "v-old", LicencePlate: "1AB2345"},
			{ID: "v-new", LicencePlate: "1ab 2345"},
		}, nil)
		orders.EXPECT().List(gomock.Any()).Return([]entities.Order{
			{ID: "o1", LicencePlate: "1AB2345"},
		}, nil)

		orders.EXPECT().Patch(gomock.Any(), "o1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, p entities.OrderPatch) (entities.Order, error) {
				if *p.VehicleID != "v-new" {
					t.Fatalf("expected the later vehicle to win, got %q", *p.VehicleID)
				}
				return entities.Order{ID: id}, nil
			})

		if _, err := uc.BackfillVehicleIDByPlate(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty plates never match", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		vehicles := mock_interfaces.NewMockIVehicleRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewReconcileUseCase(vehicles, orders)

		vehicles.EXPECT().List(gomock.Any()).Return([]entities.Vehicle{
			{ID: "v-blank", LicencePlate: "   "},
		}, nil)
		orders.EXPECT().List(gomock.Any()).Return([]entities.Order{
			{ID: "o1", LicencePlate: ""},
		}, nil)

		res, err := uc.BackfillVehicleIDByPlate(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := BackfillResult{Updated: 0, Skipped: 1, Total: 1}
		if res != want {
			t.Fatalf("got %+v, want %+v", res, want)
		}
	})

	t.Run("second run is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		vehicles := mock_interfaces.NewMockIVehicleRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewReconcileUseCase(vehicles, orders)

		vehicles.EXPECT().List(gomock.Any()).Return([]entities.Vehicle{
			{ID: "v1", LicencePlate: "1AB2345"},
		}, nil)
		orders.EXPECT().List(gomock.Any()).Return([]entities.Order{
			{ID: "o1", LicencePlate: "1AB2345", VehicleID: "v1"},
		}, nil)

		res, err := uc.BackfillVehicleIDByPlate(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Updated != 0 || res.Skipped != 1 {
			t.Fatalf("expected a no-op pass, got %+v", res)
		}
	})

	t.Run("patch error aborts keeping partial counts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		vehicles := mock_interfaces.NewMockIVehicleRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewReconcileUseCase(vehicles, orders)

		vehicles.EXPECT().List(gomock.Any()).Return([]entities.Vehicle{
			{ID: "v1", LicencePlate: "1AB2345"},
		}, nil)
		orders.EXPECT().List(gomock.Any()).Return([]entities.Order{
			{ID: "o1", LicencePlate: "1AB2345"},
			{ID: "o2", LicencePlate: "1AB2345"},
		}, nil)

		gomock.InOrder(
			orders.EXPECT().Patch(gomock.Any(), "o1", gomock.Any()).Return(entities.Order{ID: "o1"}, nil),
			orders.EXPECT().Patch(gomock.Any(), "o2", gomock.Any()).Return(entities.Order{}, errors.New("throttled")),
		)

		res, err := uc.BackfillVehicleIDByPlate(context.Background())
		if err == nil || err.Error() != "throttled" {
			t.Fatalf("expected throttled error, got %v", err)
		}
		if res.Updated != 1 {
			t.Fatalf("expected 1 updated before the failure, got %+v", res)
		}
	})
}
