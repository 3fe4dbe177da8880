package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"autoservis_spz/internal/adapter/http/handlers/mocks"
	"autoservis_spz/internal/domain/entities"
	"autoservis_spz/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOrderHandler_ListOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("builds the filter from query params", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders", h.ListOrders)

		uc.EXPECT().ListOrders(gomock.Any(), usecase.OrderListFilter{
			Search:    "novák",
			Overdue:   true,
			VehicleID: "v1",
		}).Return([]entities.Order{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders?search=nov%C3%A1k&overdue=true&vehicleId=v1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("bad overdue value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders", h.ListOrders)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders?overdue=maybe", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders", h.ListOrders)

		uc.EXPECT().ListOrders(gomock.Any(), gomock.Any()).Return(nil, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestOrderHandler_GetOrderStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/stats", h.GetOrderStats)

		uc.EXPECT().GetOrderStats(gomock.Any()).Return(usecase.OrderStats{Total: 10, Overdue: 2, Confirmed: 5, PickUpOrders: 1}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/stats", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body usecase.OrderStats
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.Total != 10 || body.Overdue != 2 || body.Confirmed != 5 || body.PickUpOrders != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetOrder)

		uc.EXPECT().GetOrder(gomock.Any(), "o-missing").Return(entities.Order{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/o-missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestOrderHandler_ListOrdersByVehicle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success with flags on the wire", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/vehicles/:id/orders", h.ListOrdersByVehicle)

		uc.EXPECT().ListOrdersByVehicle(gomock.Any(), "v1").Return([]entities.Order{
			{ID: "o1", OrderNumber: 1001, Date: "01.01.2024", LicencePlate: "1AB2345", VehicleID: "v1", Overdue: "Ano"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/vehicles/v1/orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(body) != 1 || body[0]["overdue"] != "Ano" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"company":"Alfa"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("flags default to Ne", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		uc.EXPECT().AddOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, o entities.Order) (entities.Order, error) {
				if o.Overdue != entities.FlagNo || o.Confirmed != entities.FlagNo {
					t.Fatalf("expected defaulted flags, got %+v", o)
				}
				o.ID = "o1"
				return o, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"orderNumber":1001,"date":"01.01.2024","licencePlate":"1AB2345"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestOrderHandler_UpdateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:id", h.UpdateOrder)

		uc.EXPECT().UpdateOrder(gomock.Any(), "o1", gomock.Any()).DoAndReturn(
			func(_ any, id string, p entities.OrderPatch) (entities.Order, error) {
				if p.Confirmed == nil || *p.Confirmed != "Ano" {
					t.Fatalf("expected confirmed patch, got %+v", p)
				}
				if p.Date != nil {
					t.Fatal("absent keys must stay nil")
				}
				return entities.Order{ID: "o1", Confirmed: "Ano"}, nil
			})

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o1", bytes.NewBufferString(`{"confirmed":"Ano"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_DeleteOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.DELETE("/v1/orders/:id", h.DeleteOrder)

		uc.EXPECT().DeleteOrder(gomock.Any(), "o1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/orders/o1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
