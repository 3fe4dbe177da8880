package handlers

import (
	"net/http"

	request "autoservis_spz/internal/adapter/http/dto/request"
	"autoservis_spz/internal/usecase"
	"autoservis_spz/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidImportPayload = pkg.NewDomainErrorSimple("INVALID_IMPORT_INPUT", "Invalid import payload", http.StatusBadRequest)
)

// MaintenanceHandler exposes the admin-triggered maintenance operations:
// spreadsheet imports and the plate backfill. These routes sit behind the
// JWT guard; everything else about them is plain request/response.

type MaintenanceHandler struct {
	vehicles  usecase.IVehicleUseCase
	orders    usecase.IOrderUseCase
	reconcile usecase.IReconcileUseCase
}

func NewMaintenanceHandler(vehicles usecase.IVehicleUseCase, orders usecase.IOrderUseCase, reconcile usecase.IReconcileUseCase) *MaintenanceHandler {
	return &MaintenanceHandler{vehicles: vehicles, orders: orders, reconcile: reconcile}
}

// BulkImportVehicles upserts a vehicle batch keyed by plate and reports
// per-batch counters. A failed record is counted, not fatal, so the
// response is 200 even when errors > 0.
func (h *MaintenanceHandler) BulkImportVehicles(c *gin.Context) {
	var payload request.BulkImportVehiclesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidImportPayload.HTTPStatus, errInvalidImportPayload.ToHTTPError())
		return
	}

	res, err := h.vehicles.BulkImportVehicles(c.Request.Context(), payload.Records())
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, res)
}

// ImportOrders inserts a legacy order batch as-is. Callers chunk large
// files (around 50-100 rows per call) and run the backfill afterwards.
func (h *MaintenanceHandler) ImportOrders(c *gin.Context) {
	var payload request.ImportOrdersRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidImportPayload.HTTPStatus, errInvalidImportPayload.ToHTTPError())
		return
	}

	res, err := h.orders.ImportOrders(c.Request.Context(), payload.Records())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *MaintenanceHandler) BackfillVehicleLinks(c *gin.Context) {
	res, err := h.reconcile.BackfillVehicleIDByPlate(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, res)
}
