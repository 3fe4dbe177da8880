package routes

import (
	"log"

	"autoservis_spz/internal/adapter/http/handlers"
	"autoservis_spz/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const PathAdmin = "/admin"

// addMaintenanceRoutes wires the admin-triggered operations: spreadsheet
// imports and the order-to-vehicle backfill. When an identity provider is
// configured the whole group is JWT-guarded and unauthorized requests are
// rejected before any data access.
func addMaintenanceRoutes(rg *gin.RouterGroup, maintenanceHandler *handlers.MaintenanceHandler) {
	admin := rg.Group(PathAdmin)

	if middleware.Configured() {
		admin.Use(middleware.EnsureValidToken())
	} else {
		log.Printf("Identity provider not configured: admin maintenance routes are unguarded")
	}

	admin.POST("/import/vehicles", maintenanceHandler.BulkImportVehicles)
	admin.POST("/import/orders", maintenanceHandler.ImportOrders)
	admin.POST("/backfill/vehicle-links", maintenanceHandler.BackfillVehicleLinks)
}
