package routes

import (
	"autoservis_spz/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathVehicles = "/vehicles"
	PathOrders   = "/orders"
)

func addFleetRoutes(rg *gin.RouterGroup, vehicleHandler *handlers.VehicleHandler, orderHandler *handlers.OrderHandler) {
	vehicles := rg.Group(PathVehicles)
	{
		vehicles.GET("", vehicleHandler.ListVehicles)
		vehicles.POST("", vehicleHandler.CreateVehicle)
		vehicles.GET("/plate/:licencePlate", vehicleHandler.GetVehicleByPlate)
		vehicles.GET("/:id", vehicleHandler.GetVehicle)
		vehicles.PATCH("/:id", vehicleHandler.UpdateVehicle)
		vehicles.DELETE("/:id", vehicleHandler.DeleteVehicle)
		// order history on the vehicle detail screen
		vehicles.GET("/:id/orders", orderHandler.ListOrdersByVehicle)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("", orderHandler.ListOrders)
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/stats", orderHandler.GetOrderStats)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PATCH("/:id", orderHandler.UpdateOrder)
		orders.DELETE("/:id", orderHandler.DeleteOrder)
	}
}
