package routes

import (
	"log"
	"strconv"

	_ "autoservis_spz/docs" // swag-generated OpenAPI metadata
	"autoservis_spz/internal/adapter/http/handlers"
	repository2 "autoservis_spz/internal/adapter/persistence/repository"
	"autoservis_spz/internal/infrastructure/database"
	"autoservis_spz/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	vehicleRepo := repository2.NewVehicleDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)

	vehicleUseCase := usecase.NewVehicleUseCase(vehicleRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo)
	reconcileUseCase := usecase.NewReconcileUseCase(vehicleRepo, orderRepo)

	vehicleHandler := handlers.NewVehicleHandler(vehicleUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	maintenanceHandler := handlers.NewMaintenanceHandler(vehicleUseCase, orderUseCase, reconcileUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addFleetRoutes(v1, vehicleHandler, orderHandler)
	addMaintenanceRoutes(v1, maintenanceHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
