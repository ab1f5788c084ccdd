package routes

import (
	"log"
	"strconv"

	_ "payledger/docs" // This will be auto-generated
	"payledger/internal/adapter/http/handlers"
	repository2 "payledger/internal/adapter/persistence/repository"
	"payledger/internal/infrastructure/database"
	"payledger/internal/infrastructure/payments"
	"payledger/internal/usecase"

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

	sessionRepo := repository2.NewPaymentSessionDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	eventRepo := repository2.NewPaymentEventDynamoRepository(ddb)

	gateway := payments.NewSandboxGateway()

	sessionUseCase := usecase.NewPaymentSessionUseCase(sessionRepo, gateway)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, eventRepo, gateway)

	sessionHandler := handlers.NewPaymentSessionHandler(sessionUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, sessionHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
