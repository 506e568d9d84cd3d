package routes

import (
	"log"
	"os"
	"strconv"
	"time"

	_ "autonova/docs" // This will be auto-generated
	"autonova/internal/adapter/http/handlers"
	repository2 "autonova/internal/adapter/persistence/repository"
	"autonova/internal/infrastructure/auth"
	"autonova/internal/infrastructure/database"
	"autonova/internal/infrastructure/payments"
	"autonova/internal/logger"
	"autonova/internal/usecase"
	"autonova/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	logger.Init(os.Getenv("APP_ENV"))
	defer logger.Sync()

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

	estimateRepo := repository2.NewEstimateDynamoRepository(ddb)
	paymentRepo := repository2.NewEstimatePaymentDynamoRepository(ddb)
	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	vehicleRepo := repository2.NewVehicleDynamoRepository(ddb)
	insurerRepo := repository2.NewInsuranceCompanyDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)

	jwtSecret := os.Getenv("JWT_SECRET")
	tokenTTL, _ := time.ParseDuration(os.Getenv("JWT_TTL"))
	tokenIssuer, err := auth.NewJWTIssuer(jwtSecret, tokenTTL)
	if err != nil {
		log.Fatalf("JWT issuer not configured: %v", err)
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, customerRepo, vehicleRepo, insurerRepo)
	paymentUseCase := usecase.NewEstimatePaymentUseCase(paymentRepo, estimateRepo, paymentGateway)
	authUseCase := usecase.NewAuthUseCase(userRepo, tokenIssuer)
	customerUseCase := usecase.NewCustomerUseCase(customerRepo)
	vehicleUseCase := usecase.NewVehicleUseCase(vehicleRepo, customerRepo)
	insurerUseCase := usecase.NewInsuranceCompanyUseCase(insurerRepo)

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	paymentHandler := handlers.NewEstimatePaymentHandler(paymentUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)
	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	vehicleHandler := handlers.NewVehicleHandler(vehicleUseCase)
	insurerHandler := handlers.NewInsuranceCompanyHandler(insurerUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler)
	addEstimateRoutes(v1, jwtSecret, estimateHandler, paymentHandler)
	addRegistryRoutes(v1, jwtSecret, customerHandler, vehicleHandler, insurerHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
