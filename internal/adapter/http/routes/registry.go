package routes

import (
	"autonova/internal/adapter/http/handlers"
	"autonova/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth               = "/auth"
	PathCustomers          = "/customers"
	PathVehicles           = "/vehicles"
	PathInsuranceCompanies = "/insurance-companies"
)

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}
}

func addRegistryRoutes(
	rg *gin.RouterGroup,
	jwtSecret string,
	customerHandler *handlers.CustomerHandler,
	vehicleHandler *handlers.VehicleHandler,
	insurerHandler *handlers.InsuranceCompanyHandler,
) {
	customers := rg.Group(PathCustomers, middleware.Authenticate(jwtSecret))
	{
		customers.POST("", middleware.RequireRoles(rolesEstimateWrite...), customerHandler.CreateCustomer)
		customers.GET("", middleware.RequireRoles(rolesEstimateRead...), customerHandler.ListCustomers)
		customers.GET("/:id", middleware.RequireRoles(rolesEstimateRead...), customerHandler.GetCustomer)
	}

	vehicles := rg.Group(PathVehicles, middleware.Authenticate(jwtSecret))
	{
		vehicles.POST("", middleware.RequireRoles(rolesEstimateWrite...), vehicleHandler.CreateVehicle)
		vehicles.GET("", middleware.RequireRoles(rolesEstimateRead...), vehicleHandler.ListVehicles)
		vehicles.GET("/:id", middleware.RequireRoles(rolesEstimateRead...), vehicleHandler.GetVehicle)
	}

	insurers := rg.Group(PathInsuranceCompanies, middleware.Authenticate(jwtSecret))
	{
		insurers.POST("", middleware.RequireRoles(rolesEstimateWrite...), insurerHandler.CreateInsuranceCompany)
		insurers.GET("", middleware.RequireRoles(rolesEstimateRead...), insurerHandler.ListInsuranceCompanies)
		insurers.GET("/:id", middleware.RequireRoles(rolesEstimateRead...), insurerHandler.GetInsuranceCompany)
	}
}
