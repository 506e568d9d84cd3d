package routes

import (
	"autonova/internal/adapter/http/handlers"
	"autonova/internal/adapter/http/middleware"
	"autonova/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
)

var (
	rolesEstimateRead = []string{
		string(entities.RoleAdmin),
		string(entities.RoleManager),
		string(entities.RoleReceptionist),
		string(entities.RoleTechnician),
		string(entities.RoleAccountant),
	}
	rolesEstimateWrite = []string{
		string(entities.RoleAdmin),
		string(entities.RoleManager),
		string(entities.RoleReceptionist),
	}
	rolesEstimateDecide = []string{
		string(entities.RoleAdmin),
		string(entities.RoleManager),
	}
	rolesPaymentWrite = []string{
		string(entities.RoleAdmin),
		string(entities.RoleManager),
		string(entities.RoleAccountant),
	}
)

func addEstimateRoutes(rg *gin.RouterGroup, jwtSecret string, estimateHandler *handlers.EstimateHandler, paymentHandler *handlers.EstimatePaymentHandler) {
	estimates := rg.Group(PathEstimates, middleware.Authenticate(jwtSecret))
	{
		estimates.POST("", middleware.RequireRoles(rolesEstimateWrite...), estimateHandler.CreateEstimate)
		estimates.GET("", middleware.RequireRoles(rolesEstimateRead...), estimateHandler.ListEstimates)
		estimates.GET("/:number", middleware.RequireRoles(rolesEstimateRead...), estimateHandler.GetEstimate)
		estimates.PUT("/:number", middleware.RequireRoles(rolesEstimateWrite...), estimateHandler.UpdateEstimate)
		estimates.DELETE("/:number", middleware.RequireRoles(rolesEstimateDecide...), estimateHandler.DeleteEstimate)

		estimates.PATCH("/:number/approve", middleware.RequireRoles(rolesEstimateDecide...), estimateHandler.ApproveEstimate)
		estimates.PATCH("/:number/reject", middleware.RequireRoles(rolesEstimateDecide...), estimateHandler.RejectEstimate)

		estimates.POST("/:number/parts", middleware.RequireRoles(rolesEstimateWrite...), estimateHandler.AddPart)
		estimates.PUT("/:number/parts/:partId", middleware.RequireRoles(rolesEstimateWrite...), estimateHandler.UpdatePart)
		estimates.DELETE("/:number/parts/:partId", middleware.RequireRoles(rolesEstimateWrite...), estimateHandler.RemovePart)

		estimates.POST("/:number/labour", middleware.RequireRoles(rolesEstimateWrite...), estimateHandler.AddLabour)
		estimates.PUT("/:number/labour/:labourId", middleware.RequireRoles(rolesEstimateWrite...), estimateHandler.UpdateLabour)
		estimates.DELETE("/:number/labour/:labourId", middleware.RequireRoles(rolesEstimateWrite...), estimateHandler.RemoveLabour)

		estimates.POST("/:number/payments", middleware.RequireRoles(rolesPaymentWrite...), paymentHandler.CreateDeposit)
		estimates.GET("/:number/payments", middleware.RequireRoles(rolesEstimateRead...), paymentHandler.ListByEstimate)
	}
}
