package employee

import (
	"github.com/Haseebinvader/SalaryManagement/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	employees := r.Group("/employees")

	employees.Use(middleware.AuthMiddleware())

	{
		employees.GET("", h.GetAll)
		employees.POST("", h.Create)
		employees.PUT("/:id", h.Update)
		employees.DELETE("/:id", h.Delete)
		employees.GET("/:id/payslip", h.Payslip)
	}
}
