package branch

import (
	"github.com/Haseebinvader/SalaryManagement/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	branches := r.Group("/branches")

	branches.Use(middleware.AuthMiddleware())

	{
		branches.GET("", h.GetAll)
		branches.POST("", h.Create)
		branches.PUT("/:id", h.Update)
		branches.DELETE("/:id", h.Delete)
	}
}
