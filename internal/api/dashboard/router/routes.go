// Package router đăng ký các route thuộc domain Dashboard.
package router

import (
	"github.com/gofiber/fiber/v3"

	dashhdl "medspa_dashboard/internal/api/dashboard/handler"
	"medspa_dashboard/internal/api/middleware"
	apirouter "medspa_dashboard/internal/api/router"
)

// Register đăng ký các route dashboard lên v1, tất cả đều yêu cầu JWT.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	dashboardHandler := dashhdl.NewDashboardHandler()
	authMiddleware := []fiber.Handler{middleware.AuthMiddleware()}

	apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "GET", "", authMiddleware, dashboardHandler.HandleGetDashboard)
	apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "GET", "/clients", authMiddleware, dashboardHandler.HandleGetClients)
	apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "GET", "/export", authMiddleware, dashboardHandler.HandleExportClients)
	return nil
}
