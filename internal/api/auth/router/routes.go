// Package router đăng ký các route thuộc domain Auth: login.
package router

import (
	"github.com/gofiber/fiber/v3"

	authhdl "medspa_dashboard/internal/api/auth/handler"
	apirouter "medspa_dashboard/internal/api/router"
)

// Register đăng ký tất cả route auth lên v1: login (không cần middleware xác thực).
func Register(v1 fiber.Router, r *apirouter.Router) error {
	authHandler := authhdl.NewAuthHandler()
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/login", nil, authHandler.HandleLogin)
	return nil
}
