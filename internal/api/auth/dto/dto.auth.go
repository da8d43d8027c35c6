// Package authdto chứa DTO cho domain Auth (login).
package authdto

import (
	authmodels "medspa_dashboard/internal/api/auth/models"
)

// LoginInput body cho POST /auth/login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`  // Email đăng nhập
	Password string `json:"password" validate:"required"`     // Mật khẩu (MVP: mật khẩu chung từ config)
}

// LoginResponse kết quả đăng nhập: JWT token và thông tin user.
type LoginResponse struct {
	Token string             `json:"token"` // JWT token (Bearer)
	User  authmodels.AppUser `json:"user"`  // Thông tin user đã đăng nhập
}
