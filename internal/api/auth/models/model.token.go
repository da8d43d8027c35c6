// Package models - UserClaims, AppUser thuộc domain auth.
package models

import "github.com/dgrijalva/jwt-go"

// Các role của người dùng trong hệ thống
const (
	RoleManager = "manager" // Xem được toàn bộ dữ liệu
	RoleRep     = "rep"     // Chỉ xem được dữ liệu của closer tương ứng
)

// UserClaims chứa data được mã hóa trong JWT token.
type UserClaims struct {
	UserID   string `json:"userId"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	CloserID string `json:"closerId,omitempty"` // Rỗng với manager, tên closer với rep
	jwt.StandardClaims
}

// AppUser là người dùng của dashboard. MVP: danh sách user cố định, chưa có user store.
type AppUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	CloserID string `json:"closerId,omitempty"`
}
