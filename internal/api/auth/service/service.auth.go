// Package authsvc - Service xác thực người dùng dashboard.
// MVP: danh sách user cố định với mật khẩu chung từ config, chưa có user store.
package authsvc

import (
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"

	authdto "medspa_dashboard/internal/api/auth/dto"
	authmodels "medspa_dashboard/internal/api/auth/models"
	"medspa_dashboard/internal/common"
	"medspa_dashboard/internal/global"
)

// tokenLifetime là thời gian sống của JWT token
const tokenLifetime = 72 * time.Hour

// mvpUsers là danh sách user cố định của MVP.
// Manager xem toàn bộ dữ liệu, rep chỉ xem dữ liệu của closer tương ứng.
var mvpUsers = []authmodels.AppUser{
	{
		ID:    "1",
		Email: "admin@medspa.com",
		Name:  "Admin",
		Role:  authmodels.RoleManager,
	},
	{
		ID:       "2",
		Email:    "hannah@medspa.com",
		Name:     "Hannah",
		Role:     authmodels.RoleRep,
		CloserID: "Hannah",
	},
	{
		ID:       "3",
		Email:    "michael@medspa.com",
		Name:     "Michael",
		Role:     authmodels.RoleRep,
		CloserID: "Michael",
	},
}

// AuthService xử lý đăng nhập và phát hành token.
type AuthService struct{}

// NewAuthService tạo mới một instance của AuthService
func NewAuthService() *AuthService {
	return &AuthService{}
}

// FindUserByEmail tìm user theo email (không phân biệt hoa thường).
// Trả về nil nếu không tìm thấy.
func (s *AuthService) FindUserByEmail(email string) *authmodels.AppUser {
	normalized := strings.ToLower(strings.TrimSpace(email))
	for i := range mvpUsers {
		if strings.ToLower(mvpUsers[i].Email) == normalized {
			return &mvpUsers[i]
		}
	}
	return nil
}

// Login xác thực email và mật khẩu, trả về token và thông tin user.
func (s *AuthService) Login(input *authdto.LoginInput) (*authdto.LoginResponse, error) {
	user := s.FindUserByEmail(input.Email)
	if user == nil {
		return nil, common.ErrInvalidCredentials
	}

	// MVP: mật khẩu chung cho tất cả user, lấy từ config
	if input.Password != global.ServerConfig.AuthPassword {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.CreateToken(user)
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeInternalServer,
			"Không tạo được token: "+err.Error(),
			common.StatusInternalServerError,
			nil,
		)
	}

	return &authdto.LoginResponse{
		Token: token,
		User:  *user,
	}, nil
}

// CreateToken tạo JWT token HS256 cho user với claims role và closerId.
func (s *AuthService) CreateToken(user *authmodels.AppUser) (string, error) {
	now := time.Now()
	claims := authmodels.UserClaims{
		UserID:   user.ID,
		Email:    user.Email,
		Name:     user.Name,
		Role:     user.Role,
		CloserID: user.CloserID,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(tokenLifetime).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(global.ServerConfig.JwtSecret))
}
