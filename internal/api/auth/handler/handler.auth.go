// Package authhdl - Handler cho domain Auth (login).
package authhdl

import (
	"github.com/gofiber/fiber/v3"

	authdto "medspa_dashboard/internal/api/auth/dto"
	authsvc "medspa_dashboard/internal/api/auth/service"
	basehdl "medspa_dashboard/internal/api/base/handler"
	"medspa_dashboard/internal/common"
	"medspa_dashboard/internal/global"
	"medspa_dashboard/internal/logger"
)

// AuthHandler xử lý các request thuộc domain Auth.
type AuthHandler struct {
	AuthService *authsvc.AuthService
}

// NewAuthHandler tạo mới một instance của AuthHandler
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{
		AuthService: authsvc.NewAuthService(),
	}
}

// HandleLogin xử lý POST /auth/login — xác thực email, mật khẩu và trả về JWT token.
func (h *AuthHandler) HandleLogin(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input authdto.LoginInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				common.MsgInvalidFormat,
				common.StatusBadRequest,
				nil,
			))
		}

		// Validate input
		if err := global.Validate.Struct(&input); err != nil {
			return basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				common.MsgValidationError,
				common.StatusBadRequest,
				err.Error(),
			))
		}

		result, err := h.AuthService.Login(&input)
		if err != nil {
			logger.WithRequest(c).WithField("email", input.Email).Warn("Đăng nhập thất bại")
			return basehdl.HandleResponse(c, nil, err)
		}

		logger.WithRequest(c).WithField("email", input.Email).Info("Đăng nhập thành công")
		return basehdl.HandleResponse(c, result, nil)
	})
}
