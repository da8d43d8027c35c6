// Package dashhdl - Handler cho domain Dashboard: trả về aggregate, danh sách
// client và file CSV export.
package dashhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authmodels "medspa_dashboard/internal/api/auth/models"
	basehdl "medspa_dashboard/internal/api/base/handler"
	dashdto "medspa_dashboard/internal/api/dashboard/dto"
	dashsvc "medspa_dashboard/internal/api/dashboard/service"
	"medspa_dashboard/internal/api/middleware"
	sheetsvc "medspa_dashboard/internal/api/sheets/service"
	"medspa_dashboard/internal/common"
	"medspa_dashboard/internal/global"
	"medspa_dashboard/internal/logger"
)

// DashboardHandler xử lý các request thuộc domain Dashboard.
type DashboardHandler struct {
	SheetsService    *sheetsvc.SheetsService
	DashboardService *dashsvc.DashboardService
}

// NewDashboardHandler tạo mới một instance của DashboardHandler
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{
		SheetsService:    sheetsvc.NewSheetsService(),
		DashboardService: dashsvc.NewDashboardService(),
	}
}

// parseQuery bind và validate query params của các route dashboard
func parseQuery(c fiber.Ctx) (*dashdto.DashboardQuery, error) {
	var query dashdto.DashboardQuery
	if err := c.Bind().Query(&query); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			common.MsgInvalidFormat,
			common.StatusBadRequest,
			nil,
		)
	}
	if err := global.Validate.Struct(&query); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			common.MsgValidationError,
			common.StatusBadRequest,
			err.Error(),
		)
	}
	return &query, nil
}

// scopeCloser xác định closer cần thu hẹp dữ liệu theo role của user.
// Rep luôn bị khóa vào closerId trong token, manager được tự chọn qua query.
func scopeCloser(claims *authmodels.UserClaims, requested string) string {
	if claims != nil && claims.Role == authmodels.RoleRep {
		return claims.CloserID
	}
	return requested
}

// buildDashboard chạy pipeline đầy đủ: load snapshot nguồn, merge, aggregate
// theo filter state rồi thu hẹp theo closer nếu cần.
func (h *DashboardHandler) buildDashboard(c fiber.Ctx, query *dashdto.DashboardQuery) dashdto.DashboardData {
	rawData, dataSource := h.SheetsService.GetRawData(c.Context())
	clients := dashsvc.MergeClientData(rawData)

	meta := dashdto.DashboardMeta{
		DataSource:  dataSource,
		LastFetched: rawData.LastUpdated,
	}
	data := h.DashboardService.BuildDashboard(clients, query.ToFilterState(), meta)

	if closerID := scopeCloser(middleware.GetUserClaims(c), query.Closer); closerID != "" {
		data = h.DashboardService.FilterDataForCloser(data, closerID)
	}
	return data
}

// HandleGetDashboard xử lý GET /dashboard — trả về toàn bộ aggregate của dashboard.
func (h *DashboardHandler) HandleGetDashboard(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		query, err := parseQuery(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		data := h.buildDashboard(c, query)
		logger.WithRequest(c).WithFields(map[string]interface{}{
			"dataSource": data.Meta.DataSource,
			"clients":    len(data.Clients),
			"range":      query.Range,
		}).Info("Trả về dashboard data")
		return basehdl.HandleResponse(c, data, nil)
	})
}

// HandleGetClients xử lý GET /dashboard/clients — chỉ trả về danh sách client.
func (h *DashboardHandler) HandleGetClients(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		query, err := parseQuery(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		data := h.buildDashboard(c, query)
		return basehdl.HandleResponse(c, map[string]interface{}{
			"clients": data.Clients,
			"_meta":   data.Meta,
		}, nil)
	})
}

// HandleExportClients xử lý GET /dashboard/export — trả về file CSV danh sách client.
func (h *DashboardHandler) HandleExportClients(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		query, err := parseQuery(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		data := h.buildDashboard(c, query)
		content, err := dashsvc.ClientsToCSV(data.Clients)
		if err != nil {
			return basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				"Không render được file CSV: "+err.Error(),
				common.StatusInternalServerError,
				nil,
			))
		}

		filename := fmt.Sprintf("clients-export-%s.csv", h.DashboardService.Now().Format("2006-01-02"))
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
		return c.Send(content)
	})
}
