// Package dashsvc - Service dashboard: điều phối pipeline merge -> filter ->
// aggregate -> comparison và thu hẹp dữ liệu theo closer cho role rep.
package dashsvc

import (
	"time"

	dashdto "medspa_dashboard/internal/api/dashboard/dto"
	dashmodels "medspa_dashboard/internal/api/dashboard/models"
	"medspa_dashboard/internal/global"
	"medspa_dashboard/internal/logger"
)

// DashboardService điều phối việc dựng DashboardData từ snapshot dữ liệu nguồn.
// nowFn được inject để test có thể cố định thời điểm hiện tại.
type DashboardService struct {
	location *time.Location
	nowFn    func() time.Time
}

// NewDashboardService tạo service với timezone từ config.
// Timezone không load được thì dùng UTC và ghi log cảnh báo.
func NewDashboardService() *DashboardService {
	location := time.UTC
	if global.ServerConfig != nil && global.ServerConfig.Timezone != "" {
		loaded, err := time.LoadLocation(global.ServerConfig.Timezone)
		if err != nil {
			logger.GetAppLogger().WithError(err).Warnf("Không load được timezone %s, dùng UTC", global.ServerConfig.Timezone)
		} else {
			location = loaded
		}
	}
	return &DashboardService{
		location: location,
		nowFn:    time.Now,
	}
}

// NewDashboardServiceWithClock tạo service với location và clock cố định, dùng cho test.
func NewDashboardServiceWithClock(location *time.Location, nowFn func() time.Time) *DashboardService {
	return &DashboardService{location: location, nowFn: nowFn}
}

// Now trả về thời điểm hiện tại theo timezone của service
func (s *DashboardService) Now() time.Time {
	return s.nowFn().In(s.location)
}

// BuildDashboard dựng DashboardData đầy đủ từ danh sách client đã merge:
// lọc theo filter state, aggregate, rồi gắn comparison với kỳ trước nếu có.
// Mọi chỉ số đều tính lại từ cùng một tập client đã lọc nên luôn nhất quán nội bộ.
func (s *DashboardService) BuildDashboard(clients []dashmodels.Client, state dashdto.DateFilterState, meta dashdto.DashboardMeta) dashdto.DashboardData {
	now := s.Now()

	bounds := BoundsFromState(state, now)
	data := FilterAndReaggregate(clients, bounds, now)

	// Comparison tính từ danh sách client gốc (chưa lọc theo kỳ hiện tại)
	// để kỳ trước không bị bounds hiện tại cắt mất dữ liệu
	period := ComparisonPeriodFromState(state, now)
	data.Comparisons = BuildKPIComparisons(clients, data, period, now)

	data.LastUpdated = now.Format(time.RFC3339)
	data.Meta = meta
	return data
}

// FilterDataForCloser thu hẹp DashboardData về một closer duy nhất: lọc
// clients, closerStats và actionItems theo closer rồi tính lại funnel,
// revenueData và kpis từ tập client đã lọc. MonthlyRevenue và KPITrends
// giữ nguyên toàn cục để rep vẫn thấy bức tranh doanh thu chung.
func (s *DashboardService) FilterDataForCloser(data dashdto.DashboardData, closerID string) dashdto.DashboardData {
	if closerID == "" {
		return data
	}

	filteredClients := make([]dashmodels.Client, 0, len(data.Clients))
	for i := range data.Clients {
		if data.Clients[i].Closer == closerID {
			filteredClients = append(filteredClients, data.Clients[i])
		}
	}

	filteredStats := make([]dashdto.CloserStats, 0, 1)
	for i := range data.CloserStats {
		if data.CloserStats[i].Name == closerID {
			filteredStats = append(filteredStats, data.CloserStats[i])
		}
	}

	scoped := data
	scoped.Clients = filteredClients
	scoped.CloserStats = filteredStats
	scoped.ActionItems = dashdto.ActionItems{
		NoShowsToRescue:  filterByCloser(data.ActionItems.NoShowsToRescue, closerID),
		WarmLeadsToClose: filterByCloser(data.ActionItems.WarmLeadsToClose, closerID),
		UnpaidBalances:   filterByCloser(data.ActionItems.UnpaidBalances, closerID),
		StaleLeads:       filterByCloser(data.ActionItems.StaleLeads, closerID),
	}
	scoped.FunnelStages = CalculateFunnelStages(filteredClients)
	scoped.RevenueData = calculateRevenueData(filteredClients)
	scoped.KPIs = calculateKPIs(filteredClients)
	return scoped
}

// filterByCloser giữ lại các client thuộc closer chỉ định
func filterByCloser(clients []dashmodels.Client, closerID string) []dashmodels.Client {
	filtered := make([]dashmodels.Client, 0, len(clients))
	for i := range clients {
		if clients[i].Closer == closerID {
			filtered = append(filtered, clients[i])
		}
	}
	return filtered
}
