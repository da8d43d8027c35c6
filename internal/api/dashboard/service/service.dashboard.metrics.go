// Package dashsvc - Metrics aggregator: tính funnel, leaderboard, doanh thu,
// action items và KPI từ danh sách Client đã merge.
package dashsvc

import (
	"sort"
	"time"

	dashdto "medspa_dashboard/internal/api/dashboard/dto"
	dashmodels "medspa_dashboard/internal/api/dashboard/models"
)

// safeRatio chia an toàn: mẫu số 0 trả về 0, không bao giờ NaN/Infinity
func safeRatio(numerator float64, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// stageCounts đếm số client đạt tối thiểu từng bậc của funnel.
// Mọi client sau merge đều tối thiểu là booked nên booked = tổng số client.
func stageCounts(clients []dashmodels.Client) (booked int, attended int, closed int, paid int) {
	booked = len(clients)
	for i := range clients {
		if clients[i].StageAtLeast(dashmodels.StageAttended) {
			attended++
		}
		if clients[i].StageAtLeast(dashmodels.StageClosed) {
			closed++
		}
		if clients[i].JourneyStage == dashmodels.StagePaid {
			paid++
		}
	}
	return
}

// CalculateCloserStats gom thống kê theo closer, bỏ qua client không có closer.
// Revenue tính tổng actualPrice trên TẤT CẢ client trong nhóm (client chưa chốt
// có actualPrice = 0 nên tương đương tổng trên client đã chốt).
// Leaderboard sort giảm dần theo revenue.
func CalculateCloserStats(clients []dashmodels.Client) []dashdto.CloserStats {
	groups := make(map[string][]*dashmodels.Client)
	var nameOrder []string

	for i := range clients {
		client := &clients[i]
		if client.Closer == "" {
			continue
		}
		if _, ok := groups[client.Closer]; !ok {
			nameOrder = append(nameOrder, client.Closer)
		}
		groups[client.Closer] = append(groups[client.Closer], client)
	}

	stats := make([]dashdto.CloserStats, 0, len(nameOrder))
	for _, name := range nameOrder {
		group := groups[name]
		totalCalls := len(group)
		attended := 0
		closed := 0
		revenue := 0.0
		cashCollected := 0.0
		for _, client := range group {
			if client.CallStatus == "Attended" {
				attended++
			}
			if client.IsConverted {
				closed++
			}
			revenue += client.ActualPrice
			cashCollected += client.CashCollected
		}

		stats = append(stats, dashdto.CloserStats{
			Name:           name,
			TotalCalls:     totalCalls,
			Attended:       attended,
			Closed:         closed,
			Revenue:        revenue,
			CashCollected:  cashCollected,
			CloseRate:      safeRatio(float64(closed), float64(attended)),
			AttendanceRate: safeRatio(float64(attended), float64(totalCalls)),
			AvgDealSize:    safeRatio(revenue, float64(closed)),
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Revenue > stats[j].Revenue
	})
	return stats
}

// CalculateFunnelStages tính funnel 4 bậc theo journeyStage.
// Count theo bậc tối thiểu nên luôn không tăng dần; percentage là tỷ lệ trên
// tổng booked (0-1); dropOff là chênh lệch với bậc trước.
func CalculateFunnelStages(clients []dashmodels.Client) []dashdto.FunnelStage {
	booked, attended, closed, paid := stageCounts(clients)

	counts := []struct {
		stage string
		count int
	}{
		{"Booked", booked},
		{"Attended", attended},
		{"Closed", closed},
		{"Paid", paid},
	}

	stages := make([]dashdto.FunnelStage, 0, len(counts))
	for i, s := range counts {
		dropOff := 0
		if i > 0 {
			dropOff = counts[i-1].count - s.count
		}
		stages = append(stages, dashdto.FunnelStage{
			Stage:      s.stage,
			Count:      s.count,
			Percentage: safeRatio(float64(s.count), float64(booked)),
			DropOff:    dropOff,
		})
	}
	return stages
}

// CalculateActionItems lọc bốn worklist cần hành động.
// now là mốc thời gian tham chiếu cho ngưỡng stale lead 7 ngày (inject để test được).
func CalculateActionItems(clients []dashmodels.Client, now time.Time) dashdto.ActionItems {
	sevenDaysAgo := now.AddDate(0, 0, -7)

	items := dashdto.ActionItems{
		NoShowsToRescue:  []dashmodels.Client{},
		WarmLeadsToClose: []dashmodels.Client{},
		UnpaidBalances:   []dashmodels.Client{},
		StaleLeads:       []dashmodels.Client{},
	}

	for i := range clients {
		client := clients[i]

		// No show cần cứu: không đến và chưa chốt
		if client.CallStatus == "No Show" && client.ClosedStatus != "Closed" {
			items.NoShowsToRescue = append(items.NoShowsToRescue, client)
		}

		// Warm lead: đã attended nhưng chưa chốt
		if client.JourneyStage == dashmodels.StageAttended && client.ClosedStatus != "Closed" {
			items.WarmLeadsToClose = append(items.WarmLeadsToClose, client)
		}

		// Còn nợ tiền
		if client.Balance > 0 {
			items.UnpaidBalances = append(items.UnpaidBalances, client)
		}

		// Stale lead: vẫn ở booked và booking date quá 7 ngày trước
		if client.JourneyStage == dashmodels.StageBooked && client.BookingDate != "" {
			if bookingDate, err := time.Parse("2006-01-02", client.BookingDate); err == nil {
				if sevenDaysAgo.After(bookingDate) {
					items.StaleLeads = append(items.StaleLeads, client)
				}
			}
		}
	}

	return items
}

// CalculateMonthlyRevenue gom doanh thu theo tháng (YYYY-MM) của purchaseDate.
// Chỉ tính client có purchaseDate parse được và actualPrice > 0.
// Kết quả sort tăng dần theo tháng.
func CalculateMonthlyRevenue(clients []dashmodels.Client) []dashdto.MonthlyRevenue {
	monthMap := make(map[string]*dashdto.MonthlyRevenue)

	for i := range clients {
		client := clients[i]
		if client.PurchaseDate == "" || client.ActualPrice == 0 {
			continue
		}
		purchaseDate, err := time.Parse("2006-01-02", client.PurchaseDate)
		if err != nil {
			continue
		}
		month := purchaseDate.Format("2006-01")
		entry, ok := monthMap[month]
		if !ok {
			entry = &dashdto.MonthlyRevenue{Month: month}
			monthMap[month] = entry
		}
		entry.Revenue += client.ActualPrice
		entry.CashCollected += client.CashCollected
		entry.Deals++
	}

	months := make([]dashdto.MonthlyRevenue, 0, len(monthMap))
	for _, entry := range monthMap {
		months = append(months, *entry)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].Month < months[j].Month
	})
	return months
}

// calculateRevenueData tính số liệu doanh thu trên các client đã convert
func calculateRevenueData(clients []dashmodels.Client) dashdto.RevenueData {
	totalRevenue := 0.0
	cashCollected := 0.0
	outstandingBalance := 0.0
	totalDeals := 0

	for i := range clients {
		client := clients[i]
		if !client.IsConverted {
			continue
		}
		totalRevenue += client.ActualPrice
		cashCollected += client.CashCollected
		outstandingBalance += client.Balance
		totalDeals++
	}

	return dashdto.RevenueData{
		TotalRevenue:       totalRevenue,
		CashCollected:      cashCollected,
		OutstandingBalance: outstandingBalance,
		AvgDealSize:        safeRatio(totalRevenue, float64(totalDeals)),
		TotalDeals:         totalDeals,
	}
}

// calculateKPIs tính các chỉ số tổng quan. Mọi tỷ lệ đều guard mẫu số 0.
func calculateKPIs(clients []dashmodels.Client) dashdto.KPIs {
	booked, attended, closed, paid := stageCounts(clients)

	totalRevenue := 0.0
	for i := range clients {
		totalRevenue += clients[i].ActualPrice
	}

	return dashdto.KPIs{
		TotalBooked:    booked,
		TotalAttended:  attended,
		TotalClosed:    closed,
		TotalPaid:      paid,
		ConversionRate: safeRatio(float64(closed), float64(booked)),
		AttendanceRate: safeRatio(float64(attended), float64(booked)),
		CloseRate:      safeRatio(float64(closed), float64(attended)),
		TotalRevenue:   totalRevenue,
		AvgDealSize:    safeRatio(totalRevenue, float64(closed)),
	}
}

// BuildDashboardData chạy toàn bộ aggregator trên danh sách client.
// now là mốc thời gian tham chiếu, inject từ caller.
func BuildDashboardData(clients []dashmodels.Client, now time.Time) dashdto.DashboardData {
	monthlyRevenue := CalculateMonthlyRevenue(clients)

	return dashdto.DashboardData{
		Clients:        clients,
		CloserStats:    CalculateCloserStats(clients),
		FunnelStages:   CalculateFunnelStages(clients),
		MonthlyRevenue: monthlyRevenue,
		ActionItems:    CalculateActionItems(clients, now),
		RevenueData:    calculateRevenueData(clients),
		KPIs:           calculateKPIs(clients),
		KPITrends:      CalculateMonthOverMonthTrends(monthlyRevenue),
	}
}
