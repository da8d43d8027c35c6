// Package dashdto chứa DTO cho domain Dashboard: các aggregate trả về cho client.
package dashdto

import (
	dashmodels "medspa_dashboard/internal/api/dashboard/models"
)

// CloserStats là thống kê leaderboard của một closer.
type CloserStats struct {
	Name           string  `json:"name"`
	TotalCalls     int     `json:"totalCalls"`     // Số client được gán cho closer
	Attended       int     `json:"attended"`       // Số client có callStatus Attended
	Closed         int     `json:"closed"`         // Số client đã convert
	Revenue        float64 `json:"revenue"`        // Tổng actualPrice của tất cả client trong nhóm
	CashCollected  float64 `json:"cashCollected"`  // Tổng tiền đã thu
	CloseRate      float64 `json:"closeRate"`      // closed/attended, 0 khi attended = 0
	AttendanceRate float64 `json:"attendanceRate"` // attended/totalCalls, 0 khi totalCalls = 0
	AvgDealSize    float64 `json:"avgDealSize"`    // revenue/closed, 0 khi closed = 0
}

// FunnelStage là một bậc trong funnel booked -> attended -> closed -> paid.
type FunnelStage struct {
	Stage      string  `json:"stage"`      // Nhãn: Booked, Attended, Closed, Paid
	Count      int     `json:"count"`      // Số client đạt tối thiểu bậc này
	Percentage float64 `json:"percentage"` // Tỷ lệ trên tổng booked (0-1)
	DropOff    int     `json:"dropOff"`    // Chênh lệch với bậc trước, 0 ở bậc đầu
}

// RevenueData là số liệu doanh thu tính trên các client đã convert (closed/paid).
type RevenueData struct {
	TotalRevenue       float64 `json:"totalRevenue"`
	CashCollected      float64 `json:"cashCollected"`
	OutstandingBalance float64 `json:"outstandingBalance"`
	AvgDealSize        float64 `json:"avgDealSize"` // totalRevenue/totalDeals, 0 khi không có deal
	TotalDeals         int     `json:"totalDeals"`
}

// MonthlyRevenue là doanh thu gom theo tháng (key YYYY-MM).
type MonthlyRevenue struct {
	Month         string  `json:"month"` // YYYY-MM
	Revenue       float64 `json:"revenue"`
	CashCollected float64 `json:"cashCollected"`
	Deals         int     `json:"deals"`
}

// ActionItems là bốn worklist cần hành động, tham chiếu trực tiếp các Client.
type ActionItems struct {
	NoShowsToRescue []dashmodels.Client `json:"noShowsToRescue"` // No Show và chưa chốt
	WarmLeadsToClose []dashmodels.Client `json:"warmLeadsToClose"` // Đã attended nhưng chưa chốt
	UnpaidBalances  []dashmodels.Client `json:"unpaidBalances"`  // Còn balance > 0
	StaleLeads      []dashmodels.Client `json:"staleLeads"`      // Booked quá 7 ngày không tiến triển
}

// KPIs là các chỉ số tổng quan của dashboard.
type KPIs struct {
	TotalBooked    int     `json:"totalBooked"`
	TotalAttended  int     `json:"totalAttended"`
	TotalClosed    int     `json:"totalClosed"`
	TotalPaid      int     `json:"totalPaid"`
	ConversionRate float64 `json:"conversionRate"` // closed/booked (0-1)
	AttendanceRate float64 `json:"attendanceRate"` // attended/booked (0-1)
	CloseRate      float64 `json:"closeRate"`      // closed/attended (0-1)
	TotalRevenue   float64 `json:"totalRevenue"`
	AvgDealSize    float64 `json:"avgDealSize"`
}

// TrendData là biến động phần trăm so với tháng trước của một chỉ số.
type TrendData struct {
	Value      float64 `json:"value"`      // Phần trăm thay đổi, làm tròn 1 chữ số thập phân
	IsPositive bool    `json:"isPositive"` // true khi thay đổi >= 0
}

// KPITrends là biến động month-over-month của các chỉ số doanh thu.
// Field nil nghĩa là chưa đủ dữ liệu (dưới 2 tháng) để so sánh.
type KPITrends struct {
	Revenue       *TrendData `json:"revenue"`
	Deals         *TrendData `json:"deals"`
	AvgDealSize   *TrendData `json:"avgDealSize"`
	CashCollected *TrendData `json:"cashCollected"`
}

// DashboardMeta là metadata đi kèm response: nguồn dữ liệu, thời điểm fetch.
type DashboardMeta struct {
	DataSource  string `json:"dataSource"` // google-sheets | excel | none
	LastFetched string `json:"lastFetched"`
}

// DashboardData là aggregate đầy đủ trả về cho dashboard.
type DashboardData struct {
	Clients        []dashmodels.Client `json:"clients"`
	CloserStats    []CloserStats       `json:"closerStats"`
	FunnelStages   []FunnelStage       `json:"funnelStages"`
	MonthlyRevenue []MonthlyRevenue    `json:"monthlyRevenue"`
	ActionItems    ActionItems         `json:"actionItems"`
	RevenueData    RevenueData         `json:"revenueData"`
	KPIs           KPIs                `json:"kpis"`
	KPITrends      KPITrends           `json:"kpiTrends"`
	Comparisons    *KPIComparisons     `json:"comparisons"` // nil khi filter là all time
	LastUpdated    string              `json:"lastUpdated"`
	Meta           DashboardMeta       `json:"_meta"`
}
