// Package dashsvc - Trend engine: biến động month-over-month của các chỉ số doanh thu.
package dashsvc

import (
	"math"

	dashdto "medspa_dashboard/internal/api/dashboard/dto"
)

// percentageChange tính phần trăm thay đổi giữa hai giá trị.
// Kỳ trước bằng 0: trả về 100 nếu kỳ này > 0, ngược lại 0 (tránh Infinity).
func percentageChange(current float64, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}

// roundTrend làm tròn 1 chữ số thập phân và gói thành TrendData
func roundTrend(change float64) *dashdto.TrendData {
	return &dashdto.TrendData{
		Value:      math.Round(change*10) / 10,
		IsPositive: change >= 0,
	}
}

// CalculateMonthOverMonthTrends so sánh tháng gần nhất với tháng liền trước
// trong chuỗi doanh thu theo tháng. Dưới 2 tháng dữ liệu thì mọi trend là nil.
func CalculateMonthOverMonthTrends(monthlyRevenue []dashdto.MonthlyRevenue) dashdto.KPITrends {
	if len(monthlyRevenue) < 2 {
		return dashdto.KPITrends{}
	}

	// Chuỗi đã sort tăng dần theo tháng: hai phần tử cuối là tháng hiện tại và tháng trước
	current := monthlyRevenue[len(monthlyRevenue)-1]
	previous := monthlyRevenue[len(monthlyRevenue)-2]

	currentAvgDeal := safeRatio(current.Revenue, float64(current.Deals))
	previousAvgDeal := safeRatio(previous.Revenue, float64(previous.Deals))

	return dashdto.KPITrends{
		Revenue:       roundTrend(percentageChange(current.Revenue, previous.Revenue)),
		Deals:         roundTrend(percentageChange(float64(current.Deals), float64(previous.Deals))),
		AvgDealSize:   roundTrend(percentageChange(currentAvgDeal, previousAvgDeal)),
		CashCollected: roundTrend(percentageChange(current.CashCollected, previous.CashCollected)),
	}
}
