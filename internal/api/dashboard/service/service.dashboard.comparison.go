// Package dashsvc - So sánh KPI với kỳ trước: tính khoảng thời gian so sánh
// tương ứng với từng preset và độ chênh lệch của từng chỉ số.
package dashsvc

import (
	"math"
	"time"

	dashdto "medspa_dashboard/internal/api/dashboard/dto"
	dashmodels "medspa_dashboard/internal/api/dashboard/models"
)

// addMonthsClamped dịch t đi months tháng, giữ nguyên ngày trong tháng và
// clamp về ngày cuối tháng khi tháng đích ngắn hơn (31/3 lùi 1 tháng ra 28/2,
// không trôi sang 3/3 như AddDate)
func addMonthsClamped(t time.Time, months int) time.Time {
	firstOfTarget := time.Date(t.Year(), t.Month(), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location()).AddDate(0, months, 0)
	day := t.Day()
	if lastDay := endOfMonth(firstOfTarget).Day(); day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// ComparisonPeriodFromState tính khoảng thời gian so sánh tương ứng với filter
// state hiện tại. Trả về nil khi không có kỳ so sánh có nghĩa (all, custom
// thiếu ngày).
func ComparisonPeriodFromState(state dashdto.DateFilterState, now time.Time) *dashdto.ComparisonPeriod {
	switch state.RangeType {
	case dashdto.RangeToday:
		// Cùng thứ của tuần trước
		sameDayLastWeek := now.AddDate(0, 0, -7)
		return &dashdto.ComparisonPeriod{
			Bounds: boundsOf(startOfDay(sameDayLastWeek), endOfDay(sameDayLastWeek)),
			Label:  "so với cùng thứ tuần trước",
		}
	case dashdto.RangeWeekToDate:
		// Tuần trước, tính đến cùng điểm đã trôi qua
		lastWeekNow := now.AddDate(0, 0, -7)
		return &dashdto.ComparisonPeriod{
			Bounds: boundsOf(startOfWeek(lastWeekNow), endOfDay(lastWeekNow)),
			Label:  "so với cùng kỳ tuần trước",
		}
	case dashdto.RangeMonthToDate:
		lastMonthNow := addMonthsClamped(now, -1)
		return &dashdto.ComparisonPeriod{
			Bounds: boundsOf(startOfMonth(lastMonthNow), endOfDay(lastMonthNow)),
			Label:  "so với cùng kỳ tháng trước",
		}
	case dashdto.RangeQuarterToDate:
		lastQuarterNow := addMonthsClamped(now, -3)
		return &dashdto.ComparisonPeriod{
			Bounds: boundsOf(startOfQuarter(lastQuarterNow), endOfDay(lastQuarterNow)),
			Label:  "so với cùng kỳ quý trước",
		}
	case dashdto.RangeYearToDate:
		lastYearNow := addMonthsClamped(now, -12)
		return &dashdto.ComparisonPeriod{
			Bounds: boundsOf(startOfYear(lastYearNow), endOfDay(lastYearNow)),
			Label:  "so với cùng kỳ năm trước",
		}
	case dashdto.RangeLastWeek:
		twoWeeksAgo := now.AddDate(0, 0, -14)
		return &dashdto.ComparisonPeriod{
			Bounds: boundsOf(startOfWeek(twoWeeksAgo), endOfWeek(twoWeeksAgo)),
			Label:  "so với tuần trước đó",
		}
	case dashdto.RangeLastMonth:
		twoMonthsAgo := addMonthsClamped(now, -2)
		return &dashdto.ComparisonPeriod{
			Bounds: boundsOf(startOfMonth(twoMonthsAgo), endOfMonth(twoMonthsAgo)),
			Label:  "so với tháng trước đó",
		}
	case dashdto.RangeLastQuarter:
		twoQuartersAgo := addMonthsClamped(now, -6)
		return &dashdto.ComparisonPeriod{
			Bounds: boundsOf(startOfQuarter(twoQuartersAgo), endOfQuarter(twoQuartersAgo)),
			Label:  "so với quý trước đó",
		}
	case dashdto.RangeLastYear:
		twoYearsAgo := now.AddDate(-2, 0, 0)
		return &dashdto.ComparisonPeriod{
			Bounds: boundsOf(startOfYear(twoYearsAgo), endOfYear(twoYearsAgo)),
			Label:  "so với năm trước đó",
		}
	case dashdto.RangeSpecificMonth:
		if state.SelectedMonth < 1 || state.SelectedMonth > 12 || state.SelectedYear == 0 {
			return nil
		}
		// Cùng tháng của năm trước
		sameMonthLastYear := time.Date(state.SelectedYear-1, time.Month(state.SelectedMonth), 1, 0, 0, 0, 0, now.Location())
		return &dashdto.ComparisonPeriod{
			Bounds: boundsOf(startOfMonth(sameMonthLastYear), endOfMonth(sameMonthLastYear)),
			Label:  "so với cùng tháng năm trước",
		}
	case dashdto.RangeCustom:
		start, errStart := time.ParseInLocation("2006-01-02", state.CustomStart, now.Location())
		end, errEnd := time.ParseInLocation("2006-01-02", state.CustomEnd, now.Location())
		if errStart != nil || errEnd != nil {
			return nil
		}
		// Cửa sổ cùng độ dài nằm ngay trước khoảng đã chọn
		durationDays := int(startOfDay(end).Sub(startOfDay(start)).Hours() / 24)
		previousEnd := start.AddDate(0, 0, -1)
		previousStart := previousEnd.AddDate(0, 0, -durationDays)
		return &dashdto.ComparisonPeriod{
			Bounds: boundsOf(startOfDay(previousStart), endOfDay(previousEnd)),
			Label:  "so với kỳ trước",
		}
	default:
		// all không có kỳ so sánh
		return nil
	}
}

// CalculateComparison tính độ chênh lệch của một chỉ số so với kỳ trước.
// Kỳ trước bằng 0 thì không so sánh được, trả về nil để phía hiển thị ẩn đi.
// Chỉ số dạng tỷ lệ (0-1) so theo điểm phần trăm, còn lại so theo phần trăm.
func CalculateComparison(current float64, previous float64, label string, isRate bool) *dashdto.ComparisonResult {
	if previous == 0 {
		return nil
	}
	var change float64
	comparisonType := dashdto.ComparisonTypePercent
	if isRate {
		change = (current - previous) * 100
		comparisonType = dashdto.ComparisonTypePoints
	} else {
		change = (current - previous) / previous * 100
	}
	return &dashdto.ComparisonResult{
		Value:      math.Abs(change),
		IsPositive: change >= 0,
		Label:      label,
		Type:       comparisonType,
	}
}

// BuildKPIComparisons so sánh các KPI của kỳ hiện tại với kỳ trước.
// Kỳ trước được aggregate lại từ cùng danh sách client gốc với bounds của
// ComparisonPeriod, đảm bảo hai kỳ đo bằng cùng một thước.
func BuildKPIComparisons(allClients []dashmodels.Client, current dashdto.DashboardData, period *dashdto.ComparisonPeriod, now time.Time) *dashdto.KPIComparisons {
	if period == nil {
		return nil
	}
	previous := FilterAndReaggregate(allClients, period.Bounds, now)
	return &dashdto.KPIComparisons{
		TotalRevenue:   CalculateComparison(current.RevenueData.TotalRevenue, previous.RevenueData.TotalRevenue, period.Label, false),
		CashCollected:  CalculateComparison(current.RevenueData.CashCollected, previous.RevenueData.CashCollected, period.Label, false),
		AvgDealSize:    CalculateComparison(current.RevenueData.AvgDealSize, previous.RevenueData.AvgDealSize, period.Label, false),
		ConversionRate: CalculateComparison(current.KPIs.ConversionRate, previous.KPIs.ConversionRate, period.Label, true),
		CloseRate:      CalculateComparison(current.KPIs.CloseRate, previous.KPIs.CloseRate, period.Label, true),
	}
}
