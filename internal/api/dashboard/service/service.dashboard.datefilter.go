// Package dashsvc - Date filter: tính DateBounds từ filter state và lọc client theo khoảng thời gian.
package dashsvc

import (
	"time"

	dashdto "medspa_dashboard/internal/api/dashboard/dto"
	dashmodels "medspa_dashboard/internal/api/dashboard/models"
)

// startOfDay trả về 00:00:00 của ngày chứa t
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay trả về cuối ngày chứa t
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// startOfWeek trả về đầu tuần chứa t. Tuần bắt đầu từ Chủ nhật.
func startOfWeek(t time.Time) time.Time {
	return startOfDay(t.AddDate(0, 0, -int(t.Weekday())))
}

// endOfWeek trả về cuối tuần chứa t (thứ Bảy)
func endOfWeek(t time.Time) time.Time {
	return endOfDay(startOfWeek(t).AddDate(0, 0, 6))
}

// startOfMonth trả về ngày 1 của tháng chứa t
func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// endOfMonth trả về cuối ngày cuối cùng của tháng chứa t
func endOfMonth(t time.Time) time.Time {
	return endOfDay(startOfMonth(t).AddDate(0, 1, -1))
}

// startOfQuarter trả về ngày đầu quý chứa t
func startOfQuarter(t time.Time) time.Time {
	quarterStartMonth := time.Month(((int(t.Month())-1)/3)*3 + 1)
	return time.Date(t.Year(), quarterStartMonth, 1, 0, 0, 0, 0, t.Location())
}

// endOfQuarter trả về cuối ngày cuối cùng của quý chứa t
func endOfQuarter(t time.Time) time.Time {
	return endOfDay(startOfQuarter(t).AddDate(0, 3, -1))
}

// startOfYear trả về ngày 1 tháng 1 của năm chứa t
func startOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// endOfYear trả về cuối ngày 31 tháng 12 của năm chứa t
func endOfYear(t time.Time) time.Time {
	return endOfDay(time.Date(t.Year(), time.December, 31, 0, 0, 0, 0, t.Location()))
}

// boundsOf gói cặp start/end thành DateBounds
func boundsOf(start time.Time, end time.Time) dashdto.DateBounds {
	return dashdto.DateBounds{Start: &start, End: &end}
}

// BoundsFromState tính DateBounds từ filter state với mốc thời gian now.
// Preset không nhận diện được hoặc custom thiếu start/end đều trả về unbounded.
func BoundsFromState(state dashdto.DateFilterState, now time.Time) dashdto.DateBounds {
	switch state.RangeType {
	case dashdto.RangeToday:
		return boundsOf(startOfDay(now), endOfDay(now))
	case dashdto.RangeWeekToDate:
		return boundsOf(startOfWeek(now), endOfDay(now))
	case dashdto.RangeMonthToDate:
		return boundsOf(startOfMonth(now), endOfDay(now))
	case dashdto.RangeQuarterToDate:
		return boundsOf(startOfQuarter(now), endOfDay(now))
	case dashdto.RangeYearToDate:
		return boundsOf(startOfYear(now), endOfDay(now))
	case dashdto.RangeLastWeek:
		lastWeek := now.AddDate(0, 0, -7)
		return boundsOf(startOfWeek(lastWeek), endOfWeek(lastWeek))
	case dashdto.RangeLastMonth:
		lastMonth := now.AddDate(0, -1, 0)
		return boundsOf(startOfMonth(lastMonth), endOfMonth(lastMonth))
	case dashdto.RangeLastQuarter:
		lastQuarter := now.AddDate(0, -3, 0)
		return boundsOf(startOfQuarter(lastQuarter), endOfQuarter(lastQuarter))
	case dashdto.RangeLastYear:
		lastYear := now.AddDate(-1, 0, 0)
		return boundsOf(startOfYear(lastYear), endOfYear(lastYear))
	case dashdto.RangeSpecificMonth:
		if state.SelectedMonth < 1 || state.SelectedMonth > 12 || state.SelectedYear == 0 {
			return dashdto.DateBounds{}
		}
		monthDate := time.Date(state.SelectedYear, time.Month(state.SelectedMonth), 1, 0, 0, 0, 0, now.Location())
		return boundsOf(startOfMonth(monthDate), endOfMonth(monthDate))
	case dashdto.RangeCustom:
		// Custom chưa chọn đủ start và end thì không phải bound hợp lệ
		start, errStart := time.ParseInLocation("2006-01-02", state.CustomStart, now.Location())
		end, errEnd := time.ParseInLocation("2006-01-02", state.CustomEnd, now.Location())
		if errStart != nil || errEnd != nil {
			return dashdto.DateBounds{}
		}
		return boundsOf(startOfDay(start), endOfDay(end))
	default:
		// all và các giá trị không nhận diện được
		return dashdto.DateBounds{}
	}
}

// boundsLocation trả về location của bounds để parse ngày cùng hệ quy chiếu
func boundsLocation(bounds dashdto.DateBounds) *time.Location {
	if bounds.Start != nil {
		return bounds.Start.Location()
	}
	if bounds.End != nil {
		return bounds.End.Location()
	}
	return time.UTC
}

// IsDateInRange kiểm tra ngày (YYYY-MM-DD) có nằm trong [start, end] không.
// Unbounded thì mọi ngày đều nằm trong; khi có bound thì ngày rỗng hoặc không
// parse được bị loại.
func IsDateInRange(dateStr string, bounds dashdto.DateBounds) bool {
	if bounds.IsUnbounded() {
		return true
	}
	if dateStr == "" {
		return false
	}
	date, err := time.ParseInLocation("2006-01-02", dateStr, boundsLocation(bounds))
	if err != nil {
		return false
	}
	if bounds.Start != nil && date.Before(*bounds.Start) {
		return false
	}
	if bounds.End != nil && date.After(*bounds.End) {
		return false
	}
	return true
}

// representativeDate chọn ngày đại diện của client để xếp vào khoảng filter,
// ưu tiên bookingDate > purchaseDate > callDate.
func representativeDate(client *dashmodels.Client) string {
	return firstNonEmpty(client.BookingDate, client.PurchaseDate, client.CallDate)
}

// FilterClientsByDate lọc client theo ngày đại diện nằm trong bounds.
// Unbounded trả về nguyên danh sách đầu vào.
func FilterClientsByDate(clients []dashmodels.Client, bounds dashdto.DateBounds) []dashmodels.Client {
	if bounds.IsUnbounded() {
		return clients
	}
	filtered := make([]dashmodels.Client, 0, len(clients))
	for i := range clients {
		if IsDateInRange(representativeDate(&clients[i]), bounds) {
			filtered = append(filtered, clients[i])
		}
	}
	return filtered
}

// FilterAndReaggregate lọc client theo bounds rồi chạy lại toàn bộ aggregator.
// Unbounded là đường đi rẻ: aggregate thẳng trên danh sách gốc.
func FilterAndReaggregate(clients []dashmodels.Client, bounds dashdto.DateBounds, now time.Time) dashdto.DashboardData {
	if bounds.IsUnbounded() {
		return BuildDashboardData(clients, now)
	}
	return BuildDashboardData(FilterClientsByDate(clients, bounds), now)
}
