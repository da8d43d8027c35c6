// Package dashdto - DTO cho date filter và period comparison.
package dashdto

import "time"

// Các preset khoảng thời gian của date filter
const (
	RangeAll           = "all"
	RangeToday         = "today"
	RangeWeekToDate    = "wtd"
	RangeMonthToDate   = "mtd"
	RangeQuarterToDate = "qtd"
	RangeYearToDate    = "ytd"
	RangeLastWeek      = "lastWeek"
	RangeLastMonth     = "lastMonth"
	RangeLastQuarter   = "lastQuarter"
	RangeLastYear      = "lastYear"
	RangeSpecificMonth = "specificMonth"
	RangeCustom        = "custom"
)

// Kiểu hiển thị của một comparison
const (
	ComparisonTypePercent = "percent" // Thay đổi phần trăm (chỉ số tiền/đếm)
	ComparisonTypePoints  = "points"  // Thay đổi điểm phần trăm (chỉ số tỷ lệ)
)

// DateFilterState là trạng thái filter do client chọn.
type DateFilterState struct {
	RangeType     string // Một trong các Range* constants
	CustomStart   string // YYYY-MM-DD, chỉ dùng với RangeCustom
	CustomEnd     string // YYYY-MM-DD, chỉ dùng với RangeCustom
	SelectedMonth int    // 1-12, chỉ dùng với RangeSpecificMonth
	SelectedYear  int    // Chỉ dùng với RangeSpecificMonth
}

// DateBounds là khoảng thời gian đã tính từ filter state.
// Cả hai đều nil nghĩa là không giới hạn (all time).
type DateBounds struct {
	Start *time.Time
	End   *time.Time
}

// IsUnbounded kiểm tra bounds có phải all time không
func (b DateBounds) IsUnbounded() bool {
	return b.Start == nil && b.End == nil
}

// ComparisonPeriod là khoảng thời gian so sánh kèm nhãn hiển thị.
type ComparisonPeriod struct {
	Bounds DateBounds
	Label  string // Ví dụ: "so với Tháng 7"
}

// ComparisonResult là kết quả so sánh một chỉ số giữa hai kỳ.
type ComparisonResult struct {
	Value      float64 `json:"value"`      // Giá trị tuyệt đối của thay đổi
	IsPositive bool    `json:"isPositive"` // true khi thay đổi >= 0
	Label      string  `json:"label"`
	Type       string  `json:"type"` // percent | points
}

// KPIComparisons là so sánh kỳ-trên-kỳ của các chỉ số chính.
// Field nil nghĩa là comparison bị ẩn (kỳ trước không có dữ liệu).
type KPIComparisons struct {
	TotalRevenue   *ComparisonResult `json:"totalRevenue"`
	CashCollected  *ComparisonResult `json:"cashCollected"`
	AvgDealSize    *ComparisonResult `json:"avgDealSize"`
	ConversionRate *ComparisonResult `json:"conversionRate"`
	CloseRate      *ComparisonResult `json:"closeRate"`
}

// DashboardQuery là query params của GET /dashboard.
type DashboardQuery struct {
	Range         string `query:"range" validate:"omitempty,oneof=all today wtd mtd qtd ytd lastWeek lastMonth lastQuarter lastYear specificMonth custom"`
	CustomStart   string `query:"customStart" validate:"omitempty,iso_date"`
	CustomEnd     string `query:"customEnd" validate:"omitempty,iso_date"`
	SelectedMonth int    `query:"month" validate:"omitempty,min=1,max=12"`
	SelectedYear  int    `query:"year" validate:"omitempty,min=2020,max=2100"`
	Closer        string `query:"closer" validate:"omitempty,no_xss"`
}

// ToFilterState chuyển query params về DateFilterState, mặc định là all time
func (q *DashboardQuery) ToFilterState() DateFilterState {
	rangeType := q.Range
	if rangeType == "" {
		rangeType = RangeAll
	}
	return DateFilterState{
		RangeType:     rangeType,
		CustomStart:   q.CustomStart,
		CustomEnd:     q.CustomEnd,
		SelectedMonth: q.SelectedMonth,
		SelectedYear:  q.SelectedYear,
	}
}
