// Package dashsvc - Test date filter: tính bounds từ preset và lọc client.
package dashsvc

import (
	"testing"
	"time"

	dashdto "medspa_dashboard/internal/api/dashboard/dto"
	dashmodels "medspa_dashboard/internal/api/dashboard/models"
)

// fixedNow là mốc thời gian cố định cho test: thứ Sáu 2024-03-15 10:30 UTC
var fixedNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func mustBounds(t *testing.T, bounds dashdto.DateBounds) (time.Time, time.Time) {
	t.Helper()
	if bounds.Start == nil || bounds.End == nil {
		t.Fatal("bounds phải có đủ start và end")
	}
	return *bounds.Start, *bounds.End
}

func TestBoundsFromState_AllTime(t *testing.T) {
	bounds := BoundsFromState(dashdto.DateFilterState{RangeType: dashdto.RangeAll}, fixedNow)
	if !bounds.IsUnbounded() {
		t.Error("preset all phải trả về bounds không giới hạn")
	}
}

func TestBoundsFromState_Today(t *testing.T) {
	bounds := BoundsFromState(dashdto.DateFilterState{RangeType: dashdto.RangeToday}, fixedNow)
	start, end := mustBounds(t, bounds)
	if start.Day() != 15 || start.Hour() != 0 {
		t.Errorf("start sai: %v", start)
	}
	if end.Day() != 15 || end.Hour() != 23 {
		t.Errorf("end sai: %v", end)
	}
}

func TestBoundsFromState_WeekToDate(t *testing.T) {
	// Tuần bắt đầu từ Chủ nhật: 2024-03-15 là thứ Sáu nên đầu tuần là 2024-03-10
	bounds := BoundsFromState(dashdto.DateFilterState{RangeType: dashdto.RangeWeekToDate}, fixedNow)
	start, end := mustBounds(t, bounds)
	if start.Format("2006-01-02") != "2024-03-10" {
		t.Errorf("start sai: %v (kỳ vọng Chủ nhật 2024-03-10)", start)
	}
	if end.Format("2006-01-02") != "2024-03-15" {
		t.Errorf("end sai: %v", end)
	}
}

func TestBoundsFromState_MonthToDate(t *testing.T) {
	bounds := BoundsFromState(dashdto.DateFilterState{RangeType: dashdto.RangeMonthToDate}, fixedNow)
	start, end := mustBounds(t, bounds)
	if start.Format("2006-01-02") != "2024-03-01" {
		t.Errorf("start sai: %v", start)
	}
	if end.Format("2006-01-02") != "2024-03-15" {
		t.Errorf("end sai: %v", end)
	}
}

func TestBoundsFromState_LastMonth(t *testing.T) {
	bounds := BoundsFromState(dashdto.DateFilterState{RangeType: dashdto.RangeLastMonth}, fixedNow)
	start, end := mustBounds(t, bounds)
	if start.Format("2006-01-02") != "2024-02-01" {
		t.Errorf("start sai: %v", start)
	}
	// 2024 là năm nhuận
	if end.Format("2006-01-02") != "2024-02-29" {
		t.Errorf("end sai: %v", end)
	}
}

func TestBoundsFromState_LastQuarter(t *testing.T) {
	bounds := BoundsFromState(dashdto.DateFilterState{RangeType: dashdto.RangeLastQuarter}, fixedNow)
	start, end := mustBounds(t, bounds)
	if start.Format("2006-01-02") != "2023-10-01" || end.Format("2006-01-02") != "2023-12-31" {
		t.Errorf("quý trước sai: %v .. %v", start, end)
	}
}

func TestBoundsFromState_SpecificMonth(t *testing.T) {
	state := dashdto.DateFilterState{
		RangeType:     dashdto.RangeSpecificMonth,
		SelectedMonth: 3,
		SelectedYear:  2024,
	}
	bounds := BoundsFromState(state, fixedNow)
	start, end := mustBounds(t, bounds)
	if start.Format("2006-01-02") != "2024-03-01" || end.Format("2006-01-02") != "2024-03-31" {
		t.Errorf("specificMonth sai: %v .. %v", start, end)
	}
}

func TestBoundsFromState_Custom(t *testing.T) {
	state := dashdto.DateFilterState{
		RangeType:   dashdto.RangeCustom,
		CustomStart: "2024-03-01",
		CustomEnd:   "2024-03-31",
	}
	bounds := BoundsFromState(state, fixedNow)
	start, end := mustBounds(t, bounds)
	if start.Format("2006-01-02") != "2024-03-01" || end.Format("2006-01-02") != "2024-03-31" {
		t.Errorf("custom sai: %v .. %v", start, end)
	}
}

func TestBoundsFromState_IncompleteCustom(t *testing.T) {
	// Custom chỉ có start: chưa phải bound hợp lệ, không được lọc dữ liệu
	state := dashdto.DateFilterState{
		RangeType:   dashdto.RangeCustom,
		CustomStart: "2024-03-01",
	}
	if bounds := BoundsFromState(state, fixedNow); !bounds.IsUnbounded() {
		t.Error("custom thiếu end phải trả về bounds không giới hạn")
	}
}

func TestIsDateInRange(t *testing.T) {
	march := BoundsFromState(dashdto.DateFilterState{
		RangeType:   dashdto.RangeCustom,
		CustomStart: "2024-03-01",
		CustomEnd:   "2024-03-31",
	}, fixedNow)
	april := BoundsFromState(dashdto.DateFilterState{
		RangeType:   dashdto.RangeCustom,
		CustomStart: "2024-04-01",
		CustomEnd:   "2024-04-30",
	}, fixedNow)

	if !IsDateInRange("2024-03-15", march) {
		t.Error("2024-03-15 phải nằm trong tháng 3")
	}
	if IsDateInRange("2024-03-15", april) {
		t.Error("2024-03-15 không được nằm trong tháng 4")
	}
	// Hai biên đều inclusive
	if !IsDateInRange("2024-03-01", march) || !IsDateInRange("2024-03-31", march) {
		t.Error("biên đầu và biên cuối phải inclusive")
	}
	// Có bound thì ngày rỗng/không hợp lệ bị loại
	if IsDateInRange("", march) {
		t.Error("ngày rỗng phải bị loại khi có bound")
	}
	if IsDateInRange("not-a-date", march) {
		t.Error("ngày không parse được phải bị loại khi có bound")
	}
	// Không có bound thì mọi ngày đều qua, kể cả rỗng
	unbounded := dashdto.DateBounds{}
	if !IsDateInRange("", unbounded) || !IsDateInRange("2024-03-15", unbounded) {
		t.Error("bounds không giới hạn phải cho qua mọi ngày")
	}
}

func TestFilterClientsByDate_RepresentativeDatePriority(t *testing.T) {
	march := BoundsFromState(dashdto.DateFilterState{
		RangeType:   dashdto.RangeCustom,
		CustomStart: "2024-03-01",
		CustomEnd:   "2024-03-31",
	}, fixedNow)

	clients := []dashmodels.Client{
		// bookingDate thắng purchaseDate khi xét khoảng
		{Name: "BookingWins", BookingDate: "2024-03-10", PurchaseDate: "2024-04-10"},
		// Không có bookingDate: dùng purchaseDate
		{Name: "PurchaseFallback", PurchaseDate: "2024-03-20"},
		// Chỉ có callDate
		{Name: "CallFallback", CallDate: "2024-03-25"},
		// Ngoài khoảng
		{Name: "Outside", BookingDate: "2024-04-05"},
		// Không có ngày nào: bị loại khi có bound
		{Name: "Dateless"},
	}

	filtered := FilterClientsByDate(clients, march)
	if len(filtered) != 3 {
		t.Fatalf("kỳ vọng 3 client trong tháng 3, nhận %d", len(filtered))
	}
	names := map[string]bool{}
	for _, c := range filtered {
		names[c.Name] = true
	}
	for _, expected := range []string{"BookingWins", "PurchaseFallback", "CallFallback"} {
		if !names[expected] {
			t.Errorf("thiếu client %q trong kết quả lọc", expected)
		}
	}

	// Không có bound: giữ cả client không có ngày
	all := FilterClientsByDate(clients, dashdto.DateBounds{})
	if len(all) != len(clients) {
		t.Errorf("bounds không giới hạn phải giữ nguyên danh sách, nhận %d", len(all))
	}
}

func TestFilterClientsByDate_Idempotent(t *testing.T) {
	march := BoundsFromState(dashdto.DateFilterState{
		RangeType:   dashdto.RangeCustom,
		CustomStart: "2024-03-01",
		CustomEnd:   "2024-03-31",
	}, fixedNow)

	clients := []dashmodels.Client{
		{Name: "A", BookingDate: "2024-03-10"},
		{Name: "B", BookingDate: "2024-04-10"},
	}

	once := FilterClientsByDate(clients, march)
	twice := FilterClientsByDate(once, march)
	if len(once) != len(twice) {
		t.Errorf("lọc hai lần với cùng bounds phải cho cùng kết quả: %d vs %d", len(once), len(twice))
	}
}
