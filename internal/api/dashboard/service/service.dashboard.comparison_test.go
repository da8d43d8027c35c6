// Package dashsvc - Test so sánh KPI với kỳ trước.
package dashsvc

import (
	"testing"
	"time"

	dashdto "medspa_dashboard/internal/api/dashboard/dto"
)

func TestComparisonPeriodFromState_AllTime(t *testing.T) {
	if period := ComparisonPeriodFromState(dashdto.DateFilterState{RangeType: dashdto.RangeAll}, fixedNow); period != nil {
		t.Error("preset all không có kỳ so sánh, phải trả về nil")
	}
}

func TestComparisonPeriodFromState_Today(t *testing.T) {
	period := ComparisonPeriodFromState(dashdto.DateFilterState{RangeType: dashdto.RangeToday}, fixedNow)
	if period == nil {
		t.Fatal("preset today phải có kỳ so sánh")
	}
	start, end := mustBounds(t, period.Bounds)
	// Cùng thứ tuần trước: thứ Sáu 2024-03-08
	if start.Format("2006-01-02") != "2024-03-08" || end.Format("2006-01-02") != "2024-03-08" {
		t.Errorf("kỳ so sánh today sai: %v .. %v", start, end)
	}
}

func TestComparisonPeriodFromState_MonthToDate(t *testing.T) {
	// now = 2024-03-15: kỳ so sánh là 2024-02-01 .. 2024-02-15 (cùng điểm đã trôi qua)
	period := ComparisonPeriodFromState(dashdto.DateFilterState{RangeType: dashdto.RangeMonthToDate}, fixedNow)
	if period == nil {
		t.Fatal("preset mtd phải có kỳ so sánh")
	}
	start, end := mustBounds(t, period.Bounds)
	if start.Format("2006-01-02") != "2024-02-01" || end.Format("2006-01-02") != "2024-02-15" {
		t.Errorf("kỳ so sánh mtd sai: %v .. %v", start, end)
	}
}

func TestComparisonPeriodFromState_MonthToDate_Clamped(t *testing.T) {
	// now = 31/3: tháng trước chỉ có 29 ngày (2024 nhuận), end phải clamp về 29/2
	endOfMarch := time.Date(2024, 3, 31, 10, 0, 0, 0, time.UTC)
	period := ComparisonPeriodFromState(dashdto.DateFilterState{RangeType: dashdto.RangeMonthToDate}, endOfMarch)
	if period == nil {
		t.Fatal("preset mtd phải có kỳ so sánh")
	}
	_, end := mustBounds(t, period.Bounds)
	if end.Format("2006-01-02") != "2024-02-29" {
		t.Errorf("end phải clamp về ngày cuối tháng 2: %v", end)
	}
}

func TestComparisonPeriodFromState_LastMonth(t *testing.T) {
	// Filter lastMonth (tháng 2): kỳ so sánh là tháng trước đó (tháng 1)
	period := ComparisonPeriodFromState(dashdto.DateFilterState{RangeType: dashdto.RangeLastMonth}, fixedNow)
	if period == nil {
		t.Fatal("preset lastMonth phải có kỳ so sánh")
	}
	start, end := mustBounds(t, period.Bounds)
	if start.Format("2006-01-02") != "2024-01-01" || end.Format("2006-01-02") != "2024-01-31" {
		t.Errorf("kỳ so sánh lastMonth sai: %v .. %v", start, end)
	}
}

func TestComparisonPeriodFromState_Custom(t *testing.T) {
	// Khoảng 10 ngày: kỳ so sánh là 10 ngày ngay trước đó
	state := dashdto.DateFilterState{
		RangeType:   dashdto.RangeCustom,
		CustomStart: "2024-03-11",
		CustomEnd:   "2024-03-20",
	}
	period := ComparisonPeriodFromState(state, fixedNow)
	if period == nil {
		t.Fatal("custom đầy đủ phải có kỳ so sánh")
	}
	start, end := mustBounds(t, period.Bounds)
	if start.Format("2006-01-02") != "2024-03-01" || end.Format("2006-01-02") != "2024-03-10" {
		t.Errorf("kỳ so sánh custom sai: %v .. %v", start, end)
	}
}

func TestComparisonPeriodFromState_IncompleteCustom(t *testing.T) {
	state := dashdto.DateFilterState{
		RangeType:   dashdto.RangeCustom,
		CustomStart: "2024-03-11",
	}
	if period := ComparisonPeriodFromState(state, fixedNow); period != nil {
		t.Error("custom thiếu end không có kỳ so sánh, phải trả về nil")
	}
}

func TestCalculateComparison_Suppression(t *testing.T) {
	// Kỳ trước bằng 0: không so sánh được, phải trả về nil
	if result := CalculateComparison(1000, 0, "so với kỳ trước", false); result != nil {
		t.Error("kỳ trước bằng 0 phải trả về nil")
	}
}

func TestCalculateComparison_Percent(t *testing.T) {
	result := CalculateComparison(1200, 1000, "so với kỳ trước", false)
	if result == nil {
		t.Fatal("kỳ trước khác 0 phải có kết quả")
	}
	if result.Value != 20 || !result.IsPositive || result.Type != dashdto.ComparisonTypePercent {
		t.Errorf("so sánh percent sai: %+v", result)
	}

	// Giảm: value là trị tuyệt đối, isPositive false
	result = CalculateComparison(800, 1000, "so với kỳ trước", false)
	if result.Value != 20 || result.IsPositive {
		t.Errorf("so sánh giảm sai: %+v", result)
	}
}

func TestCalculateComparison_Points(t *testing.T) {
	// Tỷ lệ 0-1: chênh lệch tính theo điểm phần trăm
	result := CalculateComparison(0.45, 0.40, "so với kỳ trước", true)
	if result == nil {
		t.Fatal("kỳ trước khác 0 phải có kết quả")
	}
	if result.Type != dashdto.ComparisonTypePoints {
		t.Errorf("Type sai: %q", result.Type)
	}
	// (0.45 - 0.40) * 100 = 5 điểm
	if diff := result.Value - 5; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Value sai: %v (kỳ vọng 5 điểm)", result.Value)
	}
	if !result.IsPositive {
		t.Error("tăng điểm phải là IsPositive")
	}
}
