// Package dashsvc - Test trend engine month-over-month.
package dashsvc

import (
	"testing"

	dashdto "medspa_dashboard/internal/api/dashboard/dto"
)

func TestCalculateMonthOverMonthTrends_NotEnoughData(t *testing.T) {
	trends := CalculateMonthOverMonthTrends(nil)
	if trends.Revenue != nil || trends.Deals != nil || trends.AvgDealSize != nil || trends.CashCollected != nil {
		t.Error("không có dữ liệu: mọi trend phải là nil")
	}

	trends = CalculateMonthOverMonthTrends([]dashdto.MonthlyRevenue{
		{Month: "2025-06", Revenue: 1000, Deals: 1},
	})
	if trends.Revenue != nil {
		t.Error("một tháng dữ liệu chưa đủ để so sánh, trend phải là nil")
	}
}

func TestCalculateMonthOverMonthTrends_Basic(t *testing.T) {
	months := []dashdto.MonthlyRevenue{
		{Month: "2025-05", Revenue: 8000, CashCollected: 4000, Deals: 4},
		{Month: "2025-06", Revenue: 10000, CashCollected: 6000, Deals: 4},
	}

	trends := CalculateMonthOverMonthTrends(months)
	if trends.Revenue == nil || trends.Deals == nil || trends.AvgDealSize == nil || trends.CashCollected == nil {
		t.Fatal("đủ 2 tháng dữ liệu: mọi trend phải khác nil")
	}
	if trends.Revenue.Value != 25 || !trends.Revenue.IsPositive {
		t.Errorf("trend revenue sai: %+v (kỳ vọng +25%%)", trends.Revenue)
	}
	if trends.Deals.Value != 0 || !trends.Deals.IsPositive {
		t.Errorf("trend deals sai: %+v (không đổi phải là +0)", trends.Deals)
	}
	if trends.AvgDealSize.Value != 25 {
		t.Errorf("trend avgDealSize sai: %+v", trends.AvgDealSize)
	}
	if trends.CashCollected.Value != 50 {
		t.Errorf("trend cashCollected sai: %+v", trends.CashCollected)
	}
}

func TestCalculateMonthOverMonthTrends_PreviousZero(t *testing.T) {
	months := []dashdto.MonthlyRevenue{
		{Month: "2025-05", Revenue: 1000, CashCollected: 0, Deals: 1},
		{Month: "2025-06", Revenue: 2000, CashCollected: 500, Deals: 2},
	}

	trends := CalculateMonthOverMonthTrends(months)
	// Kỳ trước bằng 0 và kỳ này > 0: quy ước là +100%
	if trends.CashCollected == nil || trends.CashCollected.Value != 100 || !trends.CashCollected.IsPositive {
		t.Errorf("kỳ trước 0, kỳ này > 0 phải là +100%%: %+v", trends.CashCollected)
	}
}

func TestCalculateMonthOverMonthTrends_Rounding(t *testing.T) {
	months := []dashdto.MonthlyRevenue{
		{Month: "2025-05", Revenue: 3000, Deals: 3},
		{Month: "2025-06", Revenue: 4000, Deals: 3},
	}

	trends := CalculateMonthOverMonthTrends(months)
	// 1000/3000 = 33.333...% làm tròn 1 chữ số thập phân
	if trends.Revenue.Value != 33.3 {
		t.Errorf("trend phải làm tròn 1 chữ số thập phân: %v", trends.Revenue.Value)
	}
}
