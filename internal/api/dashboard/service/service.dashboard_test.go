// Package dashsvc - Test orchestration: dựng dashboard theo filter state và
// thu hẹp dữ liệu theo closer.
package dashsvc

import (
	"testing"
	"time"

	dashdto "medspa_dashboard/internal/api/dashboard/dto"
	dashmodels "medspa_dashboard/internal/api/dashboard/models"
)

func testService() *DashboardService {
	return NewDashboardServiceWithClock(time.UTC, func() time.Time { return fixedNow })
}

func testClients() []dashmodels.Client {
	return []dashmodels.Client{
		{Name: "A A", Closer: "Hannah", BookingDate: "2024-03-10", CallStatus: "Attended", JourneyStage: dashmodels.StagePaid, IsConverted: true, ActualPrice: 5000, CashCollected: 5000, PurchaseDate: "2024-03-12"},
		{Name: "B B", Closer: "Hannah", BookingDate: "2024-03-11", CallStatus: "Attended", JourneyStage: dashmodels.StageAttended},
		{Name: "C C", Closer: "Michael", BookingDate: "2024-02-10", CallStatus: "Attended", JourneyStage: dashmodels.StageClosed, IsConverted: true, ActualPrice: 2000, PurchaseDate: "2024-02-12"},
		{Name: "D D", Closer: "Michael", BookingDate: "2024-03-05", CallStatus: "No Show", JourneyStage: dashmodels.StageBooked},
	}
}

func TestBuildDashboard_AllTime(t *testing.T) {
	service := testService()
	meta := dashdto.DashboardMeta{DataSource: "excel", LastFetched: "2024-03-15T10:00:00Z"}

	data := service.BuildDashboard(testClients(), dashdto.DateFilterState{RangeType: dashdto.RangeAll}, meta)

	if len(data.Clients) != 4 {
		t.Errorf("all time phải giữ đủ client, nhận %d", len(data.Clients))
	}
	if data.Comparisons != nil {
		t.Error("all time không có kỳ so sánh, Comparisons phải là nil")
	}
	if data.Meta.DataSource != "excel" {
		t.Errorf("Meta phải được giữ nguyên: %+v", data.Meta)
	}
	if data.LastUpdated == "" {
		t.Error("LastUpdated phải được gắn")
	}
}

func TestBuildDashboard_FilteredCoherence(t *testing.T) {
	service := testService()

	// MTD từ 2024-03-15: chỉ còn client có representative date trong tháng 3
	data := service.BuildDashboard(testClients(), dashdto.DateFilterState{RangeType: dashdto.RangeMonthToDate}, dashdto.DashboardMeta{})

	if len(data.Clients) != 3 {
		t.Fatalf("mtd phải còn 3 client của tháng 3, nhận %d", len(data.Clients))
	}
	// Mọi chỉ số phải tính trên cùng tập đã lọc
	if data.KPIs.TotalBooked != 3 {
		t.Errorf("KPI phải tính trên tập đã lọc: TotalBooked = %d", data.KPIs.TotalBooked)
	}
	if data.FunnelStages[0].Count != 3 {
		t.Errorf("funnel phải tính trên tập đã lọc: Booked = %d", data.FunnelStages[0].Count)
	}
	if data.RevenueData.TotalRevenue != 5000 {
		t.Errorf("revenueData phải tính trên tập đã lọc: %v", data.RevenueData.TotalRevenue)
	}
}

func TestBuildDashboard_ComparisonAgainstPreviousPeriod(t *testing.T) {
	service := testService()

	// MTD hiện tại có revenue 5000; kỳ so sánh (1-15/2) có deal 2000 của C C
	data := service.BuildDashboard(testClients(), dashdto.DateFilterState{RangeType: dashdto.RangeMonthToDate}, dashdto.DashboardMeta{})

	if data.Comparisons == nil {
		t.Fatal("mtd phải có Comparisons")
	}
	comparison := data.Comparisons.TotalRevenue
	if comparison == nil {
		t.Fatal("kỳ trước có doanh thu, TotalRevenue comparison phải khác nil")
	}
	// (5000 - 2000) / 2000 * 100 = 150%
	if comparison.Value != 150 || !comparison.IsPositive {
		t.Errorf("comparison TotalRevenue sai: %+v", comparison)
	}

	// Kỳ trước không thu được tiền mặt nào: comparison bị ẩn
	if data.Comparisons.CashCollected != nil {
		t.Errorf("kỳ trước cashCollected = 0 phải ẩn comparison: %+v", data.Comparisons.CashCollected)
	}
}

func TestFilterDataForCloser(t *testing.T) {
	service := testService()
	data := service.BuildDashboard(testClients(), dashdto.DateFilterState{RangeType: dashdto.RangeAll}, dashdto.DashboardMeta{})

	scoped := service.FilterDataForCloser(data, "Hannah")

	if len(scoped.Clients) != 2 {
		t.Fatalf("chỉ còn client của Hannah, nhận %d", len(scoped.Clients))
	}
	for _, client := range scoped.Clients {
		if client.Closer != "Hannah" {
			t.Errorf("client %q không thuộc Hannah", client.Name)
		}
	}
	if len(scoped.CloserStats) != 1 || scoped.CloserStats[0].Name != "Hannah" {
		t.Errorf("closerStats phải chỉ còn Hannah: %+v", scoped.CloserStats)
	}

	// Funnel, revenueData và KPI tính lại trên tập đã thu hẹp
	if scoped.KPIs.TotalBooked != 2 {
		t.Errorf("KPI phải tính lại theo closer: TotalBooked = %d", scoped.KPIs.TotalBooked)
	}
	if scoped.FunnelStages[0].Count != 2 {
		t.Errorf("funnel phải tính lại theo closer: Booked = %d", scoped.FunnelStages[0].Count)
	}
	if scoped.RevenueData.TotalRevenue != 5000 {
		t.Errorf("revenueData phải tính lại theo closer: %v", scoped.RevenueData.TotalRevenue)
	}

	// MonthlyRevenue giữ nguyên toàn cục
	if len(scoped.MonthlyRevenue) != len(data.MonthlyRevenue) {
		t.Error("monthlyRevenue phải giữ nguyên khi thu hẹp theo closer")
	}
}

func TestFilterDataForCloser_EmptyCloser(t *testing.T) {
	service := testService()
	data := service.BuildDashboard(testClients(), dashdto.DateFilterState{RangeType: dashdto.RangeAll}, dashdto.DashboardMeta{})

	scoped := service.FilterDataForCloser(data, "")
	if len(scoped.Clients) != len(data.Clients) {
		t.Error("closer rỗng phải giữ nguyên dữ liệu")
	}
}
