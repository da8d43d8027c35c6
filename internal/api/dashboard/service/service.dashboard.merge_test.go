// Package dashsvc - Test merge engine: hợp nhất booked calls và sale submissions.
package dashsvc

import (
	"reflect"
	"testing"

	dashmodels "medspa_dashboard/internal/api/dashboard/models"
	sheetsmodels "medspa_dashboard/internal/api/sheets/models"
)

func TestNormalizeNameForMatching(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"Jane Doe", "jane doe"},
		{"  JANE   DOE  ", "jane doe"},
		{"jane\tdoe", "jane doe"},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeNameForMatching(c.input); got != c.expected {
			t.Errorf("NormalizeNameForMatching(%q) = %q, kỳ vọng %q", c.input, got, c.expected)
		}
	}
}

func TestMergeClientData_RoundTrip(t *testing.T) {
	// Cùng một client xuất hiện ở cả hai nguồn với tên viết khác nhau
	rawData := &sheetsmodels.RawSheetsData{
		BookedCalls: []sheetsmodels.BookedCallRow{
			{
				ClientName:   "Jane Doe",
				BookingDate:  "2025-06-30",
				CallDate:     "2025-06-30",
				CallStatus:   sheetsmodels.CallStatusAttended,
				ClosedStatus: sheetsmodels.ClosedStatusClosed,
				Closer:       "Hannah",
			},
		},
		SaleSubmissions: []sheetsmodels.SaleSubmissionRow{
			{
				ClientName:    "  jane   DOE ",
				ClientEmail:   "jane@example.com",
				BookingDate:   "2025-06-30",
				PurchaseDate:  "2025-07-03",
				Price:         5000,
				CashCollected: 5000,
				Balance:       0,
				Closer:        "Hannah",
				Currency:      "USD",
			},
		},
	}

	clients := MergeClientData(rawData)
	if len(clients) != 1 {
		t.Fatalf("kỳ vọng 1 client sau merge, nhận %d", len(clients))
	}

	client := clients[0]
	if client.Name != "Jane Doe" {
		t.Errorf("Name sai: %q (ưu tiên tên phía booked call)", client.Name)
	}
	if client.Email != "jane@example.com" {
		t.Errorf("Email sai: %q", client.Email)
	}
	if client.JourneyStage != dashmodels.StagePaid {
		t.Errorf("JourneyStage sai: %q (cashCollected > 0 phải là paid)", client.JourneyStage)
	}
	if !client.IsConverted {
		t.Error("IsConverted phải là true với stage paid")
	}
	if client.Balance != 0 {
		t.Errorf("Balance sai: %v", client.Balance)
	}
	if client.DaysToClose == nil || *client.DaysToClose != 3 {
		t.Errorf("DaysToClose sai: %v (kỳ vọng 3)", client.DaysToClose)
	}
}

func TestMergeClientData_DisjointSources(t *testing.T) {
	rawData := &sheetsmodels.RawSheetsData{
		BookedCalls: []sheetsmodels.BookedCallRow{
			{
				ClientName:   "John Smith",
				BookingDate:  "2025-06-02",
				CallDate:     "2025-06-02",
				CallStatus:   sheetsmodels.CallStatusNoShow,
				ClosedStatus: sheetsmodels.ClosedStatusNotClosed,
			},
		},
		SaleSubmissions: []sheetsmodels.SaleSubmissionRow{
			{
				ClientName:    "Mary Major",
				PurchaseDate:  "2025-06-10",
				Price:         3000,
				CashCollected: 1000,
				Balance:       2000,
			},
		},
	}

	clients := MergeClientData(rawData)
	if len(clients) != 2 {
		t.Fatalf("kỳ vọng 2 client, nhận %d", len(clients))
	}

	var callOnly, saleOnly *dashmodels.Client
	for i := range clients {
		switch clients[i].Name {
		case "John Smith":
			callOnly = &clients[i]
		case "Mary Major":
			saleOnly = &clients[i]
		}
	}
	if callOnly == nil || saleOnly == nil {
		t.Fatal("thiếu client sau merge")
	}

	if callOnly.JourneyStage != dashmodels.StageBooked {
		t.Errorf("client chỉ có booked call phải ở stage booked, nhận %q", callOnly.JourneyStage)
	}
	if callOnly.ActualPrice != 0 {
		t.Errorf("client chưa bán phải có ActualPrice = 0, nhận %v", callOnly.ActualPrice)
	}
	if callOnly.DaysToClose != nil {
		t.Error("DaysToClose phải là nil khi thiếu purchase date")
	}

	if saleOnly.JourneyStage != dashmodels.StagePaid {
		t.Errorf("client có cashCollected > 0 phải ở stage paid, nhận %q", saleOnly.JourneyStage)
	}
	if saleOnly.Currency != "USD" {
		t.Errorf("Currency mặc định phải là USD, nhận %q", saleOnly.Currency)
	}
}

func TestMergeClientData_DuplicateKeepsLatest(t *testing.T) {
	rawData := &sheetsmodels.RawSheetsData{
		BookedCalls: []sheetsmodels.BookedCallRow{
			{ClientName: "Jane Doe", CallDate: "2025-06-01", CallStatus: sheetsmodels.CallStatusNoShow},
			{ClientName: "Jane Doe", CallDate: "2025-06-15", CallStatus: sheetsmodels.CallStatusAttended},
		},
		SaleSubmissions: []sheetsmodels.SaleSubmissionRow{
			{ClientName: "Jane Doe", PurchaseDate: "2025-06-20", Price: 1000},
			{ClientName: "Jane Doe", PurchaseDate: "2025-06-25", Price: 2000},
		},
	}

	clients := MergeClientData(rawData)
	if len(clients) != 1 {
		t.Fatalf("kỳ vọng 1 client, nhận %d", len(clients))
	}
	client := clients[0]
	if client.CallDate != "2025-06-15" {
		t.Errorf("phải giữ booked call có callDate lớn hơn, nhận %q", client.CallDate)
	}
	if client.PurchaseDate != "2025-06-25" || client.ActualPrice != 2000 {
		t.Errorf("phải giữ sale có purchaseDate lớn hơn, nhận %q / %v", client.PurchaseDate, client.ActualPrice)
	}
}

func TestMergeClientData_SkipNamelessRows(t *testing.T) {
	rawData := &sheetsmodels.RawSheetsData{
		BookedCalls: []sheetsmodels.BookedCallRow{
			{ClientName: "", CallDate: "2025-06-01"},
			{ClientName: "   ", CallDate: "2025-06-02"},
			{ClientName: "Jane Doe", CallDate: "2025-06-03"},
		},
		SaleSubmissions: []sheetsmodels.SaleSubmissionRow{
			{ClientName: "", Price: 500},
		},
	}

	clients := MergeClientData(rawData)
	if len(clients) != 1 {
		t.Fatalf("dòng không có tên phải bị bỏ qua, kỳ vọng 1 client, nhận %d", len(clients))
	}
}

func TestMergeClientData_SortDescByRepresentativeDate(t *testing.T) {
	rawData := &sheetsmodels.RawSheetsData{
		BookedCalls: []sheetsmodels.BookedCallRow{
			{ClientName: "Old Client", BookingDate: "2025-05-01", CallDate: "2025-05-01"},
			{ClientName: "New Client", BookingDate: "2025-07-01", CallDate: "2025-07-01"},
			{ClientName: "No Date Client"},
		},
		SaleSubmissions: []sheetsmodels.SaleSubmissionRow{
			{ClientName: "Sale Client", PurchaseDate: "2025-06-01"},
		},
	}

	clients := MergeClientData(rawData)
	if len(clients) != 4 {
		t.Fatalf("kỳ vọng 4 client, nhận %d", len(clients))
	}
	expected := []string{"New Client", "Sale Client", "Old Client", "No Date Client"}
	for i, name := range expected {
		if clients[i].Name != name {
			t.Errorf("vị trí %d sai: %q, kỳ vọng %q", i, clients[i].Name, name)
		}
	}
}

func TestMergeClientData_Deterministic(t *testing.T) {
	rawData := &sheetsmodels.RawSheetsData{
		BookedCalls: []sheetsmodels.BookedCallRow{
			{ClientName: "A A", BookingDate: "2025-06-01"},
			{ClientName: "B B", BookingDate: "2025-06-01"},
			{ClientName: "C C", BookingDate: "2025-06-01"},
			{ClientName: "D D", BookingDate: "2025-06-01"},
		},
		SaleSubmissions: []sheetsmodels.SaleSubmissionRow{
			{ClientName: "E E", PurchaseDate: "2025-06-01"},
			{ClientName: "F F", PurchaseDate: "2025-06-01"},
		},
	}

	first := MergeClientData(rawData)
	for run := 0; run < 10; run++ {
		if again := MergeClientData(rawData); !reflect.DeepEqual(first, again) {
			t.Fatal("MergeClientData phải deterministic trên cùng input")
		}
	}
}

func TestDetermineJourneyStage_Precedence(t *testing.T) {
	// Paid thắng mọi trạng thái khác
	call := &sheetsmodels.BookedCallRow{
		CallStatus:   sheetsmodels.CallStatusNoShow,
		ClosedStatus: sheetsmodels.ClosedStatusNotClosed,
	}
	sale := &sheetsmodels.SaleSubmissionRow{CashCollected: 100}
	if got := DetermineJourneyStage(call, sale); got != dashmodels.StagePaid {
		t.Errorf("cashCollected > 0 phải là paid, nhận %q", got)
	}

	// Closed khi chưa thu tiền
	call = &sheetsmodels.BookedCallRow{ClosedStatus: sheetsmodels.ClosedStatusClosed}
	sale = &sheetsmodels.SaleSubmissionRow{CashCollected: 0}
	if got := DetermineJourneyStage(call, sale); got != dashmodels.StageClosed {
		t.Errorf("closedStatus Closed phải là closed, nhận %q", got)
	}

	// Attended khi chưa chốt
	call = &sheetsmodels.BookedCallRow{
		CallStatus:   sheetsmodels.CallStatusAttended,
		ClosedStatus: sheetsmodels.ClosedStatusPending,
	}
	if got := DetermineJourneyStage(call, nil); got != dashmodels.StageAttended {
		t.Errorf("callStatus Attended phải là attended, nhận %q", got)
	}

	// Mặc định là booked
	if got := DetermineJourneyStage(&sheetsmodels.BookedCallRow{}, nil); got != dashmodels.StageBooked {
		t.Errorf("mặc định phải là booked, nhận %q", got)
	}
}

func TestCalculateDaysToClose_InvalidDates(t *testing.T) {
	call := &sheetsmodels.BookedCallRow{BookingDate: "not-a-date"}
	sale := &sheetsmodels.SaleSubmissionRow{PurchaseDate: "2025-06-01"}
	if got := calculateDaysToClose(call, sale); got != nil {
		t.Errorf("ngày không parse được phải trả về nil, nhận %v", *got)
	}
	if got := calculateDaysToClose(nil, sale); got != nil {
		t.Errorf("thiếu booked call phải trả về nil, nhận %v", *got)
	}
	if got := calculateDaysToClose(call, nil); got != nil {
		t.Errorf("thiếu sale phải trả về nil, nhận %v", *got)
	}
}
