// Package sheetsvc - Test parse sheet booked calls và sale submissions.
package sheetsvc

import (
	"testing"

	sheetsmodels "medspa_dashboard/internal/api/sheets/models"
)

func bookedCallsHeader() []string {
	return []string{
		"Client First Name", "Client Last Name", "Date of Call", "Package/Purchase",
		"Expected Price", "Closed?", "Call Status", "How many reschedules?", "Closer?", "CAD/USD",
	}
}

func TestParseBookedCallsSheet_HeaderRow0(t *testing.T) {
	rows := [][]string{
		bookedCallsHeader(),
		{"Jane", "Doe", "June 30th", "Package A", "$5,000", "Yes", "Attended", "", "Hannah", "USD"},
	}
	calls := ParseBookedCallsSheet(rows, 2025)
	if len(calls) != 1 {
		t.Fatalf("kỳ vọng 1 booked call, nhận %d", len(calls))
	}
	call := calls[0]
	if call.ClientName != "Jane Doe" {
		t.Errorf("ClientName sai: %q", call.ClientName)
	}
	if call.CallDate != "2025-06-30" {
		t.Errorf("CallDate sai: %q (kỳ vọng 2025-06-30)", call.CallDate)
	}
	if call.ExpectedPrice != 5000 {
		t.Errorf("ExpectedPrice sai: %v", call.ExpectedPrice)
	}
	if call.ClosedStatus != sheetsmodels.ClosedStatusClosed {
		t.Errorf("ClosedStatus sai: %q", call.ClosedStatus)
	}
	if call.CallStatus != sheetsmodels.CallStatusAttended {
		t.Errorf("CallStatus sai: %q", call.CallStatus)
	}
	if call.Closer != "Hannah" {
		t.Errorf("Closer sai: %q", call.Closer)
	}
}

func TestParseBookedCallsSheet_HeaderRow1(t *testing.T) {
	// Một số tab có dòng tiêu đề trang trí ở dòng 0, header thật ở dòng 1
	rows := [][]string{
		{"BOOKED CALLS - JUNE"},
		bookedCallsHeader(),
		{"John", "Smith", "June 2nd", "", "", "No", "No Show", "2", "Michael", "CAD"},
	}
	calls := ParseBookedCallsSheet(rows, 2025)
	if len(calls) != 1 {
		t.Fatalf("kỳ vọng 1 booked call, nhận %d", len(calls))
	}
	call := calls[0]
	if call.CallStatus != sheetsmodels.CallStatusNoShow {
		t.Errorf("CallStatus sai: %q", call.CallStatus)
	}
	if call.ClosedStatus != sheetsmodels.ClosedStatusNotClosed {
		t.Errorf("ClosedStatus sai: %q", call.ClosedStatus)
	}
	if call.Notes != "Reschedules: 2" {
		t.Errorf("Notes sai: %q", call.Notes)
	}
	if call.Currency != "CAD" {
		t.Errorf("Currency sai: %q", call.Currency)
	}
}

func TestParseBookedCallsSheet_SkipNamelessRows(t *testing.T) {
	rows := [][]string{
		bookedCallsHeader(),
		{"", "", "June 5th", "", "", "", "Attended", "", "", ""},
		{"Jane", "", "June 6th", "", "", "", "Booked", "", "", ""},
	}
	calls := ParseBookedCallsSheet(rows, 2025)
	if len(calls) != 1 {
		t.Fatalf("dòng thiếu cả first lẫn last name phải bị bỏ qua; nhận %d rows", len(calls))
	}
	if calls[0].ClientName != "Jane" {
		t.Errorf("ClientName sai: %q", calls[0].ClientName)
	}
	if calls[0].CallStatus != sheetsmodels.CallStatusScheduled {
		t.Errorf("'Booked' phải map về Scheduled, nhận %q", calls[0].CallStatus)
	}
}

func TestParseBookedCallsSheet_MissingRequiredColumns(t *testing.T) {
	rows := [][]string{
		{"Something", "Else"},
		{"Jane", "Doe"},
	}
	if calls := ParseBookedCallsSheet(rows, 2025); len(calls) != 0 {
		t.Errorf("sheet không có cột bắt buộc phải trả về rỗng, nhận %d rows", len(calls))
	}
}

func TestParseBookedCallsSheet_YearHintFromTab(t *testing.T) {
	rows := [][]string{
		bookedCallsHeader(),
		{"Amy", "Lee", "January 5th", "", "", "", "Attended", "", "", ""},
	}
	calls := ParseBookedCallsSheet(rows, 2026)
	if len(calls) != 1 {
		t.Fatalf("kỳ vọng 1 booked call, nhận %d", len(calls))
	}
	if calls[0].CallDate != "2026-01-05" {
		t.Errorf("tab 'January 26' phải dùng năm 2026, nhận %q", calls[0].CallDate)
	}
}

func salesHeader() []string {
	return []string{
		"Client First Name", "Client Last Name", "Client Email", "Phone Number",
		"Date of Admissions Call", "Date of Purchase", "Program Selected", "Purchase Price",
		"Cash Collected", "CAD/USD", "Balance Remaining", "Payment Source", "Sales Rep", "Setter",
	}
}

func TestParseSalesSheet_BasicRow(t *testing.T) {
	rows := [][]string{
		salesHeader(),
		{"Jane", "Doe", "Jane.Doe@Example.com", "555-0100", "2025-06-30", "2025-07-02",
			"Program X", "$10,000", "$4,000", "USD", "$6,000", "Stripe", "Hannah", "Sara"},
	}
	sales := ParseSalesSheet(rows)
	if len(sales) != 1 {
		t.Fatalf("kỳ vọng 1 sale, nhận %d", len(sales))
	}
	sale := sales[0]
	if sale.ClientEmail != "jane.doe@example.com" {
		t.Errorf("ClientEmail phải lowercase, nhận %q", sale.ClientEmail)
	}
	if sale.Price != 10000 || sale.CashCollected != 4000 || sale.Balance != 6000 {
		t.Errorf("giá trị tiền sai: price=%v cash=%v balance=%v", sale.Price, sale.CashCollected, sale.Balance)
	}
	if sale.PurchaseDate != "2025-07-02" {
		t.Errorf("PurchaseDate sai: %q", sale.PurchaseDate)
	}
	if sale.Closer != "Hannah" || sale.Setter != "Sara" {
		t.Errorf("closer/setter sai: %q / %q", sale.Closer, sale.Setter)
	}
}

func TestParseSalesSheet_DefaultCurrency(t *testing.T) {
	rows := [][]string{
		salesHeader(),
		{"John", "Smith", "", "", "", "", "", "", "", "", "", "", "", ""},
	}
	sales := ParseSalesSheet(rows)
	if len(sales) != 1 {
		t.Fatalf("kỳ vọng 1 sale, nhận %d", len(sales))
	}
	if sales[0].Currency != "USD" {
		t.Errorf("currency rỗng phải mặc định USD, nhận %q", sales[0].Currency)
	}
	if sales[0].Price != 0 {
		t.Errorf("giá rỗng phải là 0, nhận %v", sales[0].Price)
	}
}

func TestMapObjection_UnknownValue(t *testing.T) {
	if got := mapObjection("Needs to ask manager"); got != sheetsmodels.ObjectionOther {
		t.Errorf("objection lạ phải gom về Other, nhận %q", got)
	}
	if got := mapObjection(""); got != "" {
		t.Errorf("objection rỗng phải giữ rỗng, nhận %q", got)
	}
}
