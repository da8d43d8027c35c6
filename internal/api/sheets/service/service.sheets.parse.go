// Package sheetsvc - Parse dữ liệu thô từ spreadsheet thành các row model.
// Hai nguồn (Google Sheets và Excel local) trả về cùng dạng [][]string nên dùng chung parser.
package sheetsvc

import (
	"fmt"
	"strings"

	sheetsmodels "medspa_dashboard/internal/api/sheets/models"
	"medspa_dashboard/internal/utility"
	"medspa_dashboard/internal/logger"
)

// bookedCallsColumns là vị trí các cột trong sheet booked calls.
// Giá trị -1 nghĩa là cột không tồn tại trong sheet.
type bookedCallsColumns struct {
	FirstName       int
	LastName        int
	DateOfCall      int
	PackagePurchase int
	ExpectedPrice   int
	ClosedStatus    int
	CallStatus      int
	Reschedules     int
	Closer          int
	Currency        int
	Vibe            int
	Objection       int
	LastContact     int
	LastContactNotes int
	City            int
	State           int
}

// salesColumns là vị trí các cột trong sheet sale submissions.
type salesColumns struct {
	FirstName          int
	LastName           int
	ClientEmail        int
	Phone              int
	AdmissionsCallDate int
	PurchaseDate       int
	Program            int
	Price              int
	CashCollected      int
	Currency           int
	Balance            int
	PaymentSource      int
	SalesRep           int
	Setter             int
	PaymentStatus      int
}

// cellAt lấy giá trị ô tại index, trả về rỗng nếu index âm hoặc ngoài row
func cellAt(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}

// detectBookedCallsColumns dò vị trí cột từ header row của sheet booked calls.
// Header trên sheet do người nhập tay nên so khớp theo tên cột lowercase.
// Trả về nil nếu thiếu cột bắt buộc (first name, last name).
func detectBookedCallsColumns(headers []string) *bookedCallsColumns {
	mapping := &bookedCallsColumns{
		FirstName: -1, LastName: -1, DateOfCall: -1, PackagePurchase: -1,
		ExpectedPrice: -1, ClosedStatus: -1, CallStatus: -1, Reschedules: -1,
		Closer: -1, Currency: -1, Vibe: -1, Objection: -1,
		LastContact: -1, LastContactNotes: -1, City: -1, State: -1,
	}

	for index, header := range headers {
		h := strings.ToLower(strings.TrimSpace(header))
		switch {
		case h == "client first name":
			mapping.FirstName = index
		case h == "client last name":
			mapping.LastName = index
		case h == "date of call":
			mapping.DateOfCall = index
		case h == "package/purchase":
			mapping.PackagePurchase = index
		case h == "expected price":
			mapping.ExpectedPrice = index
		case h == "closed?":
			mapping.ClosedStatus = index
		case h == "call status":
			mapping.CallStatus = index
		case strings.Contains(h, "how many reschedules"):
			mapping.Reschedules = index
		case h == "closer?" || h == "closer":
			mapping.Closer = index
		case h == "cad/usd":
			mapping.Currency = index
		case h == "vibe":
			mapping.Vibe = index
		case h == "objection":
			mapping.Objection = index
		case h == "last contact" || h == "last contact date":
			mapping.LastContact = index
		case h == "last contact notes":
			mapping.LastContactNotes = index
		case h == "city":
			mapping.City = index
		case h == "state" || h == "state/province" || h == "province":
			mapping.State = index
		}
	}

	// Validate các cột bắt buộc
	if mapping.FirstName < 0 || mapping.LastName < 0 {
		return nil
	}
	return mapping
}

// detectSalesColumns dò vị trí cột từ header row của sheet sale submissions.
// Header của form response có thể chứa xuống dòng nên thay \n bằng khoảng trắng trước khi so khớp.
func detectSalesColumns(headers []string) *salesColumns {
	mapping := &salesColumns{
		FirstName: -1, LastName: -1, ClientEmail: -1, Phone: -1,
		AdmissionsCallDate: -1, PurchaseDate: -1, Program: -1, Price: -1,
		CashCollected: -1, Currency: -1, Balance: -1, PaymentSource: -1,
		SalesRep: -1, Setter: -1, PaymentStatus: -1,
	}

	for index, header := range headers {
		h := strings.ToLower(strings.TrimSpace(header))
		h = strings.ReplaceAll(h, "\n", " ")
		switch {
		case h == "client first name":
			mapping.FirstName = index
		case strings.Contains(h, "client last name"):
			mapping.LastName = index
		case strings.Contains(h, "client email"):
			mapping.ClientEmail = index
		case h == "phone number":
			mapping.Phone = index
		case h == "date of admissions call":
			mapping.AdmissionsCallDate = index
		case strings.Contains(h, "date of purchase") || strings.Contains(h, "sign-up"):
			mapping.PurchaseDate = index
		case strings.Contains(h, "program selected"):
			mapping.Program = index
		case strings.Contains(h, "purchase price"):
			mapping.Price = index
		case h == "cash collected":
			mapping.CashCollected = index
		case h == "cad/usd":
			mapping.Currency = index
		case strings.Contains(h, "balance remaining"):
			mapping.Balance = index
		case h == "payment source":
			mapping.PaymentSource = index
		case h == "sales rep":
			mapping.SalesRep = index
		case h == "setter":
			mapping.Setter = index
		case h == "payment status":
			mapping.PaymentStatus = index
		}
	}

	// Validate các cột bắt buộc
	if mapping.FirstName < 0 || mapping.LastName < 0 {
		return nil
	}
	return mapping
}

// mapClosedStatus chuẩn hóa giá trị cột "Closed?" về ClosedStatus* constants
func mapClosedStatus(raw string) string {
	lower := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(lower, "yes") || lower == "closed":
		return sheetsmodels.ClosedStatusClosed
	case strings.Contains(lower, "no") || lower == "not closed":
		return sheetsmodels.ClosedStatusNotClosed
	default:
		return sheetsmodels.ClosedStatusPending
	}
}

// mapCallStatus chuẩn hóa giá trị cột "Call Status" về CallStatus* constants
func mapCallStatus(raw string) string {
	lower := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(lower, "attended") || strings.Contains(lower, "yes"):
		return sheetsmodels.CallStatusAttended
	case strings.Contains(lower, "no show") || strings.Contains(lower, "no-show"):
		return sheetsmodels.CallStatusNoShow
	case strings.Contains(lower, "reschedule"):
		return sheetsmodels.CallStatusRescheduled
	case strings.Contains(lower, "cancel"):
		return sheetsmodels.CallStatusCancelled
	default:
		return sheetsmodels.CallStatusScheduled
	}
}

// mapVibe chuẩn hóa cột "Vibe" về Vibe* constants, rỗng nếu không khớp
func mapVibe(raw string) string {
	lower := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case lower == "hot":
		return sheetsmodels.VibeHot
	case lower == "warm":
		return sheetsmodels.VibeWarm
	case lower == "cold":
		return sheetsmodels.VibeCold
	case strings.Contains(lower, "fence"):
		return sheetsmodels.VibeOnFence
	default:
		return ""
	}
}

// mapObjection chuẩn hóa cột "Objection" về Objection* constants.
// Giá trị không nằm trong danh sách chuẩn nhưng khác rỗng được gom vào Other.
func mapObjection(raw string) string {
	lower := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case lower == "":
		return ""
	case lower == "price":
		return sheetsmodels.ObjectionPrice
	case lower == "timing":
		return sheetsmodels.ObjectionTiming
	case lower == "spouse":
		return sheetsmodels.ObjectionSpouse
	case lower == "thinking":
		return sheetsmodels.ObjectionThinking
	default:
		return sheetsmodels.ObjectionOther
	}
}

// parseBookedCallRow parse một dòng dữ liệu booked call. Trả về nil với dòng
// thiếu cả first name lẫn last name (dòng trống hoặc dòng ghi chú).
func parseBookedCallRow(row []string, mapping *bookedCallsColumns, yearHint int) *sheetsmodels.BookedCallRow {
	firstName := cellAt(row, mapping.FirstName)
	lastName := cellAt(row, mapping.LastName)
	if firstName == "" && lastName == "" {
		return nil
	}

	callDate := utility.ParseSheetDate(cellAt(row, mapping.DateOfCall), yearHint)
	reschedules := cellAt(row, mapping.Reschedules)

	currency := cellAt(row, mapping.Currency)
	if mapping.Currency < 0 {
		currency = "USD"
	}

	notes := ""
	if reschedules != "" {
		notes = fmt.Sprintf("Reschedules: %s", reschedules)
	}

	return &sheetsmodels.BookedCallRow{
		ClientName:       utility.CombineNames(firstName, lastName),
		ClientEmail:      "",
		ClientPhone:      "",
		BookingDate:      callDate,
		CallDate:         callDate,
		CallStatus:       mapCallStatus(cellAt(row, mapping.CallStatus)),
		Closer:           cellAt(row, mapping.Closer),
		ExpectedPackage:  cellAt(row, mapping.PackagePurchase),
		ExpectedPrice:    utility.ParsePrice(cellAt(row, mapping.ExpectedPrice)),
		ClosedStatus:     mapClosedStatus(cellAt(row, mapping.ClosedStatus)),
		Notes:            notes,
		Currency:         currency,
		Setter:           "",
		Vibe:             mapVibe(cellAt(row, mapping.Vibe)),
		Objection:        mapObjection(cellAt(row, mapping.Objection)),
		LastContact:      utility.ParseSheetDate(cellAt(row, mapping.LastContact), yearHint),
		LastContactNotes: cellAt(row, mapping.LastContactNotes),
		City:             cellAt(row, mapping.City),
		State:            cellAt(row, mapping.State),
	}
}

// parseSalesRow parse một dòng dữ liệu sale submission.
func parseSalesRow(row []string, mapping *salesColumns) *sheetsmodels.SaleSubmissionRow {
	firstName := cellAt(row, mapping.FirstName)
	lastName := cellAt(row, mapping.LastName)
	if firstName == "" && lastName == "" {
		return nil
	}

	currency := cellAt(row, mapping.Currency)
	if currency == "" {
		currency = "USD"
	}

	return &sheetsmodels.SaleSubmissionRow{
		ClientEmail:   strings.ToLower(cellAt(row, mapping.ClientEmail)),
		ClientName:    utility.CombineNames(firstName, lastName),
		ClientPhone:   cellAt(row, mapping.Phone),
		BookingDate:   utility.ParseSheetDate(cellAt(row, mapping.AdmissionsCallDate), 2025),
		PurchaseDate:  utility.ParseSheetDate(cellAt(row, mapping.PurchaseDate), 2025),
		Program:       cellAt(row, mapping.Program),
		Price:         utility.ParsePrice(cellAt(row, mapping.Price)),
		CashCollected: utility.ParsePrice(cellAt(row, mapping.CashCollected)),
		Balance:       utility.ParsePrice(cellAt(row, mapping.Balance)),
		PaymentMethod: cellAt(row, mapping.PaymentSource),
		Notes:         "",
		Closer:        cellAt(row, mapping.SalesRep),
		Setter:        cellAt(row, mapping.Setter),
		Currency:      currency,
		PaymentStatus: cellAt(row, mapping.PaymentStatus),
	}
}

// ParseBookedCallsSheet parse toàn bộ sheet booked calls thành danh sách row.
// Header có thể nằm ở dòng 0 hoặc dòng 1 tùy tab.
func ParseBookedCallsSheet(rows [][]string, yearHint int) []sheetsmodels.BookedCallRow {
	if len(rows) < 2 {
		return nil
	}

	// Dò header row (có thể là dòng 0 hoặc dòng 1)
	headerRowIndex := 0
	mapping := detectBookedCallsColumns(rows[0])
	if mapping == nil && len(rows) > 1 {
		mapping = detectBookedCallsColumns(rows[1])
		if mapping != nil {
			headerRowIndex = 1
		}
	}
	if mapping == nil {
		return nil
	}

	var results []sheetsmodels.BookedCallRow
	skipped := 0
	for i := headerRowIndex + 1; i < len(rows); i++ {
		if len(rows[i]) == 0 {
			continue
		}
		parsed := parseBookedCallRow(rows[i], mapping, yearHint)
		if parsed == nil {
			skipped++
			continue
		}
		results = append(results, *parsed)
	}
	if skipped > 0 {
		logger.GetAppLogger().WithField("skipped", skipped).Debug("Bỏ qua các dòng booked call thiếu tên client")
	}
	return results
}

// ParseSalesSheet parse toàn bộ sheet sale submissions thành danh sách row.
func ParseSalesSheet(rows [][]string) []sheetsmodels.SaleSubmissionRow {
	if len(rows) < 2 {
		return nil
	}

	mapping := detectSalesColumns(rows[0])
	if mapping == nil {
		return nil
	}

	var results []sheetsmodels.SaleSubmissionRow
	skipped := 0
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) == 0 {
			continue
		}
		parsed := parseSalesRow(rows[i], mapping)
		if parsed == nil {
			skipped++
			continue
		}
		results = append(results, *parsed)
	}
	if skipped > 0 {
		logger.GetAppLogger().WithField("skipped", skipped).Debug("Bỏ qua các dòng sale submission thiếu tên client")
	}
	return results
}
