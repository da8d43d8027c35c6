// Package dashsvc - Merge engine: hợp nhất booked calls và sale submissions
// thành danh sách Client, mỗi client một entity theo tên đã chuẩn hóa.
package dashsvc

import (
	"sort"
	"time"

	dashmodels "medspa_dashboard/internal/api/dashboard/models"
	sheetsmodels "medspa_dashboard/internal/api/sheets/models"
	"medspa_dashboard/internal/utility"
)

// NormalizeNameForMatching chuẩn hóa tên client thành join key: lowercase,
// gộp whitespace, trim. Hai tên được coi là cùng một client khi và chỉ khi
// dạng chuẩn hóa của chúng bằng nhau.
func NormalizeNameForMatching(name string) string {
	return utility.NormalizeString(name)
}

// DetermineJourneyStage phân loại stage từ cặp (booked call, sale).
// Thứ tự kiểm tra cố định: paid > closed > attended > booked, trả về ngay khi khớp.
func DetermineJourneyStage(call *sheetsmodels.BookedCallRow, sale *sheetsmodels.SaleSubmissionRow) dashmodels.JourneyStage {
	if sale != nil && sale.CashCollected > 0 {
		return dashmodels.StagePaid
	}
	if call != nil && call.ClosedStatus == sheetsmodels.ClosedStatusClosed {
		return dashmodels.StageClosed
	}
	if call != nil && call.CallStatus == sheetsmodels.CallStatusAttended {
		return dashmodels.StageAttended
	}
	return dashmodels.StageBooked
}

// calculateDaysToClose tính số ngày từ booking date đến purchase date.
// Trả về nil khi thiếu một trong hai hoặc ngày không parse được.
func calculateDaysToClose(call *sheetsmodels.BookedCallRow, sale *sheetsmodels.SaleSubmissionRow) *int {
	if call == nil || call.BookingDate == "" || sale == nil || sale.PurchaseDate == "" {
		return nil
	}
	bookingDate, err := time.Parse("2006-01-02", call.BookingDate)
	if err != nil {
		return nil
	}
	purchaseDate, err := time.Parse("2006-01-02", sale.PurchaseDate)
	if err != nil {
		return nil
	}
	days := int(purchaseDate.Sub(bookingDate).Hours() / 24)
	return &days
}

// mergedPair giữ booked call và sale tốt nhất của một join key
type mergedPair struct {
	call *sheetsmodels.BookedCallRow
	sale *sheetsmodels.SaleSubmissionRow
}

// firstNonEmpty trả về chuỗi đầu tiên khác rỗng
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// MergeClientData hợp nhất dữ liệu thô thành danh sách Client.
// Dòng không có tên bị bỏ qua. Khi trùng key, giữ booked call có callDate lớn hơn
// và sale có purchaseDate lớn hơn (so sánh chuỗi đúng vì ngày là ISO YYYY-MM-DD).
// Kết quả sort giảm dần theo bookingDate ?? purchaseDate, ngày thiếu xếp cuối.
func MergeClientData(rawData *sheetsmodels.RawSheetsData) []dashmodels.Client {
	clientMap := make(map[string]*mergedPair)
	var keyOrder []string // giữ thứ tự gặp key để output deterministic

	for i := range rawData.BookedCalls {
		call := &rawData.BookedCalls[i]
		if call.ClientName == "" {
			continue
		}
		key := NormalizeNameForMatching(call.ClientName)
		if key == "" {
			continue
		}
		pair, ok := clientMap[key]
		if !ok {
			pair = &mergedPair{}
			clientMap[key] = pair
			keyOrder = append(keyOrder, key)
		}
		// Trùng key: giữ booked call gần nhất
		if pair.call == nil || (call.CallDate != "" && call.CallDate > pair.call.CallDate) {
			pair.call = call
		}
	}

	for i := range rawData.SaleSubmissions {
		sale := &rawData.SaleSubmissions[i]
		if sale.ClientName == "" {
			continue
		}
		key := NormalizeNameForMatching(sale.ClientName)
		if key == "" {
			continue
		}
		pair, ok := clientMap[key]
		if !ok {
			pair = &mergedPair{}
			clientMap[key] = pair
			keyOrder = append(keyOrder, key)
		}
		// Trùng key: giữ sale gần nhất
		if pair.sale == nil || (sale.PurchaseDate != "" && sale.PurchaseDate > pair.sale.PurchaseDate) {
			pair.sale = sale
		}
	}

	clients := make([]dashmodels.Client, 0, len(keyOrder))
	for _, key := range keyOrder {
		pair := clientMap[key]
		clients = append(clients, buildClient(pair.call, pair.sale))
	}

	// Sort giảm dần theo representative date; chuỗi rỗng tự xếp cuối
	sort.SliceStable(clients, func(i, j int) bool {
		dateI := firstNonEmpty(clients[i].BookingDate, clients[i].PurchaseDate)
		dateJ := firstNonEmpty(clients[j].BookingDate, clients[j].PurchaseDate)
		return dateI > dateJ
	})

	return clients
}

// buildClient dựng một Client từ cặp booked call và sale.
// Email/phone ưu tiên phía sale vì sheet booked calls không có hai cột này.
func buildClient(call *sheetsmodels.BookedCallRow, sale *sheetsmodels.SaleSubmissionRow) dashmodels.Client {
	// Tránh nil check lặp lại: dùng zero value khi thiếu một phía
	var callVal sheetsmodels.BookedCallRow
	if call != nil {
		callVal = *call
	}
	var saleVal sheetsmodels.SaleSubmissionRow
	if sale != nil {
		saleVal = *sale
	}

	stage := DetermineJourneyStage(call, sale)

	return dashmodels.Client{
		Email:       firstNonEmpty(saleVal.ClientEmail, callVal.ClientEmail),
		Name:        firstNonEmpty(callVal.ClientName, saleVal.ClientName),
		Phone:       firstNonEmpty(saleVal.ClientPhone, callVal.ClientPhone),
		BookingDate: firstNonEmpty(saleVal.BookingDate, callVal.BookingDate),
		CallDate:    callVal.CallDate,
		CallStatus:  callVal.CallStatus,
		Closer:      firstNonEmpty(saleVal.Closer, callVal.Closer),
		Setter:      firstNonEmpty(saleVal.Setter, callVal.Setter),

		ExpectedPackage: callVal.ExpectedPackage,
		ExpectedPrice:   callVal.ExpectedPrice,
		ClosedStatus:    callVal.ClosedStatus,

		PurchaseDate:  saleVal.PurchaseDate,
		Program:       saleVal.Program,
		ActualPrice:   saleVal.Price,
		CashCollected: saleVal.CashCollected,
		Balance:       saleVal.Balance,
		PaymentMethod: saleVal.PaymentMethod,
		PaymentStatus: saleVal.PaymentStatus,
		Currency:      firstNonEmpty(saleVal.Currency, callVal.Currency, "USD"),

		JourneyStage: stage,
		DaysToClose:  calculateDaysToClose(call, sale),
		IsConverted:  stage == dashmodels.StageClosed || stage == dashmodels.StagePaid,

		Vibe:             callVal.Vibe,
		Objection:        callVal.Objection,
		LastContact:      callVal.LastContact,
		LastContactNotes: callVal.LastContactNotes,
		City:             callVal.City,
		State:            callVal.State,
		Notes:            firstNonEmpty(callVal.Notes, saleVal.Notes),
	}
}
