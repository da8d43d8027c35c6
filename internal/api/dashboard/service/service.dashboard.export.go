// Package dashsvc - Xuất danh sách client ra CSV cho manager tải về.
package dashsvc

import (
	"bytes"
	"encoding/csv"
	"strconv"

	dashmodels "medspa_dashboard/internal/api/dashboard/models"
)

// csvHeader là thứ tự cột cố định của file export
var csvHeader = []string{
	"Client Name",
	"Email",
	"Phone",
	"Booking Date",
	"Closer",
	"Program",
	"Actual Price",
	"Expected Price",
	"Cash Collected",
	"Balance",
	"Stage",
	"Call Status",
	"Purchase Date",
	"Payment Method",
	"Currency",
}

// formatMoney ghi số tiền không có số 0 thừa phía sau
func formatMoney(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// clientCSVRecord chuyển một client thành một dòng CSV theo thứ tự csvHeader.
// Program rỗng thì fallback sang expectedPackage như trên bảng client.
func clientCSVRecord(client *dashmodels.Client) []string {
	program := client.Program
	if program == "" {
		program = client.ExpectedPackage
	}
	return []string{
		client.Name,
		client.Email,
		client.Phone,
		client.BookingDate,
		client.Closer,
		program,
		formatMoney(client.ActualPrice),
		formatMoney(client.ExpectedPrice),
		formatMoney(client.CashCollected),
		formatMoney(client.Balance),
		string(client.JourneyStage),
		client.CallStatus,
		client.PurchaseDate,
		client.PaymentMethod,
		client.Currency,
	}
}

// ClientsToCSV render danh sách client thành CSV UTF-8 có BOM để Excel mở
// đúng encoding. Danh sách rỗng vẫn trả về header.
func ClientsToCSV(clients []dashmodels.Client) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(&buf)
	if err := writer.Write(csvHeader); err != nil {
		return nil, err
	}
	for i := range clients {
		if err := writer.Write(clientCSVRecord(&clients[i])); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
