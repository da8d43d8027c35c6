// Package models - BookedCallRow, SaleSubmissionRow, RawSheetsData thuộc domain Sheets.
package models

// Trạng thái cuộc gọi của booked call
const (
	CallStatusScheduled   = "Scheduled"   // Đã đặt lịch, chưa diễn ra
	CallStatusAttended    = "Attended"    // Đã tham dự
	CallStatusNoShow      = "No Show"     // Không đến
	CallStatusRescheduled = "Rescheduled" // Đã dời lịch
	CallStatusCancelled   = "Cancelled"   // Đã hủy
)

// Trạng thái chốt deal của booked call
const (
	ClosedStatusClosed    = "Closed"     // Đã chốt
	ClosedStatusNotClosed = "Not Closed" // Không chốt
	ClosedStatusPending   = "Pending"    // Chưa rõ
)

// Đánh giá cảm nhận (vibe) của closer về client sau cuộc gọi
const (
	VibeHot     = "Hot"
	VibeWarm    = "Warm"
	VibeCold    = "Cold"
	VibeOnFence = "On Fence"
)

// Lý do từ chối (objection) client đưa ra
const (
	ObjectionPrice    = "Price"
	ObjectionTiming   = "Timing"
	ObjectionSpouse   = "Spouse"
	ObjectionThinking = "Thinking"
	ObjectionOther    = "Other"
)

// Nguồn dữ liệu đã load
const (
	DataSourceGoogleSheets = "google-sheets" // Load từ Google Sheets API
	DataSourceExcel        = "excel"         // Load từ file Excel local
	DataSourceNone         = "none"          // Không load được từ nguồn nào
)

// BookedCallRow là một dòng từ sheet booked calls (log các cuộc gọi đã đặt).
type BookedCallRow struct {
	ClientName      string `json:"clientName"`      // Tên đầy đủ của client
	ClientEmail     string `json:"clientEmail"`     // Email (sheet booked calls không có, để rỗng)
	ClientPhone     string `json:"clientPhone"`     // Số điện thoại (sheet booked calls không có, để rỗng)
	BookingDate     string `json:"bookingDate"`     // Ngày đặt lịch (YYYY-MM-DD)
	CallDate        string `json:"callDate"`        // Ngày gọi (YYYY-MM-DD)
	CallStatus      string `json:"callStatus"`      // Một trong các CallStatus* constants
	Closer          string `json:"closer"`          // Tên closer phụ trách
	ExpectedPackage string `json:"expectedPackage"` // Gói dự kiến bán
	ExpectedPrice   float64 `json:"expectedPrice"`  // Giá dự kiến
	ClosedStatus    string `json:"closedStatus"`    // Một trong các ClosedStatus* constants
	Notes           string `json:"notes"`           // Ghi chú (số lần reschedule)
	Currency        string `json:"currency"`        // CAD/USD
	Setter          string `json:"setter"`          // Tên setter (sheet booked calls không có, để rỗng)
	Vibe            string `json:"vibe"`            // Vibe* constant hoặc rỗng
	Objection       string `json:"objection"`       // Objection* constant hoặc rỗng
	LastContact     string `json:"lastContact"`     // Ngày liên hệ gần nhất (YYYY-MM-DD)
	LastContactNotes string `json:"lastContactNotes"` // Ghi chú lần liên hệ gần nhất
	City            string `json:"city"`            // Thành phố
	State           string `json:"state"`           // Bang/tỉnh
}

// SaleSubmissionRow là một dòng từ form submission khi chốt sale.
type SaleSubmissionRow struct {
	ClientEmail   string  `json:"clientEmail"`   // Email của client (lowercase)
	ClientName    string  `json:"clientName"`    // Tên đầy đủ của client
	ClientPhone   string  `json:"clientPhone"`   // Số điện thoại
	BookingDate   string  `json:"bookingDate"`   // Ngày admissions call (YYYY-MM-DD)
	PurchaseDate  string  `json:"purchaseDate"`  // Ngày mua (YYYY-MM-DD)
	Program       string  `json:"program"`       // Chương trình đã chọn
	Price         float64 `json:"price"`         // Giá bán
	CashCollected float64 `json:"cashCollected"` // Tiền đã thu
	Balance       float64 `json:"balance"`       // Số dư còn lại
	PaymentMethod string  `json:"paymentMethod"` // Nguồn thanh toán
	Notes         string  `json:"notes"`         // Ghi chú
	Closer        string  `json:"closer"`        // Sales rep chốt deal
	Setter        string  `json:"setter"`        // Setter
	Currency      string  `json:"currency"`      // CAD/USD
	PaymentStatus string  `json:"paymentStatus"` // Trạng thái thanh toán
}

// RawSheetsData là dữ liệu thô từ hai nguồn trước khi merge.
type RawSheetsData struct {
	BookedCalls     []BookedCallRow     `json:"bookedCalls"`
	SaleSubmissions []SaleSubmissionRow `json:"saleSubmissions"`
	LastUpdated     string              `json:"lastUpdated"` // Thời điểm load (RFC3339)
}
