// Package models - Client và JourneyStage thuộc domain Dashboard.
package models

// JourneyStage là trạng thái hành trình của client, có thứ tự:
// booked < attended < closed < paid.
type JourneyStage string

const (
	StageBooked   JourneyStage = "booked"   // Đã đặt lịch gọi
	StageAttended JourneyStage = "attended" // Đã tham dự cuộc gọi
	StageClosed   JourneyStage = "closed"   // Đã chốt deal
	StagePaid     JourneyStage = "paid"     // Đã thu được tiền
)

// Client là entity hợp nhất từ booked call và sale submission, một entity cho
// mỗi tên đã chuẩn hóa. Các field dạng chuỗi rỗng nghĩa là không có dữ liệu.
type Client struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	BookingDate string `json:"bookingDate"` // YYYY-MM-DD, rỗng nếu không có
	CallDate    string `json:"callDate"`
	CallStatus  string `json:"callStatus"`
	Closer      string `json:"closer"`
	Setter      string `json:"setter"`

	// Phía booked call
	ExpectedPackage string  `json:"expectedPackage"`
	ExpectedPrice   float64 `json:"expectedPrice"`
	ClosedStatus    string  `json:"closedStatus"`

	// Phía sale submission
	PurchaseDate  string  `json:"purchaseDate"`
	Program       string  `json:"program"`
	ActualPrice   float64 `json:"actualPrice"`
	CashCollected float64 `json:"cashCollected"`
	Balance       float64 `json:"balance"`
	PaymentMethod string  `json:"paymentMethod"`
	PaymentStatus string  `json:"paymentStatus"`
	Currency      string  `json:"currency"`

	// Các field dẫn xuất
	JourneyStage JourneyStage `json:"journeyStage"`
	DaysToClose  *int         `json:"daysToClose"` // nil nếu thiếu booking/purchase date
	IsConverted  bool         `json:"isConverted"` // true khi stage là closed hoặc paid

	// Các field định tính từ booked call
	Vibe             string `json:"vibe"`
	Objection        string `json:"objection"`
	LastContact      string `json:"lastContact"`
	LastContactNotes string `json:"lastContactNotes"`
	City             string `json:"city"`
	State            string `json:"state"`
	Notes            string `json:"notes"`
}

// StageAtLeast kiểm tra stage của client có đạt tối thiểu mức cho trước không,
// theo thứ tự booked < attended < closed < paid.
func (c *Client) StageAtLeast(stage JourneyStage) bool {
	return stageRank(c.JourneyStage) >= stageRank(stage)
}

// stageRank trả về thứ hạng của stage để so sánh
func stageRank(stage JourneyStage) int {
	switch stage {
	case StagePaid:
		return 3
	case StageClosed:
		return 2
	case StageAttended:
		return 1
	default:
		return 0
	}
}
