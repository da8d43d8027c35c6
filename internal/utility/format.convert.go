package utility

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// whitespaceRegex gộp các chuỗi whitespace liên tiếp thành một khoảng trắng
	whitespaceRegex = regexp.MustCompile(`\s+`)

	// priceStripRegex loại bỏ ký hiệu tiền tệ, dấu phẩy và khoảng trắng khỏi chuỗi giá
	priceStripRegex = regexp.MustCompile(`[$,\s]`)

	// ordinalRegex loại bỏ hậu tố thứ tự trong chuỗi ngày (30th, 1st, 2nd, 3rd)
	ordinalRegex = regexp.MustCompile(`(\d+)(st|nd|rd|th)`)
)

// NormalizeString chuẩn hóa chuỗi để so khớp: lowercase, gộp whitespace, trim
// @params - chuỗi cần chuẩn hóa
// @returns - chuỗi đã chuẩn hóa
func NormalizeString(s string) string {
	lowered := strings.ToLower(s)
	collapsed := whitespaceRegex.ReplaceAllString(lowered, " ")
	return strings.TrimSpace(collapsed)
}

// CombineNames ghép first name và last name thành tên đầy đủ
// @params - first name, last name
// @returns - tên đầy đủ đã trim
func CombineNames(first string, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

// ParsePrice chuyển chuỗi giá tiền từ spreadsheet thành float64
// Chấp nhận các dạng "$1,500.00", "1500", " 1,500 ". Chuỗi không hợp lệ trả về 0.
// @params - chuỗi giá tiền
// @returns - giá trị float64
func ParsePrice(raw string) float64 {
	cleaned := priceStripRegex.ReplaceAllString(raw, "")
	if cleaned == "" {
		return 0
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return value
}

// excelEpochOffsetDays là số ngày giữa epoch của Excel (1899-12-30) và Unix epoch
const excelEpochOffsetDays = 25569

// dateLayouts là các định dạng ngày có năm được chấp nhận từ spreadsheet
var dateLayouts = []string{
	"2006-01-02",
	"1/2/2006",
	"1/2/06",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
}

// monthDayLayouts là các định dạng chỉ có tháng/ngày, cần yearHint để hoàn chỉnh
var monthDayLayouts = []string{
	"January 2",
	"Jan 2",
	"1/2",
}

// ParseSheetDate chuyển giá trị ngày từ spreadsheet thành chuỗi ISO "2006-01-02".
// Hỗ trợ Excel serial number, chuỗi ngày có hậu tố thứ tự ("June 30th") và
// các định dạng thông dụng. Giá trị không parse được trả về chuỗi rỗng.
// @params - giá trị ô, năm gợi ý cho chuỗi thiếu năm
// @returns - chuỗi ngày ISO hoặc rỗng
func ParseSheetDate(raw string, yearHint int) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	// Excel serial number: số ngày kể từ 1899-12-30.
	// Serial chỉ tin cậy phần tháng/ngày; năm lấy từ yearHint vì dữ liệu nhập tay
	// trên sheet thường sai năm.
	if serial, err := strconv.ParseFloat(trimmed, 64); err == nil {
		if serial < 1 || serial >= 100000 {
			return ""
		}
		seconds := int64((serial - excelEpochOffsetDays) * 86400)
		t := time.Unix(seconds, 0).UTC()
		completed := time.Date(yearHint, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		return completed.Format("2006-01-02")
	}

	// Loại bỏ hậu tố thứ tự ("June 30th" -> "June 30")
	cleaned := ordinalRegex.ReplaceAllString(trimmed, "$1")

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			// Năm parse được quá cũ thì coi như sai, thay bằng yearHint
			if t.Year() < 2020 {
				t = time.Date(yearHint, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			}
			return t.Format("2006-01-02")
		}
	}

	// Chuỗi thiếu năm: dùng yearHint (thường lấy từ tên tab của sheet)
	for _, layout := range monthDayLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			completed := time.Date(yearHint, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return completed.Format("2006-01-02")
		}
	}

	return ""
}

// YearHintFromTabName suy ra năm từ tên tab của spreadsheet
// Ví dụ: "January 26" -> 2026, "June" -> 2025 (mặc định)
// @params - tên tab
// @returns - năm gợi ý
func YearHintFromTabName(tabName string) int {
	if strings.Contains(tabName, "26") {
		return 2026
	}
	if strings.Contains(tabName, "25") {
		return 2025
	}
	return 2025
}
