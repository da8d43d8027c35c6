package sheetsvc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/oauth2/google"
	oauthjwt "golang.org/x/oauth2/jwt"
	sheets "google.golang.org/api/sheets/v4"
	"google.golang.org/api/option"

	sheetsmodels "medspa_dashboard/internal/api/sheets/models"
	"medspa_dashboard/internal/common"
	"medspa_dashboard/internal/global"
	"medspa_dashboard/internal/logger"
	"medspa_dashboard/internal/utility"
)

// spreadsheetReadScope là scope chỉ đọc của Google Sheets API
const spreadsheetReadScope = "https://www.googleapis.com/auth/spreadsheets.readonly"

// bookedCallsSheetNames là các tab theo tháng trong spreadsheet booked calls
var bookedCallsSheetNames = []string{
	"June", "July", "August", "September", "October", "November", "December", "January 26",
}

// defaultSalesRange là range mặc định của sheet sale submissions
const defaultSalesRange = "'New Sale Submission Form  (Responses)'!A:Z"

// HasGoogleCredentials kiểm tra đã cấu hình đủ credentials cho Google Sheets chưa
func HasGoogleCredentials() bool {
	cfg := global.ServerConfig
	return cfg.GoogleServiceAccountEmail != "" &&
		cfg.GooglePrivateKey != "" &&
		cfg.BookedCallsSheetID != "" &&
		cfg.SalesSheetID != ""
}

// newSheetsService tạo Google Sheets client từ service account credentials.
// Private key trong env chứa "\n" dạng escaped nên phải thay về newline thật.
func newSheetsService(ctx context.Context) (*sheets.Service, error) {
	cfg := global.ServerConfig
	privateKey := strings.ReplaceAll(cfg.GooglePrivateKey, `\n`, "\n")

	jwtConfig := &oauthjwt.Config{
		Email:      cfg.GoogleServiceAccountEmail,
		PrivateKey: []byte(privateKey),
		Scopes:     []string{spreadsheetReadScope},
		TokenURL:   google.JWTTokenURL,
	}

	service, err := sheets.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("tạo Google Sheets client thất bại: %w", err)
	}
	return service, nil
}

// getSheetValues đọc một range từ spreadsheet và chuyển về [][]string
func getSheetValues(service *sheets.Service, spreadsheetID string, readRange string) ([][]string, error) {
	response, err := service.Spreadsheets.Values.Get(spreadsheetID, readRange).Do()
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(response.Values))
	for _, rawRow := range response.Values {
		row := make([]string, 0, len(rawRow))
		for _, cell := range rawRow {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// FetchGoogleSheetsData lấy dữ liệu thô từ Google Sheets API.
// Booked calls đọc lần lượt các tab theo tháng (tab không tồn tại thì bỏ qua),
// sale submissions đọc một range duy nhất.
func FetchGoogleSheetsData(ctx context.Context) (*sheetsmodels.RawSheetsData, error) {
	cfg := global.ServerConfig
	if cfg.BookedCallsSheetID == "" || cfg.SalesSheetID == "" {
		return nil, common.ErrSourceNotConfigured
	}

	service, err := newSheetsService(ctx)
	if err != nil {
		return nil, common.NewError(common.ErrCodeSourceFetch, err.Error(), common.StatusServiceUnavailable, nil)
	}

	var allBookedCalls []sheetsmodels.BookedCallRow
	if cfg.BookedCallsRange != "" {
		// Range cấu hình cụ thể: đọc một lần duy nhất
		rows, err := getSheetValues(service, cfg.BookedCallsSheetID, cfg.BookedCallsRange)
		if err != nil {
			return nil, common.NewError(common.ErrCodeSourceFetch, "Đọc sheet booked calls thất bại: "+err.Error(), common.StatusServiceUnavailable, nil)
		}
		allBookedCalls = append(allBookedCalls, ParseBookedCallsSheet(rows, 2025)...)
	} else {
		// Không cấu hình range: đọc tất cả các tab theo tháng
		for _, sheetName := range bookedCallsSheetNames {
			rows, err := getSheetValues(service, cfg.BookedCallsSheetID, fmt.Sprintf("%s!A:Z", sheetName))
			if err != nil {
				// Tab có thể không tồn tại, bỏ qua
				logger.GetAppLogger().WithField("sheet", sheetName).Warn("Không đọc được tab booked calls, bỏ qua")
				continue
			}
			yearHint := utility.YearHintFromTabName(sheetName)
			allBookedCalls = append(allBookedCalls, ParseBookedCallsSheet(rows, yearHint)...)
		}
	}

	// Đọc sale submissions
	salesRange := cfg.SalesRange
	if salesRange == "" {
		salesRange = defaultSalesRange
	}
	salesRows, err := getSheetValues(service, cfg.SalesSheetID, salesRange)
	if err != nil {
		return nil, common.NewError(common.ErrCodeSourceFetch, "Đọc sheet sale submissions thất bại: "+err.Error(), common.StatusServiceUnavailable, nil)
	}

	return &sheetsmodels.RawSheetsData{
		BookedCalls:     allBookedCalls,
		SaleSubmissions: ParseSalesSheet(salesRows),
		LastUpdated:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}
