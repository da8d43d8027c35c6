package sheetsvc

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	sheetsmodels "medspa_dashboard/internal/api/sheets/models"
	"medspa_dashboard/internal/common"
	"medspa_dashboard/internal/global"
	"medspa_dashboard/internal/logger"
	"medspa_dashboard/internal/utility"
)

// ReadExcelData đọc dữ liệu thô từ hai file Excel local (fallback khi không có
// Google Sheets credentials hoặc API lỗi).
func ReadExcelData() (*sheetsmodels.RawSheetsData, error) {
	cfg := global.ServerConfig
	bookedCallsPath := filepath.Join(cfg.ExcelDataPath, cfg.BookedCallsFile)
	salesPath := filepath.Join(cfg.ExcelDataPath, cfg.SalesFile)

	bookedCalls, err := readBookedCallsFile(bookedCallsPath)
	if err != nil {
		return nil, common.NewError(common.ErrCodeSourceFetch, "Đọc file booked calls thất bại: "+err.Error(), common.StatusServiceUnavailable, nil)
	}

	saleSubmissions, err := readSalesFile(salesPath)
	if err != nil {
		return nil, common.NewError(common.ErrCodeSourceFetch, "Đọc file sale submissions thất bại: "+err.Error(), common.StatusServiceUnavailable, nil)
	}

	return &sheetsmodels.RawSheetsData{
		BookedCalls:     bookedCalls,
		SaleSubmissions: saleSubmissions,
		LastUpdated:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// readBookedCallsFile đọc file Excel booked calls, parse lần lượt các tab theo tháng.
// Tab không tồn tại trong file thì bỏ qua.
func readBookedCallsFile(path string) ([]sheetsmodels.BookedCallRow, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("mở file %s: %w", path, err)
	}
	defer file.Close()

	var allBookedCalls []sheetsmodels.BookedCallRow
	for _, sheetName := range bookedCallsSheetNames {
		rows, err := file.GetRows(sheetName)
		if err != nil {
			// Tab không tồn tại trong file, bỏ qua
			continue
		}
		yearHint := utility.YearHintFromTabName(sheetName)
		calls := ParseBookedCallsSheet(rows, yearHint)
		if len(calls) > 0 {
			logger.GetAppLogger().WithField("sheet", sheetName).WithField("rows", len(calls)).Debug("Đã parse tab booked calls")
		}
		allBookedCalls = append(allBookedCalls, calls...)
	}
	return allBookedCalls, nil
}

// readSalesFile đọc file Excel sale submissions, parse sheet đầu tiên.
func readSalesFile(path string) ([]sheetsmodels.SaleSubmissionRow, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("mở file %s: %w", path, err)
	}
	defer file.Close()

	sheetList := file.GetSheetList()
	if len(sheetList) == 0 {
		return nil, fmt.Errorf("file %s không có sheet nào", path)
	}

	rows, err := file.GetRows(sheetList[0])
	if err != nil {
		return nil, fmt.Errorf("đọc sheet %s: %w", sheetList[0], err)
	}
	return ParseSalesSheet(rows), nil
}
