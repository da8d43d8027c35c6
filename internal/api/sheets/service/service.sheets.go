// Package sheetsvc - Service load dữ liệu thô cho dashboard.
// Thứ tự ưu tiên nguồn: Google Sheets API -> file Excel local -> dữ liệu rỗng.
package sheetsvc

import (
	"context"
	"sync"
	"time"

	sheetsmodels "medspa_dashboard/internal/api/sheets/models"
	"medspa_dashboard/internal/global"
	"medspa_dashboard/internal/logger"
)

// SheetsService quản lý việc load và cache dữ liệu thô từ các nguồn.
type SheetsService struct {
	cacheTTL time.Duration

	mu        sync.Mutex
	cached    *sheetsmodels.RawSheetsData
	source    string
	fetchedAt time.Time
}

// NewSheetsService tạo mới một instance của SheetsService với TTL cache từ config
func NewSheetsService() *SheetsService {
	ttl := 60
	if global.ServerConfig != nil && global.ServerConfig.SourceCacheTTL > 0 {
		ttl = global.ServerConfig.SourceCacheTTL
	}
	return &SheetsService{
		cacheTTL: time.Duration(ttl) * time.Second,
	}
}

// GetRawData trả về dữ liệu thô, dùng cache nếu còn hạn.
// Không trả về error: nguồn nào cũng lỗi thì trả về dữ liệu rỗng với source "none"
// để dashboard vẫn render được.
func (s *SheetsService) GetRawData(ctx context.Context) (*sheetsmodels.RawSheetsData, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Cache còn hạn thì dùng luôn
	if s.cached != nil && time.Since(s.fetchedAt) < s.cacheTTL {
		return s.cached, s.source
	}

	data, source := s.fetchFromSources(ctx)
	s.cached = data
	s.source = source
	s.fetchedAt = time.Now()
	return data, source
}

// Invalidate xóa cache, lần gọi GetRawData tiếp theo sẽ load lại từ nguồn
func (s *SheetsService) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = nil
}

// fetchFromSources thử lần lượt các nguồn theo thứ tự ưu tiên
func (s *SheetsService) fetchFromSources(ctx context.Context) (*sheetsmodels.RawSheetsData, string) {
	log := logger.WithModule("sheets")

	// Ưu tiên 1: Google Sheets nếu đã cấu hình credentials
	if HasGoogleCredentials() {
		data, err := FetchGoogleSheetsData(ctx)
		if err == nil {
			log.WithFields(map[string]interface{}{
				"bookedCalls": len(data.BookedCalls),
				"sales":       len(data.SaleSubmissions),
			}).Info("Đã load dữ liệu từ Google Sheets")
			return data, sheetsmodels.DataSourceGoogleSheets
		}
		log.WithError(err).Error("Load từ Google Sheets thất bại, chuyển sang file Excel")
	} else {
		log.Info("Chưa cấu hình Google Sheets credentials, dùng file Excel local")
	}

	// Ưu tiên 2: file Excel local
	data, err := ReadExcelData()
	if err == nil {
		log.WithFields(map[string]interface{}{
			"bookedCalls": len(data.BookedCalls),
			"sales":       len(data.SaleSubmissions),
		}).Info("Đã load dữ liệu từ file Excel")
		return data, sheetsmodels.DataSourceExcel
	}
	log.WithError(err).Error("Load từ file Excel thất bại")

	// Tất cả nguồn đều lỗi: trả về dữ liệu rỗng
	return &sheetsmodels.RawSheetsData{
		BookedCalls:     nil,
		SaleSubmissions: nil,
		LastUpdated:     time.Now().UTC().Format(time.RFC3339),
	}, sheetsmodels.DataSourceNone
}
