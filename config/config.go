package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng.
// Nguồn dữ liệu dashboard là Google Sheets (live) với fallback file Excel cục bộ.
type Configuration struct {
	Address               string `env:"ADDRESS" envDefault:":8080"`                // Địa chỉ server
	JwtSecret             string `env:"JWT_SECRET,required"`                       // Bí mật JWT
	Timezone              string `env:"TIMEZONE" envDefault:"Asia/Ho_Chi_Minh"`    // Timezone cho các phép tính theo kỳ (MTD, QTD, ...)
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting

	// Google Sheets (nguồn dữ liệu chính)
	GoogleServiceAccountEmail string `env:"GOOGLE_SERVICE_ACCOUNT_EMAIL"` // Email của service account
	GooglePrivateKey          string `env:"GOOGLE_PRIVATE_KEY"`           // Private key PEM (chuỗi \n sẽ được thay bằng newline thật)
	BookedCallsSheetID        string `env:"BOOKED_CALLS_SHEET_ID"`        // Spreadsheet ID của file booked calls
	SalesSheetID              string `env:"SALES_SHEET_ID"`               // Spreadsheet ID của file sale submissions
	BookedCallsRange          string `env:"BOOKED_CALLS_RANGE"`           // (Optional) range cụ thể, thay cho danh sách tab theo tháng
	SalesRange                string `env:"SALES_RANGE"`                  // (Optional) range cho sheet sales

	// Excel fallback (khi Google Sheets lỗi hoặc chưa cấu hình credentials)
	ExcelDataPath   string `env:"EXCEL_DATA_PATH"`   // Thư mục chứa file .xlsx
	BookedCallsFile string `env:"BOOKED_CALLS_FILE"` // Tên file booked calls
	SalesFile       string `env:"SALES_FILE"`        // Tên file sale submissions

	// Auth (MVP: danh sách user cố định, mật khẩu dùng chung)
	AuthPassword string `env:"AUTH_PASSWORD" envDefault:"medspa2024"` // Mật khẩu dùng chung cho MVP

	// TTL cache snapshot dữ liệu nguồn (giây). Pipeline luôn tính lại từ snapshot, không lưu kết quả.
	SourceCacheTTL int `env:"SOURCE_CACHE_TTL" envDefault:"60"`

	// TLS/HTTPS Configuration
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Bật HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Đường dẫn đến file certificate (.crt hoặc .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Đường dẫn đến file private key (.key)
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Tìm thư mục config
	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			// Tìm thấy thư mục config/env
			envPath := filepath.Join(envDir, fmt.Sprintf("%s.env", env))
			return envPath
		}

		// Đi lên thư mục cha
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig sẽ đọc dữ liệu cấu hình từ file env được cung cấp
func NewConfig(files ...string) *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không tìm thấy thư mục config/env\n")
		return nil
	}

	err := godotenv.Load(envPath)
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	err = env.Parse(&cfg)
	if err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
