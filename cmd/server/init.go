package main

import (
	"github.com/sirupsen/logrus"

	"medspa_dashboard/config"
	"medspa_dashboard/internal/global"
)

// InitGlobal khởi tạo các biến toàn cục
func InitGlobal() {
	initValidator() // Khởi tạo validator
	initConfig()    // Khởi tạo cấu hình server
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, iso_date)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}
