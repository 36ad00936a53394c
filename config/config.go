package config

import (
	"fmt"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB membuka koneksi database berdasarkan env.
// DB_DRIVER=mysql memakai DSN dari DB_USER/DB_PASS/DB_HOST/DB_PORT/DB_NAME,
// selain itu fallback ke file sqlite lokal untuk development.
func InitDB() (*gorm.DB, error) {
	driver := os.Getenv("DB_DRIVER")

	if driver == "mysql" {
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASS"),
			getenvDefault("DB_HOST", "127.0.0.1"),
			getenvDefault("DB_PORT", "3306"),
			os.Getenv("DB_NAME"),
		)
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	}

	path := getenvDefault("DB_PATH", "reservation.db")
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}

// StoreTimeout membatasi setiap panggilan ke store (lihat STORE_TIMEOUT,
// format time.ParseDuration). Default 5 detik.
func StoreTimeout() time.Duration {
	if v := os.Getenv("STORE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return 5 * time.Second
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
