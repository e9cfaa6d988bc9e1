package db

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yobeidat/obeidat-motors-backend/pkg/config"
)

type testModel struct {
	ID   int
	Name string
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&testModel{}); err != nil {
		t.Fatalf("failed to migrate sqlite: %v", err)
	}
	return conn
}

func TestNew_SQLiteDriver(t *testing.T) {
	cfg := config.DBConfig{
		Driver: config.DriverSQLite,
		DSN:    "file::memory:?cache=shared",
	}
	client, err := New(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer client.Close()

	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
	if client.DB() == nil {
		t.Fatal("expected gorm handle")
	}
}

func TestNew_RequiresDSN(t *testing.T) {
	if _, err := New(context.Background(), config.DBConfig{}, nil); err == nil {
		t.Fatal("expected error for empty DSN")
	}
}

func TestPing(t *testing.T) {
	db := newTestDB(t)
	client := &Client{conn: db}
	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
}

func TestCRUDThroughClient(t *testing.T) {
	db := newTestDB(t)
	client := &Client{conn: db}

	if err := client.DB().Create(&testModel{Name: "record"}).Error; err != nil {
		t.Fatalf("create failed: %v", err)
	}
	var count int64
	if err := client.DB().Model(&testModel{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 record, got %d", count)
	}
}
