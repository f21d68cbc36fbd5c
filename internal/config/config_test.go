package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.App.Name != "bookloop" {
		t.Errorf("App.Name = %v, want bookloop", cfg.App.Name)
	}
	if cfg.Server.Port != 5000 {
		t.Errorf("Server.Port = %v, want 5000", cfg.Server.Port)
	}
	if cfg.Database.Port != 27017 {
		t.Errorf("Database.Port = %v, want 27017", cfg.Database.Port)
	}
	if cfg.Redis.Port != 6379 {
		t.Errorf("Redis.Port = %v, want 6379", cfg.Redis.Port)
	}
	if cfg.Jobs.Concurrency != 4 {
		t.Errorf("Jobs.Concurrency = %v, want 4", cfg.Jobs.Concurrency)
	}
	if cfg.Jobs.NotificationRetention != 30*24*time.Hour {
		t.Errorf("Jobs.NotificationRetention = %v, want 720h", cfg.Jobs.NotificationRetention)
	}
	if cfg.Security.RequireAuth {
		t.Error("Security.RequireAuth = true, want false by default")
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := &Config{
		Database: DatabaseConfig{Name: "bookloop"},
		Jobs:     JobsConfig{Concurrency: 4},
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}

	missingDB := &Config{Jobs: JobsConfig{Concurrency: 1}}
	if err := missingDB.Validate(); err == nil {
		t.Error("Validate() = nil for missing database name")
	}

	authNoSecret := &Config{
		Database: DatabaseConfig{Name: "bookloop"},
		Jobs:     JobsConfig{Concurrency: 1},
		Security: SecurityConfig{RequireAuth: true},
	}
	if err := authNoSecret.Validate(); err == nil {
		t.Error("Validate() = nil for enforced auth without a secret")
	}

	badConcurrency := &Config{
		Database: DatabaseConfig{Name: "bookloop"},
		Jobs:     JobsConfig{Concurrency: 0},
	}
	if err := badConcurrency.Validate(); err == nil {
		t.Error("Validate() = nil for zero concurrency")
	}
}

func TestDatabaseConfig_MongoURI(t *testing.T) {
	plain := &DatabaseConfig{Host: "localhost", Port: 27017, Name: "bookloop"}
	if got := plain.MongoURI(); got != "mongodb://localhost:27017/bookloop" {
		t.Errorf("MongoURI() = %v", got)
	}

	withAuth := &DatabaseConfig{
		Host: "db", Port: 27017, Name: "bookloop",
		User: "app", Password: "secret", AuthSource: "admin",
	}
	want := "mongodb://app:secret@db:27017/bookloop?authSource=admin"
	if got := withAuth.MongoURI(); got != want {
		t.Errorf("MongoURI() = %v, want %v", got, want)
	}

	withReplica := &DatabaseConfig{
		Host: "db", Port: 27017, Name: "bookloop", ReplicaSet: "rs0",
	}
	want = "mongodb://db:27017/bookloop?replicaSet=rs0"
	if got := withReplica.MongoURI(); got != want {
		t.Errorf("MongoURI() = %v, want %v", got, want)
	}
}

func TestRedisConfig_Addr(t *testing.T) {
	cfg := &RedisConfig{Host: "cache", Port: 6380}
	if got := cfg.Addr(); got != "cache:6380" {
		t.Errorf("Addr() = %v, want cache:6380", got)
	}
}

func TestAppConfig_IsProduction(t *testing.T) {
	if (&AppConfig{Environment: "development"}).IsProduction() {
		t.Error("IsProduction() = true for development")
	}
	if !(&AppConfig{Environment: "production"}).IsProduction() {
		t.Error("IsProduction() = false for production")
	}
}
