package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefauts(t *testing.T) {
	t.Setenv("HOTEL_API_URL", "http://localhost:9000")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("HOTEL_API_TIMEOUT", "")
	t.Setenv("SCHEDULER_ENABLED", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %s, attendu 8080", cfg.ServerPort)
	}
	if cfg.HotelAPITimeout != 15*time.Second {
		t.Errorf("HotelAPITimeout = %v, attendu 15s", cfg.HotelAPITimeout)
	}
	if !cfg.SchedulerEnabled {
		t.Error("SchedulerEnabled = false, attendu true par défaut")
	}
}

func TestLoadConfigURLRequise(t *testing.T) {
	t.Setenv("HOTEL_API_URL", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("erreur attendue sans HOTEL_API_URL")
	}
}

func TestLoadConfigValeursExplicites(t *testing.T) {
	t.Setenv("HOTEL_API_URL", "http://api.example.com")
	t.Setenv("HOTEL_API_TIMEOUT", "30s")
	t.Setenv("SCHEDULER_ENABLED", "false")
	t.Setenv("CORS_ORIGIN", "https://admin.example.com")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.HotelAPITimeout != 30*time.Second {
		t.Errorf("HotelAPITimeout = %v, attendu 30s", cfg.HotelAPITimeout)
	}
	if cfg.SchedulerEnabled {
		t.Error("SchedulerEnabled = true, attendu false")
	}
	if cfg.CORSOrigin != "https://admin.example.com" {
		t.Errorf("CORSOrigin = %s", cfg.CORSOrigin)
	}
}
