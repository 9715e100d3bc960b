package config

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func newTestStore(t *testing.T) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	m, err := gdata.Open(gdata.Config{AppName: "shootbox_test"})
	if err != nil {
		t.Fatalf("Failed to open gdata store: %v", err)
	}
	return m
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.MouseSensitivity <= 0 {
		t.Errorf("Expected positive default sensitivity, got %v", s.MouseSensitivity)
	}
	if s.MovementSpeed <= 0 {
		t.Errorf("Expected positive default movement speed, got %v", s.MovementSpeed)
	}
	if s.FieldOfView != 70 {
		t.Errorf("Expected default FOV 70, got %v", s.FieldOfView)
	}
	if s.InvertMouse {
		t.Error("Expected invert mouse off by default")
	}
}

func TestSettingsManagerNilStore(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}
	if sm.Settings().FieldOfView != 70 {
		t.Errorf("Expected defaults in degraded mode, got FOV %v", sm.Settings().FieldOfView)
	}
	if err := sm.Save(); err != nil {
		t.Errorf("Save with nil store should be a no-op, got %v", err)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	store := newTestStore(t)

	sm, err := NewSettingsManager(store)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	sm.Settings().MouseSensitivity = 0.005
	sm.Settings().InvertMouse = true
	sm.Settings().FieldOfView = 90
	if err := sm.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	reloaded, err := NewSettingsManager(store)
	if err != nil {
		t.Fatalf("Reload error: %v", err)
	}
	got := reloaded.Settings()
	if got.MouseSensitivity != 0.005 {
		t.Errorf("Expected sensitivity 0.005, got %v", got.MouseSensitivity)
	}
	if !got.InvertMouse {
		t.Error("Expected invert mouse persisted as true")
	}
	if got.FieldOfView != 90 {
		t.Errorf("Expected FOV 90, got %v", got.FieldOfView)
	}
}
