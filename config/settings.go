package config

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings is the recognized runtime options record
type Settings struct {
	MouseSensitivity float64 `yaml:"mouseSensitivity"` // Look multiplier
	MovementSpeed    float64 `yaml:"movementSpeed"`    // World units/frame base
	InvertMouse      bool    `yaml:"invertMouse"`
	FieldOfView      float64 `yaml:"fieldOfView"` // Degrees, base
	ShowFPS          bool    `yaml:"showFps"`     // Consumed by the display layer only
}

// DefaultSettings returns the default options
func DefaultSettings() *Settings {
	return &Settings{
		MouseSensitivity: 0.002,
		MovementSpeed:    0.12,
		InvertMouse:      false,
		FieldOfView:      70,
		ShowFPS:          true,
	}
}

// SettingsManager loads and saves settings through a key-value store.
// A nil store manager means in-memory defaults only (degraded mode)
type SettingsManager struct {
	store    *gdata.Manager
	settings *Settings
}

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager creates a manager and attempts to load saved
// settings; a failed load falls back to defaults and returns the error
func NewSettingsManager(store *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		store:    store,
		settings: DefaultSettings(),
	}
	err := sm.Load()
	return sm, err
}

// Load reads settings from the store, keeping defaults when the store
// is nil or holds no settings yet
func (sm *SettingsManager) Load() error {
	if sm.store == nil {
		sm.settings = DefaultSettings()
		return nil
	}
	if !sm.store.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loaded
	return nil
}

// Save persists the current settings; a nil store is a silent no-op
func (sm *SettingsManager) Save() error {
	if sm.store == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// Settings returns the current settings record
func (sm *SettingsManager) Settings() *Settings {
	return sm.settings
}
