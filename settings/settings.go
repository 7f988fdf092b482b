// Package settings persists the small set of user-facing options (shell
// language and fullscreen) across runs. Storage is cross-platform via gdata;
// a nil manager degrades to in-memory settings so the game still runs when
// the data dir is unwritable.
package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Language selects the shell's message table. Combat text stays English.
type Language string

const (
	LangEnglish Language = "en"
	LangTurkish Language = "tr"
)

type Settings struct {
	Language   Language `yaml:"language"`
	Fullscreen bool     `yaml:"fullscreen"`
}

func Defaults() *Settings {
	return &Settings{
		Language:   LangEnglish,
		Fullscreen: false,
	}
}

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// Manager owns the current settings and their persistence.
type Manager struct {
	store    *gdata.Manager
	settings *Settings
}

// NewManager loads saved settings, falling back to defaults if nothing is
// saved yet or the store is nil.
func NewManager(store *gdata.Manager) *Manager {
	m := &Manager{
		store:    store,
		settings: Defaults(),
	}
	if err := m.Load(); err != nil {
		log.Printf("settings: load failed, using defaults: %v", err)
	}
	return m
}

func (m *Manager) Load() error {
	if m.store == nil {
		m.settings = Defaults()
		return nil
	}
	if !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		m.settings = Defaults()
		return nil
	}

	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		m.settings = Defaults()
		return fmt.Errorf("load settings: %w", err)
	}

	loaded := Defaults()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		m.settings = Defaults()
		return fmt.Errorf("unmarshal settings: %w", err)
	}
	if loaded.Language != LangEnglish && loaded.Language != LangTurkish {
		loaded.Language = LangEnglish
	}

	m.settings = loaded
	return nil
}

func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}
	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func (m *Manager) Get() *Settings {
	return m.settings
}

func (m *Manager) SetLanguage(lang Language) {
	if lang != LangEnglish && lang != LangTurkish {
		lang = LangEnglish
	}
	m.settings.Language = lang
}

func (m *Manager) SetFullscreen(enabled bool) {
	m.settings.Fullscreen = enabled
}
