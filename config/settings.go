package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Settings represents the application configuration persisted to disk.
type Settings struct {
	Server ServerSettings `json:"server"`
	Guide  GuideSettings  `json:"guide"`
	Relay  RelaySettings  `json:"relay"`
	UI     UISettings     `json:"ui"`
	Log    LogConfig      `json:"log"`
}

type ServerSettings struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// GuideSettings controls TV guide fetching and caching. Sources are tried in
// order; the first one that yields a usable guide wins.
type GuideSettings struct {
	Sources         []string `json:"sources"`
	CacheTTLMinutes int      `json:"cacheTtlMinutes"`
	FetchTimeoutSec int      `json:"fetchTimeoutSec"`
	Timezone        string   `json:"timezone"`
}

// RelaySettings controls the audio stream proxy.
type RelaySettings struct {
	TimeoutSec int `json:"timeoutSec"`
}

type UISettings struct {
	StaticDir string `json:"staticDir"`
}

// LogConfig represents logging configuration.
type LogConfig struct {
	File       string `json:"file"`
	MaxSize    int    `json:"maxSize"`
	MaxAge     int    `json:"maxAge"`
	MaxBackups int    `json:"maxBackups"`
	Compress   bool   `json:"compress"`
}

// DefaultSettings returns the configuration used when no settings file exists.
func DefaultSettings() Settings {
	return Settings{
		Server: ServerSettings{
			Host: "0.0.0.0",
			Port: 5000,
		},
		Guide: GuideSettings{
			Sources: []string{
				"http://xmltv.net/xml_files/Lismore.xml",
				"https://xmltv.net/xml_files/Lismore.xml",
				"http://xmltv.net/xml_files/Northern_NSW.xml",
				"https://xmltv.net/xml_files/Northern_NSW.xml",
			},
			CacheTTLMinutes: 60,
			FetchTimeoutSec: 15,
			Timezone:        "Australia/Sydney",
		},
		Relay: RelaySettings{
			TimeoutSec: 30,
		},
		UI: UISettings{
			StaticDir: "static",
		},
		Log: LogConfig{
			File:       "",
			MaxSize:    10,
			MaxAge:     14,
			MaxBackups: 3,
			Compress:   true,
		},
	}
}

// Manager loads and persists settings to a JSON file.
type Manager struct {
	path string
}

func NewManager(configPath string) *Manager {
	return &Manager{path: configPath}
}

// EnsureDir ensures parent directory exists.
func (m *Manager) EnsureDir() error {
	dir := filepath.Dir(m.path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// Load reads settings.json from disk or creates defaults if missing.
func (m *Manager) Load() (Settings, error) {
	if m.path == "" {
		return Settings{}, errors.New("config path not set")
	}
	if _, err := os.Stat(m.path); errors.Is(err, fs.ErrNotExist) {
		defaults := DefaultSettings()
		if err := m.Save(defaults); err != nil {
			return Settings{}, err
		}
		return defaults, nil
	}
	f, err := os.Open(m.path)
	if err != nil {
		return Settings{}, err
	}
	defer f.Close()

	var s Settings
	if err := json.NewDecoder(f).Decode(&s); err != nil {
		return Settings{}, err
	}

	// Backfill defaults when the config predates a setting
	defaults := DefaultSettings()
	if len(s.Guide.Sources) == 0 {
		s.Guide.Sources = defaults.Guide.Sources
	}
	if s.Guide.CacheTTLMinutes <= 0 {
		s.Guide.CacheTTLMinutes = defaults.Guide.CacheTTLMinutes
	}
	if s.Guide.FetchTimeoutSec <= 0 {
		s.Guide.FetchTimeoutSec = defaults.Guide.FetchTimeoutSec
	}
	if s.Guide.Timezone == "" {
		s.Guide.Timezone = defaults.Guide.Timezone
	}
	if s.Relay.TimeoutSec <= 0 {
		s.Relay.TimeoutSec = defaults.Relay.TimeoutSec
	}
	if s.UI.StaticDir == "" {
		s.UI.StaticDir = defaults.UI.StaticDir
	}

	return s, nil
}

// Save writes the provided settings to disk atomically.
func (m *Manager) Save(s Settings) error {
	if m.path == "" {
		return errors.New("config path not set")
	}
	if err := m.EnsureDir(); err != nil {
		return err
	}
	tmp := m.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, m.path)
}
