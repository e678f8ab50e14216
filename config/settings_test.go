package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache", "settings.json")
	mgr := NewManager(path)

	settings, err := mgr.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if settings.Server.Port != 5000 {
		t.Errorf("default port = %d, want 5000", settings.Server.Port)
	}
	if len(settings.Guide.Sources) != 4 {
		t.Errorf("default sources = %d, want 4", len(settings.Guide.Sources))
	}
	if settings.Guide.Timezone != "Australia/Sydney" {
		t.Errorf("default timezone = %q", settings.Guide.Timezone)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("settings file not written: %v", err)
	}
}

func TestLoadBackfillsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	partial := `{"server": {"host": "127.0.0.1", "port": 8080}}`
	if err := os.WriteFile(path, []byte(partial), 0o644); err != nil {
		t.Fatal(err)
	}

	settings, err := NewManager(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if settings.Server.Port != 8080 {
		t.Errorf("port = %d, want the configured 8080", settings.Server.Port)
	}
	if len(settings.Guide.Sources) == 0 {
		t.Error("guide sources not backfilled")
	}
	if settings.Guide.CacheTTLMinutes != 60 {
		t.Errorf("cache TTL = %d, want backfilled 60", settings.Guide.CacheTTLMinutes)
	}
	if settings.Relay.TimeoutSec != 30 {
		t.Errorf("relay timeout = %d, want backfilled 30", settings.Relay.TimeoutSec)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	mgr := NewManager(path)

	s := DefaultSettings()
	s.Server.Port = 9000
	s.Guide.CacheTTLMinutes = 15
	if err := mgr.Save(s); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := mgr.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Server.Port != 9000 || loaded.Guide.CacheTTLMinutes != 15 {
		t.Errorf("round trip lost changes: %+v", loaded)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind after save")
	}
}

func TestChannelDirectory(t *testing.T) {
	channels := Channels()

	if len(channels) != 54 {
		t.Errorf("directory has %d channels, want 54", len(channels))
	}

	audio := 0
	for lcn, ch := range channels {
		if ch.LCN != lcn {
			t.Errorf("channel %d carries mismatched LCN %d", lcn, ch.LCN)
		}
		if ch.Name == "" || ch.Stream == "" {
			t.Errorf("channel %d missing name or stream", lcn)
		}
		if ch.IsAudioOnly {
			audio++
		}
	}
	if audio != 17 {
		t.Errorf("%d audio channels, want 17", audio)
	}

	// Every relayed upstream has a matching directory entry that points the
	// player back through the proxy.
	for lcn := range RelayUpstreams() {
		ch, ok := channels[lcn]
		if !ok {
			t.Errorf("relay channel %d missing from directory", lcn)
			continue
		}
		if !ch.IsAudioOnly {
			t.Errorf("relay channel %d not marked audio-only", lcn)
		}
	}
}
