package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"countryexplorer/internal/eventbus"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	svc := NewConfigServiceAt(filepath.Join(t.TempDir(), "nope", "config.toml"))

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 300*time.Millisecond, cfg.Debounce())
	assert.Equal(t, 10*time.Second, cfg.Timeout())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigServiceAt(path)

	cfg := DefaultConfig()
	cfg.API.BaseURL = "http://localhost:8080/v3.1"
	cfg.UISettings.Region = "oceania"
	cfg.UISettings.RememberRegion = true
	cfg.MetricsAddr = ":9090"
	require.NoError(t, svc.Save(cfg))

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\nregion = \"asia\"\n"), 0644))

	cfg, err := NewConfigServiceAt(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "asia", cfg.UISettings.Region)
	assert.Equal(t, 300, cfg.UISettings.DebounceMS)
	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed", "[ui\nregion = 1"},
		{"zero debounce", "[ui]\ndebounce_ms = 0\n"},
		{"negative timeout", "[api]\ntimeout_ms = -5\n"},
		{"empty base url", "[api]\nbase_url = \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := NewConfigServiceAt(path).Load()
			assert.Error(t, err)
		})
	}
}

func TestSavePublishesConfigChanged(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	got := make(chan string, 1)
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		got <- e.(eventbus.ConfigChangedEvent).Region
	})

	svc := WithBus(NewConfigServiceAt(filepath.Join(t.TempDir(), "config.toml")), bus)
	cfg := DefaultConfig()
	cfg.UISettings.Region = "europe"
	require.NoError(t, svc.Save(cfg))

	select {
	case region := <-got:
		assert.Equal(t, "europe", region)
	case <-time.After(time.Second):
		t.Fatal("no ConfigChanged event")
	}
}
