package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "https://story-api.dicoding.dev/v1", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
	assert.Empty(t, cfg.DataDir)
	assert.NotEmpty(t, cfg.PushEndpointBase)
}

func TestParseJson_OverlaysValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"api_base_url": "http://localhost:8080/v1",
		"data_dir": "/tmp/sk",
		"online_check_interval": "10s"
	}`), 0o600))

	oldArgs := os.Args
	os.Args = []string{"storykeeper", "-c", path}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "http://localhost:8080/v1", cfg.APIBaseURL)
	assert.Equal(t, "/tmp/sk", cfg.DataDir)
	assert.Equal(t, 10*time.Second, cfg.OnlineCheckInterval)
	// untouched fields keep their defaults
	assert.NotEmpty(t, cfg.PushEndpointBase)
}

func TestParseFlags_Overrides(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"storykeeper", "-a", "http://localhost:9090/v1", "-i", "7"}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "http://localhost:9090/v1", cfg.APIBaseURL)
	assert.Equal(t, 7*time.Second, cfg.OnlineCheckInterval)
}

func TestJsonConfigRoundTrip(t *testing.T) {
	jc := JsonConfig{APIBaseURL: "http://x"}
	raw, err := json.Marshal(jc)
	require.NoError(t, err)

	var back JsonConfig
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, jc.APIBaseURL, back.APIBaseURL)
}
