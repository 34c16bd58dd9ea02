package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestApplyEnvOverrides(t *testing.T) {
	cfg := DefaultConfig(ProfileRuntime)
	ApplyEnvOverrides(&cfg, envMap(map[string]string{
		EnvLogLevel:     " Warning ",
		EnvLogTimestamp: "false",
		EnvLogNoColor:   "1",
	}))
	assert.Equal(t, Config{Level: zerolog.WarnLevel, Timestamp: false, NoColor: true}, cfg)
}

func TestApplyEnvOverrides_IgnoresGarbage(t *testing.T) {
	cfg := DefaultConfig(ProfileTest)
	want := cfg
	ApplyEnvOverrides(&cfg, envMap(map[string]string{
		EnvLogLevel:   "loud",
		EnvLogNoColor: "maybe",
	}))
	assert.Equal(t, want, cfg)
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "zklink-test", Config{Level: zerolog.InfoLevel, NoColor: true})

	logger.Debug().Msg("hidden")
	logger.Info().Str("chain", "1").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "app=zklink-test")
	assert.Contains(t, out, "chain=1")
}
