package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "glltail.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "putty.log", cfg.Watch)
	assert.Equal(t, "debug.log", cfg.Record)
	// The historical 1.01s default truncates to a whole second.
	assert.Equal(t, 1, cfg.IntervalS)
	assert.Nil(t, cfg.Color)
}

func TestLoad_OverridesAndDefaults(t *testing.T) {
	path := writeTempConfig(t, "watch: gps.log\ninterval_s: 5\nutc_offset_hours: 8\nshow_raw: true\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gps.log", cfg.Watch)
	assert.Equal(t, 5, cfg.IntervalS)
	assert.Equal(t, 8, cfg.UTCOffsetHours)
	assert.True(t, cfg.ShowRaw)
	// Unset keys keep their defaults.
	assert.Equal(t, "debug.log", cfg.Record)
}

func TestLoad_RejectsNegativeInterval(t *testing.T) {
	path := writeTempConfig(t, "interval_s: -1\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_RejectsSillyUTCOffset(t *testing.T) {
	path := writeTempConfig(t, "utc_offset_hours: 30\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestSeconds_TruncatesFractions(t *testing.T) {
	cases := map[string]int{
		"2.99": 2,
		"1.01": 1,
		"3":    3,
		"0.5":  0,
	}
	for in, want := range cases {
		var s Seconds
		require.NoError(t, s.Set(in), in)
		assert.Equal(t, want, int(s), in)
	}
}

func TestSeconds_RejectsGarbage(t *testing.T) {
	var s Seconds
	assert.Error(t, s.Set("abc"))
	assert.Error(t, s.Set("-1"))
	assert.Error(t, s.Set(""))
}
