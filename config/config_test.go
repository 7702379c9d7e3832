package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PREVIEW", "")
	t.Setenv("THRESHOLD", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 127, cfg.Threshold)
	require.InDelta(t, 0.01, cfg.EpsilonFactor, 1e-12)
	require.Equal(t, "raster", cfg.VisionBackend)
	require.Equal(t, "permutation", cfg.BorderStrategy)
	require.Equal(t, "polygon", cfg.PathPolicy)
	require.Equal(t, "window", cfg.Preview)
	require.Equal(t, "#ff0000", cfg.MarkerColor)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("THRESHOLD", "90")
	t.Setenv("EPSILON_FACTOR", "0.04")
	t.Setenv("BORDER_STRATEGY", "sort")
	t.Setenv("PATH_POLICY", "any")
	t.Setenv("PREVIEW", "telegram")
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("TELEGRAM_CHAT_ID", "-100123")
	t.Setenv("MARKER_COLOR", "#0f0")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 90, cfg.Threshold)
	require.InDelta(t, 0.04, cfg.EpsilonFactor, 1e-12)
	require.Equal(t, "sort", cfg.BorderStrategy)
	require.Equal(t, "any", cfg.PathPolicy)
	require.Equal(t, int64(-100123), cfg.TelegramChatID)
	require.Equal(t, "#0f0", cfg.MarkerColor)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string][2]string{
		"threshold range":   {"THRESHOLD", "300"},
		"threshold parse":   {"THRESHOLD", "high"},
		"epsilon zero":      {"EPSILON_FACTOR", "0"},
		"epsilon parse":     {"EPSILON_FACTOR", "x"},
		"unknown backend":   {"VISION_BACKEND", "cuda"},
		"unknown strategy":  {"BORDER_STRATEGY", "random"},
		"unknown policy":    {"PATH_POLICY", "maybe"},
		"unknown preview":   {"PREVIEW", "hologram"},
		"file without path": {"PREVIEW", "file"},
		"telegram no token": {"PREVIEW", "telegram"},
		"bad color":         {"PATH_COLOR", "yellow"},
		"short alpha color": {"MARKER_COLOR", "#f00f"},
		"alpha color":       {"PATH_COLOR", "#ffff00ff"},
		"bad level":         {"LOG_LEVEL", "loud"},
		"negative area":     {"MIN_AREA", "-1"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("PREVIEW_FILE", "")
			t.Setenv("TELEGRAM_TOKEN", "")
			t.Setenv(kv[0], kv[1])

			_, err := Load()
			require.Error(t, err)
		})
	}
}
