package container

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"fingermachine/config"
	"fingermachine/internal/infrastructure/render"
	"fingermachine/internal/infrastructure/vision"
	"fingermachine/pkg/log"
)

func testConfig() *config.Config {
	return &config.Config{
		Threshold:      127,
		EpsilonFactor:  0.01,
		VisionBackend:  "raster",
		BorderStrategy: "permutation",
		PathPolicy:     "polygon",
		Preview:        "none",
		MarkerColor:    "#ff0000",
		PathColor:      "#ffff00",
	}
}

func TestNew(t *testing.T) {
	c, err := New(testConfig(), log.NewNop())
	require.NoError(t, err)
	require.NotNil(t, c.DetectionService)
	require.IsType(t, &vision.RasterContourFinder{}, c.Finder)
	require.Equal(t, render.PresenterNone, c.PreviewKind)
}

func TestNew_TelegramLogsBotName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if strings.HasSuffix(r.URL.Path, "/getMe") {
			fmt.Fprint(w, `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"fm","username":"fm_bot"}}`)
			return
		}
		fmt.Fprint(w, `{"ok":false,"error_code":404,"description":"Not Found"}`)
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.Preview = "telegram"
	cfg.TelegramToken = "test-token"
	cfg.TelegramEndpoint = server.URL + "/bot%s/%s"
	cfg.TelegramChatID = 42

	var buf bytes.Buffer
	logger, err := log.NewLogger(log.Options{Output: &buf, NoColors: true})
	require.NoError(t, err)

	c, err := New(cfg, logger.WithField("test", true))
	require.NoError(t, err)
	require.Equal(t, render.PresenterTelegram, c.PreviewKind)
	require.Contains(t, buf.String(), "fm_bot")
}

func TestNew_Errors(t *testing.T) {
	cfg := testConfig()
	cfg.VisionBackend = "cuda"
	_, err := New(cfg, log.NewNop())
	require.Error(t, err)

	cfg = testConfig()
	cfg.PathColor = "nope"
	_, err = New(cfg, log.NewNop())
	require.Error(t, err)

	cfg = testConfig()
	cfg.Preview = "file"
	_, err = New(cfg, log.NewNop())
	require.Error(t, err)
}
