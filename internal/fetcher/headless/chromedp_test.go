package headless

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/JakeFAU/contact-scraper/internal/fetcher"
)

func TestNewAppliesDefaults(t *testing.T) {
	t.Parallel()

	f := New(Config{}, nil)
	assert.Equal(t, fetcher.DefaultUserAgent, f.cfg.UserAgent)
	assert.Equal(t, 10*time.Second, f.cfg.WaitTimeout)
	assert.Equal(t, defaultLoadTimeout, f.cfg.LoadTimeout)
	require.NotNil(t, f.logger)
}

func TestNewKeepsOverrides(t *testing.T) {
	t.Parallel()

	f := New(Config{UserAgent: "custom", WaitTimeout: time.Second, LoadTimeout: 2 * time.Second}, zap.NewNop())
	assert.Equal(t, "custom", f.cfg.UserAgent)
	assert.Equal(t, time.Second, f.cfg.WaitTimeout)
	assert.Equal(t, 2*time.Second, f.cfg.LoadTimeout)
}

func TestAllocatorOptionsIncludeExecPath(t *testing.T) {
	t.Parallel()

	base := New(Config{}, nil).allocatorOptions()
	withPath := New(Config{ExecPath: "/usr/bin/chromium"}, nil).allocatorOptions()
	assert.Len(t, withPath, len(base)+1)
}

func TestResponseMetaCaptureAndFallbacks(t *testing.T) {
	t.Parallel()

	meta := newResponseMeta()
	meta.captureEvent(&network.EventResponseReceived{
		Type: network.ResourceTypeImage,
		Response: &network.Response{
			Status: 404,
			URL:    "https://example.com/missing.png",
		},
	})
	meta.captureEvent(&network.EventResponseReceived{
		Type: network.ResourceTypeDocument,
		Response: &network.Response{
			Status: 203,
			URL:    "https://example.com/rendered",
		},
	})
	status, url := meta.snapshotWithFallbacks("https://req", "https://final")
	assert.Equal(t, 203, status)
	assert.Equal(t, "https://example.com/rendered", url)

	meta = newResponseMeta()
	status, url = meta.snapshotWithFallbacks("https://req", "https://final")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "https://final", url)

	_, url = meta.snapshotWithFallbacks("https://req", "")
	assert.Equal(t, "https://req", url)
}

func TestFetchRendersScriptContent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<!doctype html><html><body><script>document.body.innerHTML = '<div id="late">Call 555-123-4567</div>';</script></body></html>`)
	}))
	defer srv.Close()

	f := New(Config{LoadTimeout: 20 * time.Second}, zap.NewNop())
	page, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Skipf("chromedp unavailable: %v", err)
	}
	assert.True(t, page.Rendered)
	assert.Equal(t, http.StatusOK, page.StatusCode)
	if !strings.Contains(page.HTML, "late") {
		t.Fatal("rendered body missing dynamic content")
	}
}
