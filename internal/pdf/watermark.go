package pdf

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	_ "image/jpeg"
	_ "image/png"

	"github.com/kambeshwar/creditnote_backend/internal/middleware"
)

// maxWatermarkBytes caps the logo download; anything bigger is not a logo.
const maxWatermarkBytes = 5 << 20

type watermarkState int

const (
	watermarkUnfetched watermarkState = iota
	watermarkReady
	watermarkAbsent
)

// Watermark holds the decoded logo image placed behind every document.
type Watermark struct {
	Data      []byte
	ImageType string // fpdf image type: "PNG" or "JPG"
	Width     int
	Height    int
}

// WatermarkCache fetches the logo once and remembers the outcome for the
// lifetime of the process. A failed or non-image fetch means documents render
// without a watermark; it is never retried.
type WatermarkCache struct {
	url    string
	client *http.Client

	mu    sync.Mutex
	state watermarkState
	image *Watermark
}

// NewWatermarkCache creates a cache for the logo at url. An empty url yields
// a cache that always reports no watermark.
func NewWatermarkCache(url string) *WatermarkCache {
	return &WatermarkCache{
		url:    url,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Image returns the cached watermark, fetching it on first call.
// Returns nil when no usable watermark exists.
func (c *WatermarkCache) Image(ctx context.Context) *Watermark {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == watermarkUnfetched {
		img, err := c.fetch(ctx)
		if err != nil {
			middleware.GetLoggerFromCtx(ctx).Warn("Watermark fetch failed, documents will render without it",
				slog.String("url", c.url),
				slog.String("error", err.Error()))
			c.state = watermarkAbsent
		} else {
			c.image = img
			c.state = watermarkReady
		}
	}

	return c.image
}

func (c *WatermarkCache) fetch(ctx context.Context) (*Watermark, error) {
	if c.url == "" {
		return nil, fmt.Errorf("no watermark URL configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build watermark request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch watermark: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("watermark fetch returned status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "image/") {
		return nil, fmt.Errorf("watermark content type %q is not an image", ct)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxWatermarkBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read watermark body: %w", err)
	}
	if len(data) > maxWatermarkBytes {
		return nil, fmt.Errorf("watermark exceeds %d bytes", maxWatermarkBytes)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("watermark is not a decodable image: %w", err)
	}

	var imageType string
	switch format {
	case "png":
		imageType = "PNG"
	case "jpeg":
		imageType = "JPG"
	default:
		return nil, fmt.Errorf("unsupported watermark format %q", format)
	}

	return &Watermark{
		Data:      data,
		ImageType: imageType,
		Width:     cfg.Width,
		Height:    cfg.Height,
	}, nil
}
