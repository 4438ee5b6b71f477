package pdf_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/kambeshwar/creditnote_backend/internal/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 200, B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestWatermarkCache_FetchesOnce(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "image/png")
		w.Write(pngBytes(t))
	}))
	defer srv.Close()

	cache := pdf.NewWatermarkCache(srv.URL)
	ctx := context.Background()

	first := cache.Image(ctx)
	require.NotNil(t, first)
	assert.Equal(t, "PNG", first.ImageType)
	assert.Equal(t, 4, first.Width)
	assert.Equal(t, 4, first.Height)

	second := cache.Image(ctx)
	assert.Same(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "the logo must be fetched exactly once")
}

func TestWatermarkCache_NonImageContentTypeIsAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>not a logo</html>"))
	}))
	defer srv.Close()

	cache := pdf.NewWatermarkCache(srv.URL)
	assert.Nil(t, cache.Image(context.Background()))
}

func TestWatermarkCache_ErrorStatusIsAbsentAndNotRetried(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	cache := pdf.NewWatermarkCache(srv.URL)
	ctx := context.Background()

	assert.Nil(t, cache.Image(ctx))
	assert.Nil(t, cache.Image(ctx))
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "a failed fetch must not be retried")
}

func TestWatermarkCache_UndecodableImageIsAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("truncated garbage"))
	}))
	defer srv.Close()

	cache := pdf.NewWatermarkCache(srv.URL)
	assert.Nil(t, cache.Image(context.Background()))
}

func TestWatermarkCache_EmptyURLIsAbsent(t *testing.T) {
	cache := pdf.NewWatermarkCache("")
	assert.Nil(t, cache.Image(context.Background()))
}
