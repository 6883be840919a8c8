package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"terabox-dl-bot/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu   sync.Mutex
	t    time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(c.step)
	return c.t
}

func testConfig(url string) *config.FetcherCfg {
	return &config.FetcherCfg{
		ResolverURL:    url,
		ChunkSize:      4096,
		CadencePercent: 7,
		MaxBufferBytes: 1 << 20,
	}
}

func newTestService(cfg *config.FetcherCfg, now func() time.Time) Service {
	return NewDefaultService(cfg, http.DefaultClient, http.DefaultClient, now)
}

func TestStream_EmitsProgressAtCadence(t *testing.T) {
	body := make([]byte, 100*4096)
	for i := range body {
		body[i] = byte(i)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	clk := &fakeClock{t: time.Unix(0, 0), step: 10 * time.Millisecond}
	svc := newTestService(testConfig(""), clk.Now)

	dest := filepath.Join(t.TempDir(), "video.mp4")
	var events []TransferProgress
	result, err := svc.Stream(context.Background(), TransferRequest{SourceURL: srv.URL, DestinationPath: dest, DisplayName: "clip"}, func(p TransferProgress) error {
		events = append(events, p)
		return nil
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, int64(len(body)), result.TotalBytes)
	assert.Equal(t, dest, result.LocalPath)
	assert.Equal(t, "clip", result.DisplayName)

	written, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, body, written)

	require.NotEmpty(t, events)
	assert.GreaterOrEqual(t, events[0].Percent, 7.0)
	for i, p := range events {
		assert.Equal(t, int64(len(body)), p.BytesTotal)
		assert.GreaterOrEqual(t, p.BytesPerSec, 0.0)
		if i > 0 {
			// one notification per crossed cadence boundary, never two
			assert.GreaterOrEqual(t, p.Percent-events[i-1].Percent, 7.0)
			assert.Greater(t, p.BytesDone, events[i-1].BytesDone)
		}
	}
	assert.LessOrEqual(t, events[len(events)-1].Percent, 100.0)
}

func TestStream_ZeroElapsedReportsZeroThroughput(t *testing.T) {
	body := make([]byte, 50*4096)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	frozen := time.Unix(42, 0)
	svc := newTestService(testConfig(""), func() time.Time { return frozen })

	dest := filepath.Join(t.TempDir(), "video.mp4")
	var events []TransferProgress
	_, err := svc.Stream(context.Background(), TransferRequest{SourceURL: srv.URL, DestinationPath: dest, DisplayName: "clip"}, func(p TransferProgress) error {
		events = append(events, p)
		return nil
	})
	require.NoError(t, err)

	require.NotEmpty(t, events)
	for _, p := range events {
		assert.Zero(t, p.BytesPerSec)
	}
}

func TestStream_NoContentLengthBuffersWholeBody(t *testing.T) {
	body := []byte("tiny video payload without a declared length")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// flushing before the body is complete forces chunked encoding
		_, _ = w.Write(body[:10])
		w.(http.Flusher).Flush()
		_, _ = w.Write(body[10:])
	}))
	defer srv.Close()

	svc := newTestService(testConfig(""), nil)

	dest := filepath.Join(t.TempDir(), "video.mp4")
	var notifications int
	result, err := svc.Stream(context.Background(), TransferRequest{SourceURL: srv.URL, DestinationPath: dest, DisplayName: "clip"}, func(TransferProgress) error {
		notifications++
		return nil
	})
	require.NoError(t, err)

	assert.Zero(t, notifications)
	assert.Equal(t, int64(len(body)), result.TotalBytes)

	written, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, body, written)
}

func TestStream_BufferLimitExceeded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("0123456789"))
		w.(http.Flusher).Flush()
		_, _ = w.Write([]byte("0123456789"))
	}))
	defer srv.Close()

	cfg := testConfig("")
	cfg.MaxBufferBytes = 10
	svc := newTestService(cfg, nil)

	dest := filepath.Join(t.TempDir(), "video.mp4")
	result, err := svc.Stream(context.Background(), TransferRequest{SourceURL: srv.URL, DestinationPath: dest, DisplayName: "clip"}, discardProgress)

	assert.Nil(t, result)
	var transferErr *TransferError
	require.ErrorAs(t, err, &transferErr)
}

func TestStream_MidStreamFailureLeavesPartialFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", strconv.Itoa(2*4096))
		_, _ = w.Write(make([]byte, 4096))
		w.(http.Flusher).Flush()
		panic(http.ErrAbortHandler)
	}))
	defer srv.Close()

	svc := newTestService(testConfig(""), nil)

	dest := filepath.Join(t.TempDir(), "video.mp4")
	result, err := svc.Stream(context.Background(), TransferRequest{SourceURL: srv.URL, DestinationPath: dest, DisplayName: "clip"}, discardProgress)

	assert.Nil(t, result)
	var transferErr *TransferError
	require.ErrorAs(t, err, &transferErr)

	// partial bytes stay on disk, deleting them is the caller's job
	info, statErr := os.Stat(dest)
	require.NoError(t, statErr)
	assert.Equal(t, int64(4096), info.Size())
}

func TestStream_ProgressDeliveryFailureIsSwallowed(t *testing.T) {
	body := make([]byte, 100*4096)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	svc := newTestService(testConfig(""), nil)

	dest := filepath.Join(t.TempDir(), "video.mp4")
	result, err := svc.Stream(context.Background(), TransferRequest{SourceURL: srv.URL, DestinationPath: dest, DisplayName: "clip"}, func(TransferProgress) error {
		return errors.New("message can no longer be edited")
	})

	require.NoError(t, err)
	assert.Equal(t, int64(len(body)), result.TotalBytes)
}

func TestStream_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	svc := newTestService(testConfig(""), nil)

	result, err := svc.Stream(context.Background(), TransferRequest{SourceURL: srv.URL, DestinationPath: filepath.Join(t.TempDir(), "v.mp4"), DisplayName: "clip"}, discardProgress)

	assert.Nil(t, result)
	var transferErr *TransferError
	require.ErrorAs(t, err, &transferErr)
}

func TestStream_DestinationNotWritable(t *testing.T) {
	svc := newTestService(testConfig(""), nil)

	result, err := svc.Stream(context.Background(), TransferRequest{SourceURL: "http://127.0.0.1:0", DestinationPath: filepath.Join(t.TempDir(), "missing", "v.mp4"), DisplayName: "clip"}, discardProgress)

	assert.Nil(t, result)
	var transferErr *TransferError
	require.ErrorAs(t, err, &transferErr)
}

func discardProgress(TransferProgress) error {
	return nil
}
