package fetcher

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"terabox-dl-bot/internal/pkg/config"
	"time"
)

type Service interface {
	Resolve(ctx context.Context, sourceURL string) (DirectLink, error)
	Stream(ctx context.Context, req TransferRequest, onProgress ProgressFunc) (*TransferResult, error)
}

// DefaultService holds no state between transfers; concurrent calls need no
// locking. Clients and the clock are injected so tests can use fake
// transports and deterministic time.
type DefaultService struct {
	cfg         *config.FetcherCfg
	resolveHTTP *http.Client
	streamHTTP  *http.Client
	now         func() time.Time
}

func NewDefaultService(cfg *config.FetcherCfg, resolveHTTP, streamHTTP *http.Client, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &DefaultService{
		cfg:         cfg,
		resolveHTTP: resolveHTTP,
		streamHTTP:  streamHTTP,
		now:         now,
	}
}

// Stream downloads req.SourceURL into req.DestinationPath with
// truncate-create semantics. The handle is released on every exit path; on
// failure any partial file is left on disk and the caller is responsible for
// deleting it.
func (d *DefaultService) Stream(ctx context.Context, req TransferRequest, onProgress ProgressFunc) (*TransferResult, error) {
	out, err := os.Create(req.DestinationPath)
	if err != nil {
		return nil, &TransferError{Reason: "failed to create destination file", Err: err}
	}
	defer out.Close()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.SourceURL, nil)
	if err != nil {
		return nil, &TransferError{Reason: "failed to build download request", Err: err}
	}

	resp, err := d.streamHTTP.Do(httpReq)
	if err != nil {
		return nil, &TransferError{Reason: "download request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &TransferError{Reason: "unexpected download status " + resp.Status}
	}

	if resp.ContentLength < 0 {
		return d.streamBuffered(req, resp.Body, out)
	}

	total := resp.ContentLength
	var done int64
	var watermark float64
	start := d.now()
	buf := make([]byte, d.cfg.ChunkSize)

	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, writeErr := out.Write(buf[:n]); writeErr != nil {
				return nil, &TransferError{Reason: "failed to write chunk", Err: writeErr}
			}
			done += int64(n)

			elapsed := d.now().Sub(start)
			percent := 100 * float64(done) / float64(total)
			if percent-watermark >= d.cfg.CadencePercent {
				progress := TransferProgress{
					BytesDone:   done,
					BytesTotal:  total,
					Elapsed:     elapsed,
					BytesPerSec: throughput(done, elapsed),
					Percent:     percent,
				}
				if err := onProgress(progress); err != nil {
					slog.Warn("Progress update failed", "error", err, "title", req.DisplayName)
				}
				// Watermark moves to the current percentage, not by the
				// threshold, so fractional drift does not compound.
				watermark = percent
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, &TransferError{Reason: "download interrupted", Err: readErr}
		}
	}

	return &TransferResult{
		LocalPath:   req.DestinationPath,
		DisplayName: req.DisplayName,
		TotalBytes:  done,
	}, nil
}

// streamBuffered handles responses without a Content-Length header. The whole
// body is buffered and written in one shot; no progress events are possible.
func (d *DefaultService) streamBuffered(req TransferRequest, body io.Reader, out *os.File) (*TransferResult, error) {
	limit := d.cfg.MaxBufferBytes
	data, err := io.ReadAll(io.LimitReader(body, limit+1))
	if err != nil {
		return nil, &TransferError{Reason: "failed to buffer response body", Err: err}
	}
	if int64(len(data)) > limit {
		return nil, &TransferError{Reason: "response without content-length exceeds buffer limit"}
	}

	if _, err := out.Write(data); err != nil {
		return nil, &TransferError{Reason: "failed to write buffered body", Err: err}
	}

	slog.Info("Downloaded without content-length", "title", req.DisplayName, "bytes", len(data))

	return &TransferResult{
		LocalPath:   req.DestinationPath,
		DisplayName: req.DisplayName,
		TotalBytes:  int64(len(data)),
	}, nil
}

func throughput(done int64, elapsed time.Duration) float64 {
	seconds := elapsed.Seconds()
	if seconds <= 0 {
		return 0
	}
	return float64(done) / seconds
}
