package fetcher

import "time"

// DirectLink is a resolved, immediately fetchable URL for the media payload,
// together with the sanitized display title.
type DirectLink struct {
	URL   string
	Title string
}

// TransferRequest describes one transfer. It is created per invocation and
// never mutated; SourceURL is the already-resolved direct link.
type TransferRequest struct {
	SourceURL       string
	DestinationPath string
	DisplayName     string
}

// TransferProgress is a per-chunk snapshot of a running transfer.
// Percent is 0 when the total size is unknown.
type TransferProgress struct {
	BytesDone   int64
	BytesTotal  int64
	Elapsed     time.Duration
	BytesPerSec float64
	Percent     float64
}

type TransferResult struct {
	LocalPath   string
	DisplayName string
	TotalBytes  int64
}

// ProgressFunc receives progress snapshots. A non-nil return is logged and
// swallowed; it never aborts the transfer.
type ProgressFunc func(progress TransferProgress) error
