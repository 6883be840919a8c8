package presentation

import (
	"strings"
	"testing"
	"time"

	"terabox-dl-bot/internal/fetcher"

	"github.com/stretchr/testify/assert"
)

func TestFormatSize(t *testing.T) {
	cases := []struct {
		size int64
		want string
	}{
		{512, "512 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{5 * 1024 * 1024, "5.00 MB"},
		{3 * 1024 * 1024 * 1024, "3.00 GB"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatSize(tc.size))
	}
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, strings.Repeat("⊙", 10), progressBar(0))
	assert.Equal(t, strings.Repeat("⬤", 5)+strings.Repeat("⊙", 5), progressBar(50))
	assert.Equal(t, strings.Repeat("⬤", 10), progressBar(100))
	assert.Equal(t, strings.Repeat("⬤", 10), progressBar(120))
}

func TestProgressMsg(t *testing.T) {
	progress := fetcher.TransferProgress{
		BytesDone:   5 * 1024 * 1024,
		BytesTotal:  10 * 1024 * 1024,
		Elapsed:     10 * time.Second,
		BytesPerSec: 512 * 1024,
		Percent:     50,
	}

	msg := ProgressMsg("clip", progress, "<a href='tg://user?id=42'>Alice</a>", 42)

	assert.Contains(t, msg, "<b>clip</b>")
	assert.Contains(t, msg, "50.00%")
	assert.Contains(t, msg, "5.00 MB of 10.00 MB")
	assert.Contains(t, msg, "512.00 KB/s")
	assert.Contains(t, msg, "<code>42</code>")
	assert.Contains(t, msg, progressBar(50))
}

func TestVideoCaptionMsg(t *testing.T) {
	msg := VideoCaptionMsg("clip", 10*1024*1024, "mention", 42)

	assert.Contains(t, msg, "📂 clip")
	assert.Contains(t, msg, "10.00 MB")
	assert.Contains(t, msg, "tg://user?id=42")
}
