package janitor

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"terabox-dl-bot/internal/pkg/config"
)

// Service periodically sweeps the videos directory for files left behind by
// crashed or interrupted transfers. Completed transfers delete their own
// file, so anything older than MaxAge is an orphan.
type Service interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
}

type DefaultService struct {
	cfg *config.JanitorCfg
	dir string
	wg  *sync.WaitGroup
}

func NewDefaultService(cfg *config.JanitorCfg, dir string) Service {
	return &DefaultService{
		cfg: cfg,
		dir: dir,
		wg:  &sync.WaitGroup{},
	}
}

func (d *DefaultService) Start(ctx context.Context) {
	ticker := time.Tick(d.cfg.Interval)

	d.wg.Add(1)
	go func() {
		for {
			select {
			case <-ctx.Done():
				d.wg.Done()
				return
			case <-ticker:
				d.sweep()
			}
		}
	}()

	slog.Info("Started janitor service", "dir", d.dir, "interval", d.cfg.Interval)
}

func (d *DefaultService) Stop(ctx context.Context) error {
	stop := make(chan struct{})
	go func() {
		d.wg.Wait()
		stop <- struct{}{}
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-stop:
		return nil
	}
}

func (d *DefaultService) sweep() {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		slog.Error("Failed to read videos directory", "error", err, "dir", d.dir)
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			slog.Error(err.Error())
			continue
		}

		if time.Since(info.ModTime()) < d.cfg.MaxAge {
			continue
		}

		path := filepath.Join(d.dir, entry.Name())
		if err := os.Remove(path); err != nil {
			slog.Error("Failed to remove orphaned file", "error", err, "path", path)
			continue
		}
		slog.Info("Removed orphaned file", "path", path)
	}
}
