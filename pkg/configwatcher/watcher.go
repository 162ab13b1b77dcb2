package configwatcher

import (
	"context"
	"path/filepath"
	"time"

	"phish_trainer/internal/config"
	"phish_trainer/pkg/logger"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Reloader receives each successfully reloaded configuration.
type Reloader func(cfg *config.Config)

const debounce = time.Second

// Watch reloads config.yaml from dir after it changes and hands the result
// to reload. Bursts of writes within a second cause one reload. Watch blocks
// until ctx is done.
func Watch(ctx context.Context, dir string, reload Reloader) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	// editors often replace the file, so watch the directory
	if err := watcher.Add(absDir); err != nil {
		return err
	}
	target := filepath.Join(absDir, "config.yaml")

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(debounce)
		case <-timer.C:
			newCfg, err := config.LoadConfig(dir)
			if err != nil {
				logger.Log.Error("Failed to reload config", zap.Error(err))
				continue
			}
			logger.Log.Info("Config reloaded", zap.String("path", target))
			reload(newCfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Log.Error("Config watcher error", zap.Error(err))
		}
	}
}
