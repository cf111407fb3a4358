package services

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/sbml2biopax/internal/core/domain"
	"github.com/custodia-labs/sbml2biopax/internal/core/ports/driving"
	"github.com/custodia-labs/sbml2biopax/internal/logger"
)

// Ensure WatchService implements the interface.
var _ driving.WatchService = (*WatchService)(nil)

// WatchService re-converts an input file whenever it changes.
type WatchService struct {
	converter driving.ConversionService
	settings  driving.SettingsService
}

// NewWatchService creates a new watch service.
func NewWatchService(converter driving.ConversionService, settings driving.SettingsService) *WatchService {
	return &WatchService{
		converter: converter,
		settings:  settings,
	}
}

// Watch converts once, then again after each burst of changes to
// inputPath settles for the configured debounce interval. It returns nil
// when ctx is cancelled. Failed runs are reported through onResult and
// never stop the loop.
func (s *WatchService) Watch(
	ctx context.Context,
	inputPath, outputPath string,
	onResult func(*domain.ConversionReport, error),
) error {
	settings, err := s.settings.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	debounce := time.Duration(settings.Watch.DebounceMillis) * time.Millisecond

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory; events are filtered to the input file.
	target := filepath.Clean(inputPath)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", inputPath, err)
	}
	logger.Info("watching %s (debounce %s)", inputPath, debounce)

	run := func() {
		report, err := s.converter.Convert(ctx, inputPath, outputPath)
		if ctx.Err() != nil {
			return
		}
		onResult(report, err)
	}
	run()

	timer := time.NewTimer(debounce)
	timer.Stop()
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
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
			logger.Debug("change detected: %s", event)
			timer.Reset(debounce)
			pending = timer.C

		case <-pending:
			pending = nil
			run()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			onResult(nil, fmt.Errorf("watch %s: %w", inputPath, err))
		}
	}
}
