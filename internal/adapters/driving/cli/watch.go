package cli

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/ns-engineering/contentbuild/internal/core/ports/driving"
	"github.com/ns-engineering/contentbuild/internal/logger"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild whenever content changes",
	Long: `Runs a build, then watches the content root and rebuilds after files
change. Bursts of changes are collapsed into one rebuild. A failed build
is reported and watching continues. Stop with Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "quiet period before rebuilding")
	rootCmd.AddCommand(watchCmd)
}

// watchEvents is the part of a file watcher the loop consumes.
type watchEvents struct {
	events <-chan fsnotify.Event
	errors <-chan error
	add    func(string) error
}

func runWatch(cmd *cobra.Command, _ []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	if err := watchTree(watcher.Add, settings.ContentRoot); err != nil {
		return fmt.Errorf("watch %s: %w", settings.ContentRoot, err)
	}
	logger.Info("watching %s for changes", settings.ContentRoot)

	src := watchEvents{events: watcher.Events, errors: watcher.Errors, add: watcher.Add}
	return watchLoop(cmd.Context(), newBuilder(settings, nil), src, cmd.OutOrStdout(), watchDebounce)
}

// watchTree adds root and every directory below it.
func watchTree(add func(string) error, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return add(path)
		}
		return nil
	})
}

// watchLoop builds once, then rebuilds after each quiet period that
// follows a relevant change. It returns nil when ctx is cancelled.
func watchLoop(ctx context.Context, builder driving.Builder, src watchEvents, out io.Writer, debounce time.Duration) error {
	rebuild := func() {
		report, err := builder.Build(ctx)
		if err != nil {
			if ctx.Err() == nil {
				logger.Error("build failed: %v", err)
			}
			return
		}
		printReport(out, report)
	}
	rebuild()

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-src.events:
			if !ok {
				return nil
			}
			if !relevantChange(ev) {
				continue
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := watchTree(src.add, ev.Name); err != nil {
						logger.Warn("could not watch %s: %v", ev.Name, err)
					}
				}
			}
			logger.Debug("changed: %s", ev)
			timer.Reset(debounce)

		case err, ok := <-src.errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)

		case <-timer.C:
			logger.Info("content changed, rebuilding")
			rebuild()
		}
	}
}

// relevantChange drops permission-only events and editor scratch files.
func relevantChange(ev fsnotify.Event) bool {
	if ev.Op == fsnotify.Chmod {
		return false
	}
	base := filepath.Base(ev.Name)
	return !strings.HasPrefix(base, ".") && !strings.HasSuffix(base, "~")
}
