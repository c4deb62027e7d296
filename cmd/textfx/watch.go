package main

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newWatchCmd(a *app) *cobra.Command {
	var (
		rf    requestFlags
		out   renderOutput
		delay time.Duration
	)
	cmd := &cobra.Command{
		Use:   "watch preset",
		Short: "Re-render a preset whenever it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := homedir.Expand(args[0])
			if err != nil {
				return err
			}
			path, err = filepath.Abs(path)
			if err != nil {
				return err
			}
			r, err := a.renderer()
			if err != nil {
				return err
			}
			render := func() {
				if err := a.renderPreset(cmd, r, &rf, path, out); err != nil {
					a.log.Error("render failed", zap.String("preset", path), zap.Error(err))
				}
			}

			w, err := fsnotify.NewWatcher()
			if err != nil {
				return err
			}
			defer w.Close()
			// Editors often replace the file, so watch its directory.
			if err := w.Add(filepath.Dir(path)); err != nil {
				return err
			}
			a.log.Info("watching", zap.String("preset", path), zap.Duration("delay", delay))

			render()
			changes := make(chan struct{}, 1)
			go forwardChanges(cmd.Context(), w, path, changes, a.log)
			coalesce(cmd.Context(), changes, delay, render)
			return nil
		},
	}
	rf.register(cmd)
	out.register(cmd)
	cmd.Flags().DurationVar(&delay, "delay", 150*time.Millisecond, "quiet period before re-rendering")
	return cmd
}

// forwardChanges signals on changes for every event that touches path.
// Signals are dropped while one is pending.
func forwardChanges(ctx context.Context, w *fsnotify.Watcher, path string, changes chan<- struct{}, log *zap.Logger) {
	defer close(changes)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != path || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			select {
			case changes <- struct{}{}:
			default:
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			if !errors.Is(err, fsnotify.ErrEventOverflow) {
				log.Warn("watch error", zap.Error(err))
			}
		}
	}
}

// coalesce calls fn once after each burst of signals on changes, when no
// new signal has arrived for delay. It returns when ctx is done or changes
// is closed.
func coalesce(ctx context.Context, changes <-chan struct{}, delay time.Duration, fn func()) {
	timer := time.NewTimer(delay)
	if !timer.Stop() {
		<-timer.C
	}
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case _, ok := <-changes:
			if !ok {
				timer.Stop()
				return
			}
			timer.Reset(delay)
			fire = timer.C
		case <-fire:
			fire = nil
			fn()
		}
	}
}
