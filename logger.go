package textfx

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record and reports every level as disabled, so
// log calls cost nothing until SetLogger installs a real handler.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var (
	silent    = slog.New(discard{})
	activeLog atomic.Pointer[slog.Logger]
)

func init() { activeLog.Store(silent) }

// SetLogger routes textfx diagnostics to l; nil silences them again.
// The library is silent by default.
//
// Levels:
//   - [slog.LevelDebug]: canvas geometry, margins and per-layer timing
//   - [slog.LevelInfo]: font loading
//   - [slog.LevelWarn]: skipped layers, font family fallback, preset repairs
//
// For example:
//
//	textfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//	    &slog.HandlerOptions{Level: slog.LevelDebug})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	activeLog.Store(l)
}

// Logger returns the logger installed by SetLogger. The preset package
// and the textfx command log through it too. It may be called from any
// goroutine.
func Logger() *slog.Logger {
	return activeLog.Load()
}
