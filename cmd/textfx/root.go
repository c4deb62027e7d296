package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gogpu/textfx"
	"github.com/gogpu/textfx/preset"
	"github.com/gogpu/textfx/text"
)

// app holds the global flags and the state shared by all commands.
type app struct {
	verbose  bool
	debug    bool
	fontPath string
	family   string
	backend  string
	maxDim   int
	fill     string

	log    *zap.Logger
	errOut io.Writer
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}
	root := &cobra.Command{
		Use:          "textfx",
		Short:        "Render layered text effects to images",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.errOut = cmd.ErrOrStderr()
			return a.setupLogging()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "development logging")
	pf.BoolVar(&a.debug, "debug", false, "write library debug logs to stderr")
	pf.StringVar(&a.fontPath, "font", "", "TTF or OTF font file")
	pf.StringVar(&a.family, "family", "", "built-in font family ("+fmt.Sprint(text.Families())+")")
	pf.StringVar(&a.backend, "backend", "image", "surface backend")
	pf.IntVar(&a.maxDim, "max-size", textfx.DefaultMaxCanvasDimension, "largest canvas side in pixels")
	pf.StringVar(&a.fill, "fill", "", "fill color for base fills created on import")

	root.AddCommand(
		newRenderCmd(a),
		newInspectCmd(a),
		newWatchCmd(a),
		newBatchCmd(a),
		newLayersCmd(a),
	)
	return root
}

func (a *app) setupLogging() error {
	var (
		l   *zap.Logger
		err error
	)
	if a.verbose {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	a.log = l

	if a.debug {
		textfx.SetLogger(slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	return nil
}

// renderer builds a renderer from the global flags.
func (a *app) renderer() (*textfx.Renderer, error) {
	style := textfx.DefaultStyle()
	if a.family != "" {
		style.FontFamily = a.family
	}
	opts := []textfx.RendererOption{
		textfx.WithStyle(style),
		textfx.WithBackend(a.backend),
		textfx.WithMaxCanvasDimension(a.maxDim),
	}
	if a.fontPath != "" {
		path, err := homedir.Expand(a.fontPath)
		if err != nil {
			return nil, err
		}
		f, err := text.LoadFile(path)
		if err != nil {
			return nil, err
		}
		a.log.Info("loaded font", zap.String("path", path), zap.String("family", f.Family()))
		opts = append(opts, textfx.WithFont(f))
	}
	return textfx.NewRenderer(opts...), nil
}

// openPreset imports the preset at path. An empty path gives a single
// solid fill.
func (a *app) openPreset(path string) (*preset.Config, error) {
	if path == "" {
		return &preset.Config{Stack: textfx.NewDefaultStack(a.fill)}, nil
	}
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	cfg, err := preset.Open(path, a.fill)
	if err != nil {
		return nil, err
	}
	a.log.Debug("opened preset", zap.String("path", path), zap.Int("layers", cfg.Stack.Len()))
	return cfg, nil
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
