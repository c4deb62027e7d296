package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		rf     requestFlags
		outDir string
		format string
		thumb  int
		jobs   int
	)
	cmd := &cobra.Command{
		Use:   "batch preset...",
		Short: "Render many presets in parallel",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := homedir.Expand(outDir)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
			ext := "." + strings.TrimPrefix(strings.ToLower(format), ".")
			if _, err := encoderFor(ext); err != nil {
				return err
			}
			r, err := a.renderer()
			if err != nil {
				return err
			}

			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(max(1, jobs))
			cmd.SetContext(ctx)
			for _, path := range args {
				name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
				out := renderOutput{path: filepath.Join(dir, name+ext), thumb: thumb}
				g.Go(func() error {
					if err := a.renderPreset(cmd, r, &rf, path, out); err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			a.log.Info("batch done", zap.Int("presets", len(args)), zap.String("dir", dir))
			return nil
		},
	}
	rf.register(cmd)
	cmd.Flags().StringVarP(&outDir, "output", "o", ".", "output directory")
	cmd.Flags().StringVar(&format, "format", "png", "image format: png, jpg or bmp")
	cmd.Flags().IntVar(&thumb, "thumb", 0, "scale each image to this width")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.GOMAXPROCS(0), "renders to run at once")
	return cmd
}
