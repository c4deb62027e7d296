package main

import (
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gogpu/textfx"
)

// renderOutput is the output of a single render.
type renderOutput struct {
	path  string
	thumb int
}

func (o *renderOutput) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.path, "output", "o", "textfx.png", "output image (.png, .jpg or .bmp)")
	cmd.Flags().IntVar(&o.thumb, "thumb", 0, "scale the image to this width")
}

func newRenderCmd(a *app) *cobra.Command {
	var (
		rf  requestFlags
		out renderOutput
	)
	cmd := &cobra.Command{
		Use:   "render [preset]",
		Short: "Render a preset to an image",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.renderer()
			if err != nil {
				return err
			}
			return a.renderPreset(cmd, r, &rf, firstArg(args), out)
		},
	}
	rf.register(cmd)
	out.register(cmd)
	return cmd
}

// renderPreset renders the preset at path and writes the image.
func (a *app) renderPreset(cmd *cobra.Command, r *textfx.Renderer, rf *requestFlags, path string, out renderOutput) error {
	cfg, err := a.openPreset(path)
	if err != nil {
		return err
	}
	req, err := rf.request(cmd, cfg.Session)
	if err != nil {
		return err
	}
	dst, err := homedir.Expand(out.path)
	if err != nil {
		return err
	}
	if _, err := encoderFor(dst); err != nil {
		return err
	}

	img, err := renderImage(cmd.Context(), r, req, cfg.Stack.Layers())
	if err != nil {
		return err
	}
	if out.thumb > 0 {
		img = thumbnail(img, out.thumb)
	}
	if err := saveImage(dst, img); err != nil {
		return err
	}
	a.log.Info("rendered",
		zap.String("preset", path),
		zap.String("output", dst),
		zap.Int("width", img.Rect.Dx()),
		zap.Int("height", img.Rect.Dy()))
	return nil
}
