package main

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/textfx"
)

func newInspectCmd(a *app) *cobra.Command {
	var rf requestFlags
	cmd := &cobra.Command{
		Use:   "inspect [preset]",
		Short: "Print the layout, margins and draw order of a render",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.openPreset(firstArg(args))
			if err != nil {
				return err
			}
			req, err := rf.request(cmd, cfg.Session)
			if err != nil {
				return err
			}
			r, err := a.renderer()
			if err != nil {
				return err
			}
			layers := cfg.Stack.Layers()
			lay, err := r.Layout(cmd.Context(), req, layers)
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout())
			p.printf("canvas   %dx%d\n", lay.Width, lay.Height)
			p.printf("font     %.1fpx  scale %g  stretch %gx%g\n", lay.FontPx, lay.Scale, lay.ScaleX, lay.ScaleY)
			p.printf("block    %.1fx%.1f  lines %d  line height %.1f\n", lay.BlockWidth, lay.BlockHeight, len(lay.Lines), lay.LineHeight)
			p.printf("pad      %.1f\n", lay.Pad)
			m := lay.Margins
			p.printf("margins  left %.1f  right %.1f  top %.1f  bottom %.1f\n", m.Left, m.Right, m.Top, m.Bottom)
			p.printf("anchor   x %.1f  baseline %.1f\n", lay.X, lay.Y0)

			rs := textfx.BuildRenderStack(layers)
			p.printf("draw order (%d of %d layers):\n", len(rs.Draw), len(layers))
			for _, l := range rs.Draw {
				p.layer("  "+textfx.PhaseOf(l.Type()).String()+" ", l)
			}
			return nil
		},
	}
	rf.register(cmd)
	return cmd
}
