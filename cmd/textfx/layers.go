package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gogpu/textfx"
	"github.com/gogpu/textfx/preset"
)

func newLayersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layers",
		Short: "Edit the layer stack of a preset file",
	}
	cmd.AddCommand(
		newLayersInitCmd(a),
		newLayersListCmd(a),
		newLayersAddCmd(a),
		newLayersRemoveCmd(a),
		newLayersMoveCmd(a),
		newLayersSetCmd(a),
		newLayersSwitchFillCmd(a),
	)
	return cmd
}

// editPreset opens the preset at path, applies edit and saves the result.
func (a *app) editPreset(path string, edit func(s *textfx.Stack) error) error {
	path, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	cfg, err := a.openPreset(path)
	if err != nil {
		return err
	}
	if err := edit(cfg.Stack); err != nil {
		return err
	}
	if err := preset.Save(path, preset.Export(cfg.Stack.Layers(), cfg.Session)); err != nil {
		return err
	}
	a.log.Debug("saved preset", zap.String("path", path), zap.Int("layers", cfg.Stack.Len()))
	return nil
}

func newLayersInitCmd(a *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init preset",
		Short: "Create a preset with a single solid fill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := homedir.Expand(args[0])
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists", path)
			}
			s := textfx.NewDefaultStack(a.fill)
			return preset.Save(path, preset.Export(s.Layers(), nil))
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}

func newLayersListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list preset",
		Short: "List the layers of a preset, top first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.openPreset(args[0])
			if err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout())
			for i, l := range cfg.Stack.Layers() {
				p.layer(fmt.Sprintf("%2d ", i), l)
			}
			return nil
		},
	}
}

func newLayersAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "add preset type",
		Short:     "Append a layer with default params",
		Args:      cobra.ExactArgs(2),
		ValidArgs: layerTypeNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := textfx.LayerType(args[1])
			if !t.Known() {
				return fmt.Errorf("unknown layer type %q", args[1])
			}
			return a.editPreset(args[0], func(s *textfx.Stack) error {
				l := s.Add(t)
				fmt.Fprintln(cmd.OutOrStdout(), l.ID)
				return nil
			})
		},
	}
}

func newLayersRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove preset id",
		Short: "Remove a layer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.editPreset(args[0], func(s *textfx.Stack) error {
				if !s.Remove(args[1]) {
					return &textfx.LayerError{ID: args[1], Op: "remove", Err: textfx.ErrLayerNotFound}
				}
				return nil
			})
		},
	}
}

func newLayersMoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "move preset id up|down",
		Short:     "Move a layer one position",
		Args:      cobra.ExactArgs(3),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var dir int
			switch args[2] {
			case "up":
				dir = -1
			case "down":
				dir = 1
			default:
				return fmt.Errorf("direction must be up or down, got %q", args[2])
			}
			return a.editPreset(args[0], func(s *textfx.Stack) error {
				if _, ok := s.Get(args[1]); !ok {
					return &textfx.LayerError{ID: args[1], Op: "move", Err: textfx.ErrLayerNotFound}
				}
				if !s.Move(args[1], dir) {
					a.log.Info("layer already at the edge", zap.String("id", args[1]))
				}
				return nil
			})
		},
	}
}

func newLayersSetCmd(a *app) *cobra.Command {
	var (
		name    string
		enabled bool
	)
	cmd := &cobra.Command{
		Use:   "set preset id",
		Short: "Rename or enable/disable a layer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch textfx.LayerPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("enabled") {
				patch.Enabled = &enabled
			}
			if patch.Name == nil && patch.Enabled == nil {
				return errors.New("nothing to set: use --name or --enabled")
			}
			return a.editPreset(args[0], func(s *textfx.Stack) error {
				return s.Update(args[1], patch)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new layer name")
	cmd.Flags().BoolVar(&enabled, "enabled", true, "whether the layer is drawn")
	return cmd
}

func newLayersSwitchFillCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "switch-fill preset fill|gradientFill",
		Short:     "Switch the base fill between solid and gradient",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(textfx.TypeFill), string(textfx.TypeGradientFill)},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.editPreset(args[0], func(s *textfx.Stack) error {
				if !s.SwitchBaseFill(textfx.LayerType(args[1]), a.fill) {
					return fmt.Errorf("cannot switch base fill to %q", args[1])
				}
				return nil
			})
		},
	}
}

func layerTypeNames() []string {
	types := textfx.LayerTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return names
}
