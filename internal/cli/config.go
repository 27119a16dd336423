package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitprompt.dev/gitprompt/internal/config"
	"gitprompt.dev/gitprompt/internal/runtime"
)

// newConfigCmd creates the config command
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Get and set gitprompt configuration",
		Long: `Get and set gitprompt configuration values.

Examples:
  gitprompt config get color
  gitprompt config set color never
  gitprompt config set binDir ~/.local/bin`,
	}

	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())

	return cmd
}

// newConfigGetCmd creates the config get command
func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx, err := runtime.GetContext()
			if err != nil {
				return err
			}

			key := args[0]
			switch key {
			case "color":
				color, err := config.GetColor(ctx.Home)
				if err != nil {
					return fmt.Errorf("failed to get color: %w", err)
				}
				fmt.Println(color)
			case "binDir":
				binDir, err := config.GetBinDir(ctx.Home)
				if err != nil {
					return fmt.Errorf("failed to get binDir: %w", err)
				}
				fmt.Println(binDir)
			case "profile":
				profile, err := config.GetProfile(ctx.Home)
				if err != nil {
					return fmt.Errorf("failed to get profile: %w", err)
				}
				fmt.Println(profile)
			default:
				return fmt.Errorf("unknown config key: %s", key)
			}
			return nil
		},
	}
}

// newConfigSetCmd creates the config set command
func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx, err := runtime.GetContext()
			if err != nil {
				return err
			}

			if err := config.SetValue(ctx.Home, args[0], args[1]); err != nil {
				return err
			}
			ctx.Splog.Info("Set %s to %s", args[0], args[1])
			return nil
		},
	}
}
