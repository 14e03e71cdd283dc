// Package configcmd prints the effective configuration.
package configcmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"oficina/internal/infrastructure/config"
	"oficina/internal/shared/utils"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the merged configuration with secrets masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(env)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return Write(cmd.OutOrStdout(), cfg)
		},
	}
	show.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(show)
	return cmd
}

// Write renders cfg as YAML. Passwords and secrets are masked on a copy.
func Write(w io.Writer, cfg *config.Config) error {
	masked := *cfg
	masked.Database.Password = utils.MaskSecret(cfg.Database.Password)
	masked.Auth.JWT.Secret = utils.MaskSecret(cfg.Auth.JWT.Secret)
	masked.Email.SMTPPassword = utils.MaskSecret(cfg.Email.SMTPPassword)
	masked.Redis.Password = utils.MaskSecret(cfg.Redis.Password)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(&masked)
}
