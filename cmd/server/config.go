package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type config struct {
	bind       string
	port       int
	maxRounds  int
	codeLength int
	verbose    bool
}

func (c *config) validate() error {
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if c.maxRounds < 1 {
		return fmt.Errorf("invalid max-rounds (must be at least 1): %d", c.maxRounds)
	}
	if c.codeLength < 4 || c.codeLength > 6 {
		return fmt.Errorf("invalid code-length (must be 4-6): %d", c.codeLength)
	}
	return nil
}

func newCmd(cfg *config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("BIGPICTURE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "bigpicture",
		Short:         "Coordinator for the Big Picture party game.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		SilenceUsage:  true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Env vars fill in flags the user did not set explicitly.
			var bindErr error
			cmd.Flags().VisitAll(func(f *pflag.Flag) {
				if err := v.BindPFlag(f.Name, f); err != nil && bindErr == nil {
					bindErr = err
				}
				if err := v.BindEnv(f.Name); err != nil && bindErr == nil {
					bindErr = err
				}
				if !f.Changed && v.IsSet(f.Name) {
					if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name))); err != nil && bindErr == nil {
						bindErr = err
					}
				}
			})
			return bindErr
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: BIGPICTURE_BIND)")
	fs.IntVarP(&cfg.port, "port", "p", 3000, "port to listen on (env: BIGPICTURE_PORT)")
	fs.IntVar(&cfg.maxRounds, "max-rounds", 3, "rounds each player plays per game (env: BIGPICTURE_MAX_ROUNDS)")
	fs.IntVar(&cfg.codeLength, "code-length", 6, "length of generated room codes, 4-6 (env: BIGPICTURE_CODE_LENGTH)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "log at debug level (env: BIGPICTURE_VERBOSE)")

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})

	return cmd
}
