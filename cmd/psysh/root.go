package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/macomamio/psysh/internal/config"
	"github.com/macomamio/psysh/internal/shell"
)

// Version will be set at build time via -ldflags.
var Version = "dev"

var (
	cfgFile string
	cfgDir  string
)

var rootCmd = &cobra.Command{
	Use:     "psysh",
	Short:   "An interactive shell with pluggable services",
	Long:    `An interactive command shell. Behavior is configured through an rc script (~/.psysh/rc.lua by default), environment variables with the PSYSH_ prefix, and the flags below.`,
	Version: Version,
	RunE:    runShell,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config script (default: <config-dir>/rc.lua)")
	rootCmd.PersistentFlags().StringVar(&cfgDir, "config-dir", "",
		"base directory for shell state (default: ~/.psysh)")

	rootCmd.Flags().String("pager", "", "pager command for long output")
	rootCmd.Flags().String("prompt", "", "input prompt")
	rootCmd.Flags().String("color", "", "color mode: auto, forced or disabled")
	rootCmd.Flags().String("interactive", "", "interactive mode: auto, forced or disabled")
	rootCmd.Flags().String("verbosity", "", "verbosity: quiet, normal, verbose or debug")
	rootCmd.Flags().Bool("no-readline", false, "disable line editing")
	rootCmd.Flags().Bool("no-forking", false, "disable forking evaluation and signal handling")

	viper.SetEnvPrefix("PSYSH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	for _, name := range []string{"pager", "prompt", "color", "interactive", "verbosity"} {
		_ = viper.BindPFlag(name, rootCmd.Flags().Lookup(name))
	}
}

// buildOptions assembles the construction option map from flags and
// PSYSH_* environment variables. Only values the user actually set make
// it into the map, so rc-script settings are not clobbered by defaults.
func buildOptions(cmd *cobra.Command) map[string]any {
	opts := make(map[string]any)
	if cfgDir != "" {
		opts["configDir"] = cfgDir
	}
	if cfgFile != "" {
		opts["configFile"] = cfgFile
	}
	if pager := viper.GetString("pager"); pager != "" {
		opts["pager"] = pager
	}
	if prompt := viper.GetString("prompt"); prompt != "" {
		opts["prompt"] = prompt
	}
	if color := viper.GetString("color"); color != "" {
		opts["colorMode"] = color
	}
	if interactive := viper.GetString("interactive"); interactive != "" {
		opts["interactiveMode"] = interactive
	}
	if verbosity := viper.GetString("verbosity"); verbosity != "" {
		opts["verbosity"] = verbosity
	}
	if noReadline, _ := cmd.Flags().GetBool("no-readline"); noReadline {
		opts["useReadline"] = false
	}
	if noForking, _ := cmd.Flags().GetBool("no-forking"); noForking {
		opts["usePcntl"] = false
	}
	return opts
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg, err := config.New(buildOptions(cmd))
	if err != nil {
		return err
	}
	cfg.SetLogger(newLogger(cfg.Verbosity()))

	sh := shell.New(cfg)
	sh.AddCommands(shell.Builtins(sh)...)
	return sh.Run(cmd.Context())
}
