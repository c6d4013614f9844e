package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/mimetypes/internal/mt/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage CLI configuration",
	Long:  `View and manage mt CLI configuration.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Set a configuration value.

Available keys:
  corpora    Extra corpus files, separated by the OS path list separator
  platform   Platform identifier override (linux, darwin, windows, ...)
  no_color   Disable colored output (true/false)
  log_level  Logger level (debug, info, warn, error)

Dashed and aliased spellings are accepted: log-level, loglevel, corpus.

Examples:
  mt config set platform darwin
  mt config set corpora /etc/mime.extra
  mt config set log-level debug`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config file path",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	if jsonOutput {
		return printer.JSON(map[string]interface{}{
			"corpora":   cfg.Corpora,
			"platform":  cfg.Platform,
			"no_color":  cfg.NoColor,
			"log_level": cfg.LogLevel,
		})
	}

	printer.Section("Configuration")
	for _, key := range []string{"corpora", "platform", "no_color", "log_level"} {
		value, _ := cfg.Get(key)
		if value == "" {
			value = "(unset)"
		}
		printer.KeyValue(key, value)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	if !cfg.Set(key, value) {
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	if err := cfg.Save(); err != nil {
		return err
	}
	printer.Printf("%s = %s\n", config.NormalizeKey(key), value)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	path, err := config.Path()
	if err != nil {
		return err
	}
	printer.Println(path)
	return nil
}
