package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/mimetypes"
	"github.com/abdul-hamid-achik/mimetypes/internal/logger"
	"github.com/abdul-hamid-achik/mimetypes/internal/mt/config"
	"github.com/abdul-hamid-achik/mimetypes/internal/mt/output"
	"github.com/abdul-hamid-achik/mimetypes/internal/mt/version"
	"github.com/abdul-hamid-achik/mimetypes/mimetype"
	"github.com/abdul-hamid-achik/mimetypes/registry"
)

var (
	jsonOutput bool
	quietMode  bool
	noColor    bool
	cfg        *config.Config
	reg        *registry.Registry
	printer    *output.Printer
)

var rootCmd = &cobra.Command{
	Use:   "mt",
	Short: "mt - look up media types by name, pattern, or file extension",
	Long: `mt answers media-type questions from an embedded corpus.

Get started:
  mt lookup text/plain       # Resolve a media type
  mt ext report.pdf          # Media types for a file extension
  mt info application/json   # Full record for one type`,
	Version: version.Full(),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		logger.Init(cfg.LogLevel)

		if cfg.Platform != "" {
			mimetype.SetPlatformID(cfg.Platform)
		}

		printer = output.New(
			output.WithJSON(jsonOutput),
			output.WithQuiet(quietMode),
			output.WithNoColor(noColor || cfg.NoColor),
		)

		reg, err = mimetypes.Load(registry.WithLogger(logger.Default()))
		if err != nil {
			return err
		}
		for _, path := range cfg.Corpora {
			if err := loadExtraCorpus(reg, path); err != nil {
				return err
			}
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func loadExtraCorpus(r *registry.Registry, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening corpus %s: %w", path, err)
	}
	defer f.Close()
	return r.LoadCorpus(path, f)
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON (for scripting)")
	rootCmd.PersistentFlags().BoolVar(&quietMode, "quiet", false, "Suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.SetVersionTemplate("mt version {{.Version}}\n")

	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(extCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configCmd)
}
