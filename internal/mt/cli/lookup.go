package cli

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/mimetypes/internal/mt/output"
	"github.com/abdul-hamid-achik/mimetypes/registry"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <type|pattern>",
	Short: "Resolve a media type, best match first",
	Long: `Resolve a media type by name or by pattern over simplified forms.

Examples:
  mt lookup text/plain
  mt lookup X-Image/JPEG            # normalized before lookup
  mt lookup --pattern '^text/'      # every text type
  mt lookup --complete image/jpeg   # only entries with extensions
  mt lookup --json application/xml | jq '.[0].encoding'`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

var (
	lookupPattern  bool
	lookupComplete bool
	lookupPlatform bool
)

func init() {
	lookupCmd.Flags().BoolVar(&lookupPattern, "pattern", false, "Treat the argument as a regular expression")
	lookupCmd.Flags().BoolVar(&lookupComplete, "complete", false, "Only types with file extensions")
	lookupCmd.Flags().BoolVar(&lookupPlatform, "platform", false, "Only types scoped to the current platform")
}

func runLookup(cmd *cobra.Command, args []string) error {
	var q registry.Query
	if lookupPattern {
		re, err := regexp.Compile(args[0])
		if err != nil {
			return fmt.Errorf("invalid pattern: %w", err)
		}
		q = registry.Match(re)
	} else {
		q = registry.Exact(args[0])
	}

	var opts []registry.ResolveOption
	if lookupComplete {
		opts = append(opts, registry.WithComplete())
	}
	if lookupPlatform {
		opts = append(opts, registry.WithPlatform())
	}

	matches := reg.Resolve(q, opts...)
	if jsonOutput {
		return printer.JSON(viewsOf(matches))
	}
	if len(matches) == 0 {
		printer.Info("no media types match %s", args[0])
		return nil
	}

	table := output.NewTable([]string{"Type", "Encoding", "Extensions", "Flags"}, quietMode)
	for _, t := range matches {
		table.Append([]string{
			t.ContentType(),
			string(t.Encoding()),
			strings.Join(t.Extensions(), ","),
			flagsOf(t),
		})
	}
	table.Render()
	return nil
}
