package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/mimetypes/internal/mt/output"
)

var extCmd = &cobra.Command{
	Use:     "ext <filename>...",
	Aliases: []string{"typefor"},
	Short:   "Media types declaring a file's extension",
	Long: `List the media types declaring the extension of each filename, in
registry insertion order.

Examples:
  mt ext citydesk.xml
  mt ext setup.exe --platform
  mt ext report.pdf notes.md --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExt,
}

var extPlatform bool

func init() {
	extCmd.Flags().BoolVar(&extPlatform, "platform", false, "Only types scoped to the current platform")
}

func runExt(cmd *cobra.Command, args []string) error {
	if jsonOutput {
		result := make(map[string][]typeView, len(args))
		for _, filename := range args {
			result[filename] = viewsOf(reg.TypeFor(filename, extPlatform))
		}
		return printer.JSON(result)
	}

	table := output.NewTable([]string{"File", "Type", "Encoding", "Extensions"}, quietMode)
	misses := 0
	for _, filename := range args {
		matches := reg.TypeFor(filename, extPlatform)
		if len(matches) == 0 {
			misses++
			printer.Warn("no media types for %s", filename)
			continue
		}
		for _, t := range matches {
			table.Append([]string{
				filename,
				t.ContentType(),
				string(t.Encoding()),
				strings.Join(t.Extensions(), ","),
			})
		}
	}
	if misses < len(args) {
		table.Render()
	}
	return nil
}
