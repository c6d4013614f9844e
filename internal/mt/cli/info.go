package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/mimetypes/registry"
)

var infoCmd = &cobra.Command{
	Use:   "info <type>",
	Short: "Show the full record for a media type",
	Long: `Show every known definition of a media type: encoding, extensions,
registration state, platform scope, documentation, and references.

Examples:
  mt info application/pdf
  mt info text/vcard             # includes the obsolete x-vcard variant`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	matches := reg.Resolve(registry.Exact(args[0]))
	if jsonOutput {
		return printer.JSON(viewsOf(matches))
	}
	if len(matches) == 0 {
		printer.Info("no media types match %s", args[0])
		return nil
	}

	for _, t := range matches {
		printer.Section(t.ContentType())
		printer.KeyValue("simplified", t.Simplified())
		printer.KeyValue("encoding", string(t.Encoding()))
		if t.Complete() {
			printer.KeyValue("extensions", strings.Join(t.Extensions(), ", "))
		}
		printer.KeyValue("registered", boolWord(t.Registered()))
		printer.KeyValue("binary", boolWord(t.Binary()))
		if t.System() != "" {
			printer.KeyValue("platform", t.System())
		}
		if t.Obsolete() {
			printer.KeyValue("obsolete", "yes")
			if ui := t.UseInstead(); len(ui) > 0 {
				printer.KeyValue("use instead", strings.Join(ui, ", "))
			}
		}
		if t.Docs() != "" {
			printer.KeyValue("docs", t.Docs())
		}
		for _, ref := range t.URLs() {
			if ref.Label != "" {
				printer.KeyValue("see", ref.Label+" <"+ref.URL+">")
			} else {
				printer.KeyValue("see", ref.URL)
			}
		}
	}
	return nil
}

func boolWord(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
