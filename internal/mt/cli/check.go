package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/mimetypes/internal/logger"
	"github.com/abdul-hamid-achik/mimetypes/registry"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate corpus files against the record grammar",
	Long: `Parse each corpus file into a scratch registry and report the first
malformed line, if any.

Examples:
  mt check /etc/mime.extra
  mt check testdata/*.types`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		if err := checkCorpus(path); err != nil {
			failed++
			var perr *registry.ParseError
			if errors.As(err, &perr) {
				printer.Error("%s:%d: %q does not match the record grammar",
					perr.Corpus, perr.Line, perr.Text)
				continue
			}
			printer.Error("%s: %v", path, err)
			continue
		}
		printer.Printf("%s: ok\n", path)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d corpus files failed validation", failed, len(args))
	}
	return nil
}

func checkCorpus(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scratch := registry.New(registry.WithLogger(logger.Default()))
	return scratch.LoadCorpus(path, f)
}
