// Package addcmd implements "wordbib add": parse one APA-like book citation
// and append it to a Word Sources.xml under a tag, writing the result to
// new_<name> next to the input.
package addcmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"wordsources/src/internal/citation"
	"wordsources/src/internal/sources"
)

// Example is the worked invocation printed with every usage error.
const Example = `wordbib add "Simon1996" "Simon, H. A. (1996). The Sciences of the Artificial. MIT Press." --in Sources.xml`

// New returns the add command.
func New() *cobra.Command {
	var in string
	cmd := &cobra.Command{
		Use:     "add <tag> <citation> --in <Sources.xml>",
		Short:   "Add a book citation to a Sources.xml bibliography",
		Example: "  " + Example,
		Args:    cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var tag, ref string
			if len(args) > 0 {
				tag = strings.TrimSpace(args[0])
			}
			if len(args) > 1 {
				ref = strings.TrimSpace(args[1])
			}
			if tag == "" || ref == "" || strings.TrimSpace(in) == "" {
				return usageError(cmd, errors.New("missing required arguments"))
			}
			if _, err := os.Stat(in); err != nil {
				return usageError(cmd, fmt.Errorf("input file not found: %s", in))
			}

			doc, err := sources.Load(in)
			if err != nil {
				return usageError(cmd, err)
			}
			out := sources.OutputPath(in)

			// Duplicate-tag short-circuit: the document is written out
			// unchanged, the entry is not re-added.
			if doc.TagExists(tag) {
				if err := doc.WriteFile(out); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Tag '%s' already exists. Wrote: %s\n", tag, out)
				return err
			}

			c, err := citation.Parse(ref)
			if err != nil {
				return usageError(cmd, err)
			}
			doc.AppendBook(tag, c)
			if err := doc.WriteFile(out); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added '%s'. Wrote: %s\n", tag, out)
			return err
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "path to the existing Sources.xml (required)")
	return cmd
}

// usageError prints the worked example to the error stream and passes the
// error through; the caller exits non-zero.
func usageError(cmd *cobra.Command, err error) error {
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Correct usage example:\n  %s\n", Example)
	return err
}
