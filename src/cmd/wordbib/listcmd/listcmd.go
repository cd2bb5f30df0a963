// Package listcmd implements "wordbib list": print every entry of a
// Sources.xml in document order.
package listcmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wordsources/src/internal/sources"
	"wordsources/src/internal/stringsx"
)

// New returns the list command.
func New() *cobra.Command {
	var in string
	cmd := &cobra.Command{
		Use:   "list --in <Sources.xml>",
		Short: "List the entries in a Sources.xml bibliography",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(in) == "" {
				return errors.New("missing required --in flag")
			}
			doc, err := sources.Load(in)
			if err != nil {
				return err
			}
			for _, e := range doc.Entries() {
				year := stringsx.FirstNonEmpty(e.Year, "n.d.")
				line := fmt.Sprintf("%s\t%s (%s). %s. %s.", e.Tag, e.DisplayAuthors(), year, e.Title, e.Publisher)
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "path to the Sources.xml to read (required)")
	return cmd
}
