// Package exportcmd implements "wordbib export": dump the entries of a
// Sources.xml as YAML, to stdout or a file.
package exportcmd

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"wordsources/src/internal/sources"
)

// New returns the export command.
func New() *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "export --in <Sources.xml> [-o entries.yaml]",
		Short: "Export a Sources.xml bibliography as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(in) == "" {
				return errors.New("missing required --in flag")
			}
			doc, err := sources.Load(in)
			if err != nil {
				return err
			}
			buf, err := yaml.Marshal(doc.Entries())
			if err != nil {
				return err
			}
			if strings.TrimSpace(out) == "" {
				_, err := cmd.OutOrStdout().Write(buf)
				return err
			}
			return os.WriteFile(out, buf, 0o644)
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "path to the Sources.xml to read (required)")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output YAML path (default stdout)")
	return cmd
}
