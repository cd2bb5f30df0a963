package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wordsources/src/cmd/wordbib/addcmd"
	"wordsources/src/cmd/wordbib/exportcmd"
	"wordsources/src/cmd/wordbib/listcmd"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "wordbib",
		Short:         "Insert APA-like book citations into a Word Sources.xml bibliography",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	// Attach subcommands
	cmd.AddCommand(addcmd.New())
	cmd.AddCommand(listcmd.New())
	cmd.AddCommand(exportcmd.New())
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
