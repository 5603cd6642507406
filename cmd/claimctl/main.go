// Command claimctl inspects the claim decision table and replays notifications.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "claimctl",
		Short:         "Operator tooling for Pix-key claim reconciliation",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)

	rootCmd.AddCommand(tableCmd())
	rootCmd.AddCommand(decideCmd())
	rootCmd.AddCommand(publishCmd())
	return rootCmd
}
