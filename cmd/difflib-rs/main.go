// Command difflib-rs prints a unified diff of two files, byte-for-byte
// compatible with Python's difflib.unified_diff.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cogentcore/difflib/internal/cliconfig"
)

var rootCmd = &cobra.Command{
	Use:   "difflib-rs",
	Short: "difflib-rs computes unified diffs using the difflib matching algorithm",
	Long: `difflib-rs is a command line front end for the difflib package, a Go
port of Python's difflib.SequenceMatcher and unified_diff.`,
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves the config file to use: the --config flag if given,
// otherwise the conventional per-user default path. A missing file at
// either location is not an error.
func loadConfig(explicit string) (cliconfig.Config, error) {
	if explicit != "" {
		return cliconfig.Load(explicit)
	}
	path, err := cliconfig.DefaultPath()
	if err != nil {
		return cliconfig.Default(), nil
	}
	return cliconfig.Load(path)
}
