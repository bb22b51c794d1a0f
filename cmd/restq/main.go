// Command restq is a small CLI around the restq module: it parses RestQ
// request frames and lowers them to SQL, grounded on
// _examples/Pieczasz-smf's cmd/smf command-tree idiom (a root Cobra
// command, one flags struct and RunE closure per subcommand, a shared
// output helper).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "restq",
		Short: "Parse and lower RestQ requests to SQL",
	}
	root.AddCommand(parseCmd())
	root.AddCommand(lowerCmd())
	return root
}

// readInput opens path for reading, or stdin when path is "" or "-".
func readInput(path string) (*os.File, error) {
	if path == "" || path == "-" {
		return os.Stdin, nil
	}
	return os.Open(path)
}

// writeOutput prints content to outFile, or to stdout when outFile is
// empty, matching cmd/smf's writeOutput helper.
func writeOutput(content, outFile string) error {
	if outFile == "" {
		fmt.Print(content)
		return nil
	}
	return os.WriteFile(outFile, []byte(content), 0o644)
}
