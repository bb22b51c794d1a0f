package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ivanceras/restq/frame"
)

type parseFlags struct {
	input  string
	output string
}

func parseCmd() *cobra.Command {
	flags := &parseFlags{}
	cmd := &cobra.Command{
		Use:   "parse [request-file]",
		Short: "Parse one or more RestQ request frames and describe each",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				flags.input = args[0]
			}
			return runParse(flags)
		},
	}
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write result to file instead of stdout")
	return cmd
}

func runParse(flags *parseFlags) error {
	f, err := readInput(flags.input)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	mr := frame.NewMultiReader(f)
	var out strings.Builder
	for i := 1; ; i++ {
		fr, err := mr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		fmt.Fprintf(&out, "%d: %s\n", i, describeStatement(fr.Statement))
		if _, err := io.Copy(io.Discard, fr.Body()); err != nil {
			return fmt.Errorf("frame %d: draining body: %w", i, err)
		}
	}
	return writeOutput(out.String(), flags.output)
}
