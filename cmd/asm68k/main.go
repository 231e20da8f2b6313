package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"asm68k/encode"
	"asm68k/lexer"
	"asm68k/parser"
	"asm68k/report"
)

var output string

var rootCmd = &cobra.Command{
	Use:          "asm68k <source.s>",
	Short:        "Assemble M68000 source into machine code",
	Args:         cobra.ExactArgs(1),
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "write the binary to a file instead of hex-dumping")
}

func run(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	var rep report.Collector
	toks := lexer.Scan(string(data), &rep)
	prog := parser.New(&rep).Parse(toks)
	if rep.HasErrors() {
		for _, e := range rep.Errors() {
			fmt.Fprintf(os.Stderr, "%s:%v\n", args[0], e)
		}
		return fmt.Errorf("%d error(s)", rep.Len())
	}

	code, err := encode.Program(prog)
	if err != nil {
		return err
	}

	if output != "" {
		return os.WriteFile(output, code, 0o644)
	}
	for i := 0; i+1 < len(code); i += 2 {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%02x%02x", code[i], code[i+1])
	}
	fmt.Println()
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
