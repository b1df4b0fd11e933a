// routecmp renders a life-cycle assessment result as a comparison of the
// three manufacturing routes: Recycled, Mixed and Virgin (Ore).
//
// Usage:
//
//	routecmp assessment.json
//	lca-engine run | routecmp --format llm
//	routecmp --format html -o report.html assessment.yaml
//	routecmp view assessment.json
//
// Input is an assessment result as JSON or YAML, read from a file or stdin.
//
// Output modes (auto-detected):
//
//	terminal  styled Unicode panel (default when TTY)
//	llm       terse plain text (default when piped)
//	json      structured patterns for automation
//	svg       go-chart pie panel
//	html      standalone page with the pies and route cards
package main

import (
	"fmt"
	"io"
	"os"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 2 // usage, config or input error
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdin, stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "routecmp: %v\n", err)
		return exitError
	}
	return exitOK
}
