package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"slices"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"github.com/mfroeh/regix/regix"
)

var groupColors = []*color.Color{
	color.New(color.FgRed),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgBlue),
	color.New(color.FgMagenta),
	color.New(color.FgCyan),
}

var (
	matchColor   = color.New(color.FgGreen)
	noMatchColor = color.New(color.FgRed)
)

var cli struct {
	Pattern  string   `arg:"" optional:"" name:"pattern" help:"Pattern to compile" type:"string"`
	Inputs   []string `arg:"" optional:"" name:"input" help:"Strings to match; stdin lines if omitted" type:"string"`
	Captures bool     `name:"captures" short:"c" help:"Print the capture table for matching inputs"`
	Describe bool     `name:"describe" short:"d" help:"Print the compiled AST before matching"`
	Bench    int      `name:"bench" short:"b" help:"Run N full-match iterations per input and report timing"`
	Suite    string   `name:"suite" short:"s" help:"Run a TOML match suite instead of matching arguments" type:"path"`
}

func main() {
	kong.Parse(&cli,
		kong.Name("regixmatch"),
		kong.Description("Compiles a pattern and tests whole strings against it."),
		kong.UsageOnError(),
	)

	if cli.Suite != "" {
		runSuite(cli.Suite)
		return
	}

	if cli.Pattern == "" {
		log.Fatalf("expected a pattern or --suite")
	}

	p, err := regix.Compile(cli.Pattern)
	if err != nil {
		log.Fatalf("failed to compile pattern: %v", err)
	}

	if cli.Describe {
		fmt.Print(p.Describe())
	}

	inputs := cli.Inputs
	if len(inputs) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			inputs = append(inputs, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			log.Fatalf("failed to read stdin: %v", err)
		}
	}

	for _, in := range inputs {
		if cli.Bench > 0 {
			benchInput(p, in, cli.Bench)
			continue
		}
		matchInput(p, in)
	}
}

func matchInput(p regix.Pattern, in string) {
	matched, caps := p.FullMatchWithCaptures(in)
	if !matched {
		fmt.Printf("%s %q\n", noMatchColor.Sprint("no match"), in)
		return
	}

	fmt.Printf("%s %q\n", matchColor.Sprint("match"), in)
	if !cli.Captures {
		return
	}

	ids := make([]int, 0, len(caps))
	for id := range caps {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		c := groupColors[id%len(groupColors)]
		fmt.Printf("  %s: %q\n", c.Sprintf("group %d", id), caps[id])
	}
}

// benchInput mirrors the engine's original benchmark harness: compile once,
// match the same input in a tight loop, report elapsed time.
func benchInput(p regix.Pattern, in string, n int) {
	start := time.Now()
	var matched bool
	for i := 0; i < n; i++ {
		matched = p.FullMatch(in)
	}
	elapsed := time.Since(start)
	fmt.Printf("%q: %d iterations in %v (%v/op, matched=%t)\n",
		in, n, elapsed, elapsed/time.Duration(n), matched)
}

func runSuite(path string) {
	suite, err := regix.LoadSuite(path)
	if err != nil {
		log.Fatalf("%v", err)
	}

	failures := 0
	for i, res := range suite.Run() {
		switch {
		case res.Err != nil:
			failures++
			fmt.Printf("%s case %d: %v\n", noMatchColor.Sprint("ERROR"), i+1, res.Err)
		case !res.Pass:
			failures++
			fmt.Printf("%s case %d: %q vs %q: got %t, want %t\n",
				noMatchColor.Sprint("FAIL"), i+1, res.Case.Pattern, res.Case.Input, res.Got, res.Case.Want)
		default:
			fmt.Printf("%s case %d: %q vs %q\n",
				matchColor.Sprint("ok"), i+1, res.Case.Pattern, res.Case.Input)
		}
	}

	if failures > 0 {
		log.Fatalf("%d of %d cases failed", failures, len(suite.Cases))
	}
}
