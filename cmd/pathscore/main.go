// pathscore scores candidate paths read from stdin against a query.
//
// One candidate per input line; output is "score<TAB>candidate" for
// every candidate that matched. The tool is a thin host around the
// library: it owns candidate intake and (optionally, via --sort) the
// ranking, exactly the split an editor picker would use.
//
//	find . -type f | pathscore --sort fzmat
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/dshills/pathscore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "pathscore: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		caseSensitive bool
		showDotFiles  bool
		hideDotFiles  bool
		firstMatch    bool
		includeZero   bool
		sortOutput    bool
		workers       int
	)

	flags := pflag.NewFlagSet("pathscore", pflag.ContinueOnError)
	flags.BoolVar(&caseSensitive, "case-sensitive", false, "match case exactly")
	flags.BoolVar(&showDotFiles, "show-dot-files", false, "allow matches inside dot-file path segments")
	flags.BoolVar(&hideDotFiles, "hide-dot-files", false, "reject every match inside a dot-file segment")
	flags.BoolVar(&firstMatch, "first-match", false, "keep the first feasible alignment instead of the best one")
	flags.BoolVar(&includeZero, "zero", false, "print non-matching candidates too")
	flags.BoolVar(&sortOutput, "sort", false, "sort output by score, best first")
	flags.IntVar(&workers, "workers", 0, "worker goroutines (default: number of CPUs)")

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	args := flags.Args()
	if len(args) != 1 {
		return fmt.Errorf("usage: pathscore [flags] <query> < candidates")
	}
	needle := args[0]

	opts := pathscore.DefaultOptions()
	opts.CaseSensitive = caseSensitive
	opts.AlwaysShowDotFiles = showDotFiles
	opts.NeverShowDotFiles = hideDotFiles
	opts.ComputeAllScorings = !firstMatch

	var haystacks []string
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		haystacks = append(haystacks, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading candidates: %w", err)
	}

	batch := pathscore.NewBatchScorer(pathscore.NewScorer(opts), workers)
	scores, err := batch.ScoreAll(context.Background(), haystacks, needle)
	if err != nil {
		return err
	}

	type scored struct {
		score float64
		text  string
	}
	lines := make([]scored, 0, len(haystacks))
	for i, haystack := range haystacks {
		if scores[i] == 0 && !includeZero {
			continue
		}
		lines = append(lines, scored{score: scores[i], text: haystack})
	}
	if sortOutput {
		sort.SliceStable(lines, func(i, j int) bool {
			return lines[i].score > lines[j].score
		})
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	for _, line := range lines {
		fmt.Fprintf(out, "%s\t%s\n", strconv.FormatFloat(line.score, 'f', -1, 64), line.text)
	}
	return nil
}
