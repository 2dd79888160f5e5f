// Package repl implements the prompt loop: reading one line at a time,
// running it through the parse/identify/typecheck/eval pipeline, and
// printing either the pretty-printed result or the diagnostics it raised.
// History is persisted across sessions in a fixed file in the working
// directory.
package repl

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/TurtlePU/odlang/internal/config"
	"github.com/TurtlePU/odlang/internal/diagnostic"
	"github.com/TurtlePU/odlang/internal/eval"
	"github.com/TurtlePU/odlang/internal/ident"
	"github.com/TurtlePU/odlang/internal/parser"
	"github.com/TurtlePU/odlang/internal/pprint"
	"github.com/TurtlePU/odlang/internal/reperr"
	"github.com/TurtlePU/odlang/internal/typecheck"
)

// historyFile is the fixed name spec.md §6 requires; it always lives in
// the current working directory.
const historyFile = ".odlang_history"

// defaultPrompt is the fixed prompt string spec.md §6 requires, used when
// no configuration overrides it.
const defaultPrompt = "turtle > "

var (
	red = color.New(color.FgRed).SprintFunc()
	dim = color.New(color.Faint).SprintFunc()
)

// REPL is the read-eval-print loop driver. It owns no interpreter state
// across lines beyond the liner history: per spec §3, Ident/Alpha
// counters and the NameTable are fresh for every line.
type REPL struct {
	cfg        config.Config
	lastInput  string
	historyLoc string
}

// New builds a REPL from the resolved configuration.
func New(cfg config.Config) *REPL {
	loc := historyFile
	if cfg.HistoryFile != "" {
		loc = cfg.HistoryFile
	}
	color.NoColor = !cfg.ColorEnabled()
	return &REPL{cfg: cfg, historyLoc: loc}
}

// Run starts the prompt loop over in/out until the user sends EOF. It
// returns a non-zero-worthy error only for failures the driver must
// surface as a process exit code: the history file failing to be created
// or opened at startup is fatal, per spec §7; failure to append at the
// end is logged but does not change the return value.
func (r *REPL) Run(out io.Writer) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	if f, err := os.Open(r.historyLoc); err == nil {
		_, _ = line.ReadHistory(bytes.NewReader(r.trimHistory(f)))
		f.Close()
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("%s", reperr.HistoryCreateFailure(err).Error())
	} else if f, err := os.Create(r.historyLoc); err != nil {
		return fmt.Errorf("%s", reperr.HistoryCreateFailure(err).Error())
	} else {
		f.Close()
	}

	prompt := defaultPrompt
	if r.cfg.Prompt != "" {
		prompt = r.cfg.Prompt
	}

	for {
		input, err := line.Prompt(prompt)
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("error"), err)
			continue
		}

		if r.suppressesHistory(input) {
			fmt.Fprintln(out, dim("This entry will not appear in history."))
		} else {
			line.AppendHistory(input)
			r.lastInput = input
		}

		r.processLine(input, out)
	}

	if f, err := os.Create(r.historyLoc); err != nil {
		fmt.Fprintln(out, red(reperr.HistoryWriteFailure(err).Error()))
	} else {
		_, _ = line.WriteHistory(f)
		f.Close()
	}

	return nil
}

// suppressesHistory reports whether input must not be appended to history:
// empty (after trimming) or identical to the immediately preceding line,
// mirroring rustyline's add_history_entry returning false. This only ever
// gates the history write — the line is still parsed and evaluated, per
// original_source/src/repl.rs's repl() calling process_line unconditionally
// on every line read, independent of the add_history_entry result.
func (r *REPL) suppressesHistory(input string) bool {
	return strings.TrimSpace(input) == "" || input == r.lastInput
}

// processLine runs one entered line through the full pipeline, printing
// either the normal form or one diagnostic per line.
func (r *REPL) processLine(input string, out io.Writer) {
	surface, perrs := parser.Parse(input)
	if len(perrs) != 0 {
		for _, e := range perrs {
			printReport(out, reperr.Parse(e.Message, e.R))
		}
		return
	}

	internal, names, alphas, unbound := ident.Identify(surface)
	if len(unbound) != 0 {
		for _, name := range diagnosticSortedNames(unbound) {
			printReport(out, reperr.Unbound(name))
		}
		return
	}

	_, terrs := typecheck.Synthesize(internal, &alphas)
	if len(terrs) != 0 {
		for _, e := range terrs {
			printReport(out, reperr.Typeck(e, names))
		}
		return
	}

	result := eval.Eval(internal)
	fmt.Fprintln(out, pprint.Term(result, names))
}

func printReport(out io.Writer, rep *reperr.Report) {
	fmt.Fprintln(out, red(rep.Error()))
}

// trimHistory reads every line from f and, when cfg.HistoryLimit is set,
// keeps only the most recent HistoryLimit of them. A limit of 0 means
// unlimited.
func (r *REPL) trimHistory(f io.Reader) []byte {
	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if len(lines) == 0 {
		return nil
	}
	if limit := r.cfg.HistoryLimit; limit > 0 && len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}
	return []byte(strings.Join(lines, "\n") + "\n")
}

// diagnosticSortedNames orders an unbound-name set for stable output: the
// identifier pass only reports a Set, which has no inherent order.
func diagnosticSortedNames(names diagnostic.Set[string]) []string {
	return diagnostic.Sorted(names, func(a, b string) bool { return a < b })
}
