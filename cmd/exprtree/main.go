package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/lmorg/readline"
	"github.com/mattn/go-isatty"

	"github.com/mattn/exprtree"
	"github.com/mattn/exprtree/history"
	"github.com/mattn/exprtree/lexer"
)

var (
	showTree    = flag.Bool("tree", false, "print trees in box-drawing form")
	showPostfix = flag.Bool("postfix", false, "print the postfix form")
	debug       = flag.Bool("debug", false, "dump the tree structure")
	lenient     = flag.Bool("lenient", false, "keep the first operand when several are left over")
	strictTail  = flag.Bool("strict-tail", false, "fail on an unrecognized token instead of stopping there")
	pow         = flag.Bool("pow", false, "accept ^ as an operator binding tighter than *")
	historyFile = flag.String("history", "", "record evaluations in this SQLite file")
	examples    = flag.Bool("examples", false, "evaluate the bundled examples and exit")
	verbose     = flag.Bool("v", false, "log every stage to stderr")
)

type app struct {
	parser  *exprtree.Parser
	eval    *exprtree.Evaluator
	store   *history.Store
	out     io.Writer
	logger  *log.Logger
	tree    bool
	postfix bool
	debug   bool
}

func newApp(out io.Writer) *app {
	var opts []exprtree.Option
	if *pow {
		opts = append(opts, exprtree.WithOperator("^", 4))
	}
	parser := exprtree.NewParser(exprtree.NewGrammar(opts...))
	parser.Lenient = *lenient
	parser.StrictTail = *strictTail

	logger := log.New(io.Discard, "", 0)
	if *verbose {
		logger = log.New(os.Stderr, "exprtree: ", 0)
	}
	return &app{
		parser:  parser,
		eval:    exprtree.NewEvaluator(),
		out:     out,
		logger:  logger,
		tree:    *showTree,
		postfix: *showPostfix,
		debug:   *debug,
	}
}

// run evaluates one line of input and prints the outcome. The returned
// error is the parse or evaluation failure, already printed.
func (a *app) run(ctx context.Context, line string) error {
	toks, err := lexer.Split(line)
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return err
	}
	a.logger.Printf("tokens: %q", toks)

	node, pf, err := a.parser.ParseTokens(a.parser.Grammar.Tokens(toks))
	entry := &history.Entry{Input: line}
	if pf != nil {
		entry.Postfix = pf.String()
		a.logger.Printf("postfix: %v", pf)
		if pf.Truncated {
			a.logger.Printf("stopped at token %d %q", pf.Stop, toks[pf.Stop])
		}
		if a.postfix {
			fmt.Fprintln(a.out, "postfix:", pf)
		}
	}

	var v int64
	if err == nil {
		if a.tree {
			fmt.Fprint(a.out, node.Tree())
		} else {
			fmt.Fprintln(a.out, node)
		}
		if a.debug {
			fmt.Fprintln(a.out, repr.String(node, repr.Indent("  ")))
		}
		v, err = a.eval.Eval(node)
	}
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		entry.Result, entry.Failed = err.Error(), true
	} else {
		fmt.Fprintln(a.out, "=", v)
		entry.Result = strconv.FormatInt(v, 10)
	}

	if a.store != nil {
		if _, rerr := a.store.Record(ctx, entry); rerr != nil {
			a.logger.Printf("history: %v", rerr)
		}
	}
	return err
}

func (a *app) runExamples(ctx context.Context) error {
	lib, err := exprtree.LoadLib()
	if err != nil {
		return err
	}
	failed := 0
	for _, ex := range lib {
		fmt.Fprintf(a.out, "# %s: %s\n", ex.Name, ex.Doc)
		node, err := a.parser.Parse(ex.Tokens)
		got := ""
		if err == nil {
			var v int64
			v, err = a.eval.Eval(node)
			got = strconv.FormatInt(v, 10)
		}
		if err != nil {
			got = "error: " + err.Error()
		}
		fmt.Fprintf(a.out, "%s\n=> %s\n", strings.Join(ex.Tokens, " "), got)
		if got != ex.Want {
			fmt.Fprintf(a.out, "!! want %s\n", ex.Want)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d examples failed", failed, len(lib))
	}
	return nil
}

func (a *app) batch(ctx context.Context, r io.Reader) int {
	scanner := bufio.NewScanner(r)
	status := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := a.run(ctx, line); err != nil {
			status = 1
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
	return status
}

func (a *app) repl(ctx context.Context) {
	rl := readline.NewInstance()
	rl.SetPrompt("> ")
	if a.store != nil {
		rl.History = &history.Lines{Store: a.store, Ctx: ctx}
	}
	for {
		line, err := rl.Readline()
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		a.run(ctx, line)
	}
}

func main() {
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()
	a := newApp(os.Stdout)

	if *historyFile != "" {
		store, err := history.Open(ctx, *historyFile)
		if err != nil {
			log.Fatal(err)
		}
		defer store.Close()
		a.store = store
	}

	if *examples {
		if err := a.runExamples(ctx); err != nil {
			log.Fatal(err)
		}
		return
	}

	var f *os.File
	var err error

	if flag.NArg() == 0 {
		if isatty.IsTerminal(os.Stdin.Fd()) {
			a.repl(ctx)
			return
		}
		f = os.Stdin
	}

	if flag.NArg() == 1 {
		f, err = os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	if status := a.batch(ctx, f); status != 0 {
		if a.store != nil {
			a.store.Close()
		}
		os.Exit(status)
	}
}
