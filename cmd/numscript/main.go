package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/gommon/color"
	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"

	"numscript/internal"
)

const (
	configFile = ".numscript.yml"
	promptMain = ">> "
	promptCont = ".. "
	banner     = "numscript REPL\nCtrl+C cancels input, Ctrl+D exits. :tree toggles tree output, :quit exits."
)

type stdPrinter struct{}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(w, format, a...)
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, a...)
}

func main() {
	configPath := flag.String("config", "", "YAML config file (default ~/"+configFile+" when present)")
	verbose := flag.Bool("v", false, "log pipeline details to stderr")
	tree := flag.Bool("tree", false, "print the parsed tree instead of running")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: numscript [-config file] [-v] [-tree] [/path/to/source.ns]")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logrus.Fatal(err)
	}

	paint := color.New()
	if !cfg.Color {
		paint.Disable()
	}

	session := internal.NewSession(cfg, stdPrinter{})
	if *verbose {
		session.Logger().SetLevel(logrus.DebugLevel)
	}

	switch flag.NArg() {
	case 0:
		os.Exit(repl(session, cfg, paint, *tree))
	case 1:
		os.Exit(runFile(session, flag.Arg(0), paint, *tree))
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func loadConfig(path string) (internal.Config, error) {
	if path != "" {
		return internal.LoadConfig(path)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return internal.DefaultConfig(), nil
	}
	path = filepath.Join(home, configFile)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return internal.DefaultConfig(), nil
	}
	return internal.LoadConfig(path)
}

func runFile(session *internal.Session, path string, paint *color.Color, tree bool) int {
	absPath, err := filepath.Abs(path)
	if err != nil {
		logrus.Fatal(err)
	}

	b, err := os.ReadFile(absPath)
	if err != nil {
		logrus.Fatal(err)
	}
	source := string(b)

	session.Logger().WithField("file", absPath).Debug("running source")

	if tree {
		out, err := session.Tree(source)
		if err != nil {
			fmt.Fprintln(os.Stderr, paint.Red(err.Error()))
			return 1
		}
		fmt.Print(out)
		return 0
	}

	if _, err := session.Eval(source); err != nil {
		fmt.Fprintln(os.Stderr, paint.Red(err.Error()))
		return 1
	}
	return 0
}

func repl(session *internal.Session, cfg internal.Config, paint *color.Color, showTree bool) int {
	fmt.Println(banner)

	histPath := cfg.History
	if home, err := os.UserHomeDir(); err == nil && !filepath.IsAbs(histPath) {
		histPath = filepath.Join(home, histPath)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		code, ok := readStatement(ln, session)
		if !ok {
			fmt.Println()
			return 0
		}

		switch strings.TrimSpace(code) {
		case "":
			continue
		case ":quit":
			return 0
		case ":tree":
			showTree = !showTree
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))

		if showTree {
			if out, err := session.Tree(code); err == nil {
				fmt.Print(paint.Grey(out))
			}
		}

		value, err := session.Eval(code)
		if err != nil {
			fmt.Fprintln(os.Stderr, paint.Red(err.Error()))
			continue
		}
		fmt.Println(paint.Blue(value))
	}
}

// readStatement keeps prompting while the parser reports that the input
// stopped in the middle of a construct.
func readStatement(ln *liner.State, session *internal.Session) (string, bool) {
	var b strings.Builder
	prompt := promptMain
	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(line)

		code := b.String()
		if strings.TrimSpace(code) == "" || strings.HasPrefix(strings.TrimSpace(code), ":") {
			return code, true
		}
		if _, err := session.Tree(code); !internal.IsIncomplete(err) {
			return code, true
		}
		prompt = promptCont
	}
}
