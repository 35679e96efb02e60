// Command argsdemo parses its own command line and prints what it understood.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	argsparser "github.com/Exilio016/args-parser"
)

// ExitError carries the exit status main should use
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

type Config struct {
	Verbose    bool          `argsparser:"short:v;desc:Log parsing details to stderr"`
	Help       bool          `argsparser:"short:h;desc:Show help"`
	Completion string        `argsparser:"short:c;desc:Print a completion script (bash, zsh, fish or powershell)"`
	Output     string        `argsparser:"short:o;desc:Write the report to this file instead of stdout"`
	Retries    int           `argsparser:"short:r;desc:Number of attempts"`
	Timeout    time.Duration `argsparser:"short:t;desc:Time allowed per attempt, e.g. 1m30s"`
	Since      time.Time     `argsparser:"short:s;desc:Only consider files changed after this date"`
	Tags       []string      `argsparser:"short:T;long:tag;desc:Comma separated list of tags"`
}

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(outW, errW io.Writer, args []string) error {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(errW, &slog.HandlerOptions{Level: level}))

	cfg := &Config{Retries: 1, Timeout: 30 * time.Second}
	parser, err := argsparser.NewParserFromStruct("argsdemo", cfg, argsparser.WithLogger(logger))
	if err != nil {
		return err
	}

	// quiet first pass to find out whether debug records are wanted
	if res, err := parser.Parse(args); err == nil && res.HasOption('v') {
		level.Set(slog.LevelDebug)
	}

	result, err := parser.ParseInto(args, cfg)
	if err != nil {
		return &ExitError{Code: 2, Message: fmt.Sprintf("Error: %v\n%s", err, parser.Usage())}
	}

	switch {
	case cfg.Help:
		return parser.PrintHelp(outW)
	case cfg.Completion != "":
		script, err := parser.GenerateCompletion(cfg.Completion)
		if err != nil {
			return &ExitError{Code: 2, Message: fmt.Sprintf("Error: %v", err)}
		}
		_, err = io.WriteString(outW, script)
		return err
	}

	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		outW = f
	}

	return report(outW, cfg, result)
}

func report(w io.Writer, cfg *Config, result *argsparser.Result) error {
	var sb strings.Builder

	for _, kv := range result.Options() {
		if kv.Value == "" {
			fmt.Fprintf(&sb, "-%c\n", kv.Key)
		} else {
			fmt.Fprintf(&sb, "-%c %s\n", kv.Key, kv.Value)
		}
	}
	fmt.Fprintf(&sb, "retries: %d\n", cfg.Retries)
	fmt.Fprintf(&sb, "timeout: %s\n", cfg.Timeout)
	if !cfg.Since.IsZero() {
		fmt.Fprintf(&sb, "since: %s\n", cfg.Since.Format(time.RFC3339))
	}
	if len(cfg.Tags) > 0 {
		fmt.Fprintf(&sb, "tags: %s\n", strings.Join(cfg.Tags, ", "))
	}
	for _, file := range result.Extra() {
		fmt.Fprintf(&sb, "file: %s\n", file)
	}

	_, err := io.WriteString(w, sb.String())

	return err
}
