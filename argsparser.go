// Package argsparser provides POSIX/GNU style command-line parsing.
//
// The following forms are recognized:
//
//	-x              a short option
//	-abc            bundled short options
//	-farg, -f arg   a short option and its value
//	--flag          a long option
//	--flag=value    a long option and its value (also --flag value)
//	--              end of options: every following token is positional
//
// Options and ordered positional parameters are registered on a Parser. Parse walks an
// argument vector once and returns either a *Result or a *ParseError; nothing is partially
// populated on failure.
package argsparser

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode"

	"github.com/Exilio016/args-parser/completion"
	"github.com/Exilio016/args-parser/parse"
	"github.com/Exilio016/args-parser/util"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// NewParser returns an empty Parser. Use NewParserWith to configure a Parser using option
// functions.
func NewParser(programName string) *Parser {
	return &Parser{
		programName: programName,
		options:     orderedmap.New[rune, *Option](),
		longNames:   map[string]rune{},
		parameters:  orderedmap.New[string, *Parameter](),
		listFunc:    util.DefaultListDelimiter,
		terminal:    util.DefaultTerminal{},
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option registers an option. It is shorthand for AddOption.
func (s *Parser) Option(short rune, long, description string, required, takesValue bool) error {
	return s.AddOption(&Option{
		Short:       short,
		Long:        long,
		Description: description,
		Required:    required,
		TakesValue:  takesValue,
	})
}

// AddOption registers a copy of opt. Both the short and the long name must be unused.
func (s *Parser) AddOption(opt *Option) error {
	if opt == nil {
		return fmt.Errorf("%w: nil option", ErrInvalidOption)
	}
	if err := validateOption(opt); err != nil {
		return err
	}
	if existing, found := s.options.Get(opt.Short); found {
		return fmt.Errorf("%w: -%c is already used by --%s", ErrDuplicateOption, opt.Short, existing.Long)
	}
	if short, found := s.longNames[opt.Long]; found {
		return fmt.Errorf("%w: --%s is already used by -%c", ErrDuplicateOption, opt.Long, short)
	}

	stored := *opt
	s.options.Set(stored.Short, &stored)
	s.longNames[stored.Long] = stored.Short

	return nil
}

// AddParameter appends a positional parameter. Parameters bind in the order they are added.
func (s *Parser) AddParameter(name, description string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidParameter)
	}
	if _, found := s.parameters.Get(name); found {
		return fmt.Errorf(FmtErrorWithString, ErrDuplicateParameter, name)
	}
	s.parameters.Set(name, &Parameter{Name: name, Description: description})

	return nil
}

// LookupShort returns the option registered under r
func (s *Parser) LookupShort(r rune) (*Option, bool) {
	return s.options.Get(r)
}

// LookupLong returns the option registered under the long name
func (s *Parser) LookupLong(name string) (*Option, bool) {
	short, found := s.longNames[name]
	if !found {
		return nil, false
	}

	return s.options.Get(short)
}

// Options returns all registered options in registration order
func (s *Parser) Options() []*Option {
	return s.filterOptions(func(*Option) bool { return true })
}

// RequiredOptions returns the required options in registration order
func (s *Parser) RequiredOptions() []*Option {
	return s.filterOptions(func(o *Option) bool { return o.Required })
}

// OptionalOptions returns the optional options in registration order
func (s *Parser) OptionalOptions() []*Option {
	return s.filterOptions(func(o *Option) bool { return !o.Required })
}

// Parameters returns the positional parameters in binding order
func (s *Parser) Parameters() []*Parameter {
	params := make([]*Parameter, 0, s.parameters.Len())
	for pair := s.parameters.Oldest(); pair != nil; pair = pair.Next() {
		params = append(params, pair.Value)
	}

	return params
}

func (s *Parser) ProgramName() string {
	return s.programName
}

// Parse scans args and validates the outcome. args[0] is taken to be the program name and is
// skipped. The Parser is not modified, so Parse may be called concurrently.
func (s *Parser) Parse(args []string) (*Result, error) {
	sc := s.newScanner()

	state := parse.NewState(args)
	state.Advance()
	for state.Advance() {
		if err := sc.step(state.CurrentArg()); err != nil {
			s.logger.Debug("parse failed", "pos", state.Pos(), "arg", state.CurrentArg(), "error", err)
			return nil, err
		}
	}

	if err := sc.finish(); err != nil {
		s.logger.Debug("parse failed", "error", err)
		return nil, err
	}
	if err := s.validate(sc.result); err != nil {
		s.logger.Debug("validation failed", "error", err)
		return nil, err
	}

	s.logger.Debug("parse complete",
		"options", sc.result.OptionCount(),
		"parameters", len(sc.result.params),
		"extra", len(sc.result.extra))

	return sc.result, nil
}

// ParseString splits cmdline with shell quoting rules and parses the resulting arguments.
// cmdline must not include the program name.
func (s *Parser) ParseString(cmdline string) (*Result, error) {
	args, err := parse.Split(cmdline)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCommandLine, err)
	}

	return s.Parse(append([]string{s.programName}, args...))
}

// Usage returns the one-line usage summary
func (s *Parser) Usage() string {
	return NewRenderer(s).UsageLine()
}

// Help returns the usage summary followed by one line per parameter and option
func (s *Parser) Help() string {
	return NewRenderer(s).Help()
}

// PrintHelp writes Help to w. Without a configured wrap width, descriptions are wrapped to the
// terminal width when w is a terminal.
func (s *Parser) PrintHelp(w io.Writer) error {
	r := NewRenderer(s)
	if s.wrapWidth == 0 {
		r.SetWidth(util.TerminalWidth(w, s.terminal))
	}
	_, err := io.WriteString(w, r.Help())

	return err
}

// GenerateCompletion returns a completion script for shell (bash, zsh, fish or powershell)
func (s *Parser) GenerateCompletion(shell string) (string, error) {
	gen, ok := completion.GetGenerator(shell)
	if !ok {
		return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedShell, shell,
			strings.Join(completion.Shells(), ", "))
	}

	return gen.Generate(s.programName, s.completionData()), nil
}

func (s *Parser) completionData() completion.Data {
	data := completion.Data{}
	for _, o := range s.Options() {
		data.Options = append(data.Options, completion.Option{
			Short:       o.Short,
			Long:        o.Long,
			Description: o.Description,
			TakesValue:  o.TakesValue,
			Required:    o.Required,
		})
	}
	for _, p := range s.Parameters() {
		data.Parameters = append(data.Parameters, completion.Parameter{
			Name:        p.Name,
			Description: p.Description,
		})
	}

	return data
}

func (s *Parser) filterOptions(keep func(*Option) bool) []*Option {
	opts := make([]*Option, 0, s.options.Len())
	for pair := s.options.Oldest(); pair != nil; pair = pair.Next() {
		if keep(pair.Value) {
			opts = append(opts, pair.Value)
		}
	}

	return opts
}

func validateOption(opt *Option) error {
	if opt.Short == 0 || opt.Short == '-' || unicode.IsSpace(opt.Short) || !unicode.IsGraphic(opt.Short) {
		return fmt.Errorf("%w: invalid short name %q", ErrInvalidOption, opt.Short)
	}
	if opt.Long == "" || strings.HasPrefix(opt.Long, "-") || strings.ContainsAny(opt.Long, "= \t") {
		return fmt.Errorf("%w: invalid long name %q", ErrInvalidOption, opt.Long)
	}

	return nil
}
