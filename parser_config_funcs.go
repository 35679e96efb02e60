package argsparser

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Exilio016/args-parser/util"
)

// NewParserWith allows initialization of Parser using option functions. The caller should always test for error on
// return because Parser will be nil when an error occurs during initialization.
//
// Configuration example:
//
//	parser, err := NewParserWith(
//		WithProgramName("cp"),
//		WithOption(NewOpt(
//			WithShort('v'),
//			WithLong("verbose"),
//			WithDescription("explain what is being done"))),
//		WithOption(NewOpt(
//			WithShort('S'),
//			WithLong("suffix"),
//			WithDescription("override the usual backup suffix"),
//			WithValue(true))),
//		WithParameter("source", "file to copy"),
//		WithParameter("dest", "destination"),
//		WithStrict())
//
// The program name defaults to the base name of os.Args[0].
func NewParserWith(configs ...ConfigureParserFunc) (*Parser, error) {
	programName := ""
	if len(os.Args) > 0 {
		programName = filepath.Base(os.Args[0])
	}
	parser := NewParser(programName)

	var err error
	for _, config := range configs {
		config(parser, &err)
		if err != nil {
			return nil, err
		}
	}

	return parser, nil
}

// WithProgramName sets the name shown in usage text and completion scripts
func WithProgramName(name string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.programName = name
	}
}

// WithOption is a wrapper for AddOption
func WithOption(option *Option) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.AddOption(option)
	}
}

// WithParameter is a wrapper for AddParameter
func WithParameter(name, description string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.AddParameter(name, description)
	}
}

// WithMissingValuePolicy selects what happens when the last argument is an option waiting for its value
func WithMissingValuePolicy(policy MissingValuePolicy) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		switch policy {
		case MissingValueError, MissingValueIgnore:
			parser.missingValue = policy
		default:
			*err = fmt.Errorf("%w: unknown missing value policy %d", ErrInvalidConfig, policy)
		}
	}
}

// WithExtraParametersPolicy selects what happens to positional arguments beyond the declared parameters
func WithExtraParametersPolicy(policy ExtraParametersPolicy) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		switch policy {
		case ExtraParametersIgnore, ExtraParametersError:
			parser.extraParameters = policy
		default:
			*err = fmt.Errorf("%w: unknown extra parameters policy %d", ErrInvalidConfig, policy)
		}
	}
}

// WithStrict rejects both a missing trailing value and surplus positional arguments
func WithStrict() ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.missingValue = MissingValueError
		parser.extraParameters = ExtraParametersError
	}
}

// WithLogger installs a logger receiving debug records about each parse
func WithLogger(logger *slog.Logger) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		if logger == nil {
			*err = fmt.Errorf("%w: nil logger", ErrInvalidConfig)
			return
		}
		parser.logger = logger
	}
}

// WithListDelimiterFunc replaces the delimiters used by Result.GetList and list-typed struct fields
func WithListDelimiterFunc(delimiterFunc util.ListDelimiterFunc) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		if delimiterFunc == nil {
			*err = fmt.Errorf("%w: nil list delimiter func", ErrInvalidConfig)
			return
		}
		parser.listFunc = delimiterFunc
	}
}

// WithWrapWidth wraps help descriptions to width columns. Zero means the terminal width is used
// by PrintHelp.
func WithWrapWidth(width int) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		if width < 0 {
			*err = fmt.Errorf("%w: negative wrap width %d", ErrInvalidConfig, width)
			return
		}
		parser.wrapWidth = width
	}
}

// WithTerminal replaces the terminal used by PrintHelp to detect the output width
func WithTerminal(terminal util.Terminal) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.terminal = terminal
	}
}
