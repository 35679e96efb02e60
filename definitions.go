package argsparser

import (
	"errors"
	"log/slog"
	"reflect"

	"github.com/Exilio016/args-parser/parse"
	"github.com/Exilio016/args-parser/util"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ConfigureParserFunc is used when defining a Parser with NewParserWith
type ConfigureParserFunc func(parser *Parser, err *error)

// ConfigureOptionFunc is used when defining an Option with NewOpt
type ConfigureOptionFunc func(option *Option, err *error)

// MissingValuePolicy decides what happens when the last argument is an option still waiting for its value
type MissingValuePolicy int

const (
	// MissingValueError fails the parse with ErrMissingValue
	MissingValueError MissingValuePolicy = iota
	// MissingValueIgnore leaves the option unbound: HasOption reports false for it
	MissingValueIgnore
)

// ExtraParametersPolicy decides what happens to positional arguments beyond the declared parameters
type ExtraParametersPolicy int

const (
	// ExtraParametersIgnore keeps surplus positionals aside, see Result.Extra
	ExtraParametersIgnore ExtraParametersPolicy = iota
	// ExtraParametersError fails the parse with ErrUnexpectedParameter
	ExtraParametersError
)

// Option describes a recognized command-line option. Short is the key under which a parsed
// option is queried; Long is used for the --long and --long=value forms.
type Option struct {
	Short       rune
	Long        string
	Description string
	TakesValue  bool
	Required    bool
}

// Parameter describes a positional parameter. Parameters bind in registration order and are
// always required.
type Parameter struct {
	Name        string
	Description string
}

// Parser holds the registered options and parameters. Registration must complete before
// parsing; Parse never mutates the Parser, so one Parser can serve concurrent parses.
type Parser struct {
	programName     string
	options         *orderedmap.OrderedMap[rune, *Option]
	longNames       map[string]rune
	parameters      *orderedmap.OrderedMap[string, *Parameter]
	missingValue    MissingValuePolicy
	extraParameters ExtraParametersPolicy
	listFunc        util.ListDelimiterFunc
	wrapWidth       int
	terminal        util.Terminal
	logger          *slog.Logger
	boundType       reflect.Type
	bindings        []fieldBinding
}

// KeyValue pairs an option with the value it was given (empty for bare flags)
type KeyValue struct {
	Key   rune
	Value string
}

var (
	ErrUnknownOption       = errors.New("unknown option")
	ErrUnexpectedValue     = errors.New("option takes no value")
	ErrMissingValue        = errors.New("missing option value")
	ErrRequiredOption      = errors.New("required option missing")
	ErrRequiredParameter   = errors.New("required parameter missing")
	ErrUnexpectedParameter = errors.New("unexpected parameter")
	ErrDuplicateOption     = errors.New("duplicate option")
	ErrDuplicateParameter  = errors.New("duplicate parameter")
	ErrInvalidOption       = errors.New("invalid option")
	ErrInvalidParameter    = errors.New("invalid parameter")
	ErrOptionNotSet        = errors.New("option not set")
	ErrUnsupportedShell    = errors.New("unsupported shell")
	ErrInvalidTag          = parse.ErrInvalidTag
	ErrBindTarget          = errors.New("invalid bind target")
	ErrInvalidCommandLine  = errors.New("invalid command line")
	ErrInvalidConfig       = errors.New("invalid parser configuration")
)

const (
	FmtErrorWithString = "%w: %s"
)

const (
	fmtUnknownShort        = "Unknown option '-%c'!"
	fmtUnknownLong         = "Unknown option '--%s'!"
	fmtUnexpectedValue     = "Option '--%s' should have no arguments!"
	fmtMissingValue        = "Option '--%s' requires an argument!"
	fmtRequiredOption      = "Option '--%s' is required!"
	fmtRequiredParameter   = "Parameter <%s> is required!"
	fmtUnexpectedParameter = "Unexpected parameter '%s'!"
)
