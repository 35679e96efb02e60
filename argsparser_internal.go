package argsparser

import (
	"strings"
	"unicode/utf8"

	"github.com/ef-ds/deque"
)

type scanState int

const (
	stateNormal scanState = iota
	stateAwaitingValue
)

// scanner carries the state of one Parse call. The Parser itself is only read.
type scanner struct {
	parser       *Parser
	state        scanState
	pending      *Option
	endOfOptions bool
	slots        *deque.Deque
	result       *Result
}

func (s *Parser) newScanner() *scanner {
	slots := deque.New()
	for pair := s.parameters.Oldest(); pair != nil; pair = pair.Next() {
		slots.PushBack(pair.Value)
	}

	return &scanner{
		parser: s,
		state:  stateNormal,
		slots:  slots,
		result: newResult(s.listFunc),
	}
}

// step consumes a single token
func (sc *scanner) step(tok string) error {
	switch {
	case sc.state == stateAwaitingValue:
		// taken verbatim, even when it looks like an option or is "--"
		sc.bindValue(sc.pending, tok)
		sc.pending = nil
		sc.state = stateNormal
		return nil
	case sc.endOfOptions:
		return sc.positional(tok)
	case tok == "--":
		sc.endOfOptions = true
		sc.parser.logger.Debug("end of options")
		return nil
	case strings.HasPrefix(tok, "--"):
		return sc.longOption(tok[2:])
	case len(tok) > 1 && tok[0] == '-':
		return sc.shortOptions(tok[1:])
	default:
		return sc.positional(tok)
	}
}

func (sc *scanner) longOption(body string) error {
	name, value, hasValue := strings.Cut(body, "=")
	opt, found := sc.parser.LookupLong(name)
	if !found {
		return newParseError(ErrUnknownOption, fmtUnknownLong, name)
	}

	switch {
	case hasValue && !opt.TakesValue:
		return newParseError(ErrUnexpectedValue, fmtUnexpectedValue, name)
	case hasValue:
		sc.bindValue(opt, value)
	case opt.TakesValue:
		sc.await(opt)
	default:
		sc.bindFlag(opt)
	}

	return nil
}

// shortOptions handles a bundle such as "abc" or "farg". The first value-taking option in the
// bundle consumes the rest of it as its value.
func (sc *scanner) shortOptions(bundle string) error {
	for i := 0; i < len(bundle); {
		r, size := utf8.DecodeRuneInString(bundle[i:])
		i += size

		opt, found := sc.parser.LookupShort(r)
		if !found {
			return newParseError(ErrUnknownOption, fmtUnknownShort, r)
		}
		if !opt.TakesValue {
			sc.bindFlag(opt)
			continue
		}
		if i < len(bundle) {
			sc.bindValue(opt, bundle[i:])
		} else {
			sc.await(opt)
		}
		return nil
	}

	return nil
}

func (sc *scanner) positional(tok string) error {
	if slot, ok := sc.slots.PopFront(); ok {
		param := slot.(*Parameter)
		sc.result.params[param.Name] = tok
		sc.parser.logger.Debug("bound parameter", "name", param.Name, "value", tok)
		return nil
	}

	if sc.parser.extraParameters == ExtraParametersError {
		return newParseError(ErrUnexpectedParameter, fmtUnexpectedParameter, tok)
	}
	sc.result.extra = append(sc.result.extra, tok)
	sc.parser.logger.Debug("extra parameter", "value", tok)

	return nil
}

func (sc *scanner) await(opt *Option) {
	sc.pending = opt
	sc.state = stateAwaitingValue
	sc.parser.logger.Debug("awaiting value", "option", opt.Long)
}

func (sc *scanner) bindFlag(opt *Option) {
	sc.result.flags[opt.Short] = struct{}{}
	sc.parser.logger.Debug("bound flag", "option", opt.Long)
}

func (sc *scanner) bindValue(opt *Option, value string) {
	sc.result.values[opt.Short] = value
	sc.parser.logger.Debug("bound value", "option", opt.Long, "value", value)
}

// finish applies the end-of-input policies
func (sc *scanner) finish() error {
	if sc.state != stateAwaitingValue {
		return nil
	}
	if sc.parser.missingValue == MissingValueError {
		return newParseError(ErrMissingValue, fmtMissingValue, sc.pending.Long)
	}
	sc.parser.logger.Debug("dropping option without value", "option", sc.pending.Long)

	return nil
}

// validate checks required options in registration order, then every parameter in binding
// order. The first violation is reported.
func (s *Parser) validate(result *Result) error {
	for pair := s.options.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.Required && !result.HasOption(pair.Key) {
			return newParseError(ErrRequiredOption, fmtRequiredOption, pair.Value.Long)
		}
	}
	for pair := s.parameters.Oldest(); pair != nil; pair = pair.Next() {
		if _, found := result.params[pair.Key]; !found {
			return newParseError(ErrRequiredParameter, fmtRequiredParameter, pair.Key)
		}
	}

	return nil
}
