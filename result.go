package argsparser

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/Exilio016/args-parser/util"
)

// Result is the outcome of a successful Parse. It is read only.
type Result struct {
	flags    map[rune]struct{}
	values   map[rune]string
	params   map[string]string
	extra    []string
	listFunc util.ListDelimiterFunc
}

func newResult(listFunc util.ListDelimiterFunc) *Result {
	return &Result{
		flags:    map[rune]struct{}{},
		values:   map[rune]string{},
		params:   map[string]string{},
		listFunc: listFunc,
	}
}

// HasOption reports whether the option was given, with or without a value
func (r *Result) HasOption(short rune) bool {
	if _, found := r.flags[short]; found {
		return true
	}
	_, found := r.values[short]

	return found
}

// GetOptionValue returns the value bound to a value-taking option. Bare flags have no value.
func (r *Result) GetOptionValue(short rune) (string, bool) {
	value, found := r.values[short]
	return value, found
}

// GetParameter returns the token bound to the named parameter
func (r *Result) GetParameter(name string) (string, bool) {
	value, found := r.params[name]
	return value, found
}

// Extra returns positional tokens left over after every parameter was bound
func (r *Result) Extra() []string {
	extra := make([]string, len(r.extra))
	copy(extra, r.extra)

	return extra
}

// Options returns the options supplied on the command line ordered by short name.
// Bare flags carry an empty value.
func (r *Result) Options() []KeyValue {
	keyValues := make([]KeyValue, 0, r.OptionCount())
	for key := range r.flags {
		keyValues = append(keyValues, KeyValue{Key: key})
	}
	for key, value := range r.values {
		keyValues = append(keyValues, KeyValue{Key: key, Value: value})
	}
	sort.Slice(keyValues, func(i, j int) bool { return keyValues[i].Key < keyValues[j].Key })

	return keyValues
}

// OptionCount returns the number of distinct options supplied
func (r *Result) OptionCount() int {
	return len(r.flags) + len(r.values)
}

// GetOrDefault returns the value of a value-taking option or defaultValue if it was not given
func (r *Result) GetOrDefault(short rune, defaultValue string) string {
	if value, found := r.values[short]; found {
		return value
	}

	return defaultValue
}

// GetBool returns true for a bare flag, otherwise it converts the option's value
func (r *Result) GetBool(short rune) (bool, error) {
	if _, found := r.flags[short]; found {
		return true, nil
	}
	value, err := r.lookup(short)
	if err != nil {
		return false, err
	}

	var val bool
	err = util.ConvertString(value, &val, r.listFunc)

	return val, err
}

// GetInt attempts to convert the value of an option to an int64
func (r *Result) GetInt(short rune, bitSize int) (int64, error) {
	value, err := r.lookup(short)
	if err != nil {
		return 0, err
	}

	val, err := strconv.ParseInt(value, 10, bitSize)
	if err != nil {
		return 0, fmt.Errorf(FmtErrorWithString, util.ErrParseInt, value)
	}

	return val, nil
}

// GetUint attempts to convert the value of an option to a uint64
func (r *Result) GetUint(short rune, bitSize int) (uint64, error) {
	value, err := r.lookup(short)
	if err != nil {
		return 0, err
	}

	val, err := strconv.ParseUint(value, 10, bitSize)
	if err != nil {
		return 0, fmt.Errorf(FmtErrorWithString, util.ErrParseUint, value)
	}

	return val, nil
}

// GetFloat attempts to convert the value of an option to a float64
func (r *Result) GetFloat(short rune, bitSize int) (float64, error) {
	value, err := r.lookup(short)
	if err != nil {
		return 0, err
	}

	val, err := strconv.ParseFloat(value, bitSize)
	if err != nil {
		return 0, fmt.Errorf(FmtErrorWithString, util.ErrParseFloat, value)
	}

	return val, nil
}

func (r *Result) GetDuration(short rune) (time.Duration, error) {
	value, err := r.lookup(short)
	if err != nil {
		return 0, err
	}

	var val time.Duration
	err = util.ConvertString(value, &val, r.listFunc)

	return val, err
}

// GetTime parses the value of an option as a date in any layout dateparse recognises,
// interpreted in the local time zone
func (r *Result) GetTime(short rune) (time.Time, error) {
	value, err := r.lookup(short)
	if err != nil {
		return time.Time{}, err
	}

	var val time.Time
	err = util.ConvertString(value, &val, r.listFunc)

	return val, err
}

// GetList splits the value of an option on the configured list delimiters
// (',', '|' and ' ' by default)
func (r *Result) GetList(short rune) ([]string, error) {
	value, err := r.lookup(short)
	if err != nil {
		return []string{}, err
	}

	return util.SplitList(value, r.listFunc), nil
}

func (r *Result) lookup(short rune) (string, error) {
	value, found := r.values[short]
	if !found {
		return "", fmt.Errorf("%w: -%c", ErrOptionNotSet, short)
	}

	return value, nil
}
