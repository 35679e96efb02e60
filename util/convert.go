package util

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ListDelimiterFunc reports whether a rune separates list elements.
type ListDelimiterFunc func(matchOn rune) bool

var (
	ErrUnsupportedTypeConversion = errors.New("unsupported type conversion")
	ErrPointerExpected           = errors.New("pointer to variable expected")
	ErrParseBool                 = errors.New("invalid boolean value")
	ErrParseInt                  = errors.New("invalid integer value")
	ErrParseUint                 = errors.New("invalid unsigned integer value")
	ErrParseFloat                = errors.New("invalid float value")
	ErrParseDuration             = errors.New("invalid duration value")
	ErrParseTime                 = errors.New("invalid time value")
)

// DefaultListDelimiter splits list values on ',', '|' and ' '.
func DefaultListDelimiter(r rune) bool {
	return r == ',' || r == '|' || r == ' '
}

// SplitList splits value into its non-empty elements. A nil delimiterFunc
// falls back to DefaultListDelimiter.
func SplitList(value string, delimiterFunc ListDelimiterFunc) []string {
	if delimiterFunc == nil {
		delimiterFunc = DefaultListDelimiter
	}

	return strings.FieldsFunc(value, delimiterFunc)
}

// ConvertString converts value and stores the result in data, which must be a pointer
// to one of the types accepted by CanConvert.
func ConvertString(value string, data any, delimiterFunc ListDelimiterFunc) error {
	switch t := data.(type) {
	case *string:
		*t = value
	case *[]string:
		*t = SplitList(value, delimiterFunc)
	case *bool:
		val, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrParseBool, value)
		}
		*t = val
	case *int:
		val, err := strconv.ParseInt(value, 10, strconv.IntSize)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrParseInt, value)
		}
		*t = int(val)
	case *[]int:
		values := SplitList(value, delimiterFunc)
		temp := make([]int, len(values))
		for i, v := range values {
			val, err := strconv.ParseInt(v, 10, strconv.IntSize)
			if err != nil {
				return fmt.Errorf("%w: %s", ErrParseInt, v)
			}
			temp[i] = int(val)
		}
		*t = temp
	case *int64:
		val, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrParseInt, value)
		}
		*t = val
	case *int32:
		val, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrParseInt, value)
		}
		*t = int32(val)
	case *uint:
		val, err := strconv.ParseUint(value, 10, strconv.IntSize)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrParseUint, value)
		}
		*t = uint(val)
	case *uint64:
		val, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrParseUint, value)
		}
		*t = val
	case *uint32:
		val, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrParseUint, value)
		}
		*t = uint32(val)
	case *float64:
		val, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrParseFloat, value)
		}
		*t = val
	case *float32:
		val, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrParseFloat, value)
		}
		*t = float32(val)
	case *time.Duration:
		val, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrParseDuration, value)
		}
		*t = val
	case *time.Time:
		val, err := dateparse.ParseLocal(value)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrParseTime, value)
		}
		*t = val
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedTypeConversion, data)
	}

	return nil
}

// CanConvert reports whether ConvertString can store values in data.
func CanConvert(data any) (bool, error) {
	if data == nil || reflect.TypeOf(data).Kind() != reflect.Ptr {
		return false, fmt.Errorf("%w: got %T", ErrPointerExpected, data)
	}

	switch data.(type) {
	case *string, *[]string, *bool,
		*int, *[]int, *int64, *int32,
		*uint, *uint64, *uint32,
		*float64, *float32,
		*time.Duration, *time.Time:
		return true, nil
	}

	return false, fmt.Errorf("%w: %T", ErrUnsupportedTypeConversion, data)
}
