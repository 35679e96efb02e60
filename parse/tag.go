package parse

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Exilio016/args-parser/util"
)

// TagName is the struct tag key read by UnmarshalTagFormat
const TagName = "argsparser"

// Kind is used to define the kind of entity a struct tag represents
type Kind string

const (
	KindOption Kind = "option"
	KindParam  Kind = "param"
	KindEmpty  Kind = ""
)

// ErrInvalidTag is returned when a struct tag cannot be interpreted
var ErrInvalidTag = errors.New("invalid struct tag")

// TagConfig is used to store struct tag information about an option or parameter
type TagConfig struct {
	Kind        Kind
	Short       rune
	Name        string
	Description string
	Required    bool
	// TakesValue is nil unless the tag sets it explicitly
	TakesValue *bool
}

// UnmarshalTagFormat parses a tag of the form "short:v;long:verbose;desc:be chatty;required:true".
// Keys are kind, short, long (alias name), desc, required and value.
func UnmarshalTagFormat(tag string, field reflect.StructField) (*TagConfig, error) {
	config := &TagConfig{}
	if strings.TrimSpace(tag) == "" {
		return nil, fmt.Errorf("%w: empty tag on field %s", ErrInvalidTag, field.Name)
	}

	for _, part := range strings.Split(tag, ";") {
		if part == "" {
			continue
		}
		key, value, found := strings.Cut(part, ":")
		if !found {
			return nil, fmt.Errorf("%w: invalid tag format in field %s: %s", ErrInvalidTag, field.Name, part)
		}

		switch key {
		case "kind":
			switch Kind(value) {
			case KindOption, KindParam, KindEmpty:
				config.Kind = Kind(value)
			default:
				return nil, fmt.Errorf("%w: invalid kind in field %s: %s (must be 'option', 'param', or empty)",
					ErrInvalidTag, field.Name, value)
			}
		case "short":
			r, size := utf8.DecodeRuneInString(value)
			if r == utf8.RuneError || size != len(value) {
				return nil, fmt.Errorf("%w: short name of field %s must be a single character, got %q",
					ErrInvalidTag, field.Name, value)
			}
			config.Short = r
		case "long", "name":
			config.Name = value
		case "desc":
			config.Description = value
		case "required":
			boolVal, err := strconv.ParseBool(value)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid 'required' value in field %s: %v", ErrInvalidTag, field.Name, err)
			}
			config.Required = boolVal
		case "value":
			boolVal, err := strconv.ParseBool(value)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid 'value' value in field %s: %v", ErrInvalidTag, field.Name, err)
			}
			config.TakesValue = &boolVal
		default:
			return nil, fmt.Errorf("%w: unrecognized key '%s' in field %s", ErrInvalidTag, key, field.Name)
		}
	}

	if config.Kind == KindEmpty {
		config.Kind = KindOption
	}

	return config, nil
}

// InferTakesValue reports whether a field of this type needs a value on the command line.
// Bool fields map to bare flags; every other supported type takes a value.
func InferTakesValue(field reflect.StructField) bool {
	return util.UnwrapType(field.Type).Kind() != reflect.Bool
}

// IsSupportedField reports whether values can be converted into the field's type
func IsSupportedField(field reflect.StructField) bool {
	ok, _ := util.CanConvert(reflect.New(util.UnwrapType(field.Type)).Interface())
	return ok
}
