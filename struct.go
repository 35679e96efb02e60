package argsparser

import (
	"fmt"
	"reflect"
	"unicode/utf8"

	"github.com/Exilio016/args-parser/parse"
	"github.com/Exilio016/args-parser/util"
	"github.com/iancoleman/strcase"
)

// fieldBinding maps a tagged struct field to the option or parameter registered for it
type fieldBinding struct {
	field string
	index []int
	kind  parse.Kind
	short rune
	param string
}

// NewParserFromStruct registers one option or parameter per field of T carrying an
// `argsparser` tag, for example:
//
//	type Config struct {
//		Verbose bool          `argsparser:"short:v;desc:explain what is being done"`
//		Timeout time.Duration `argsparser:"short:t;long:timeout;required:true"`
//		Source  string        `argsparser:"kind:param;desc:file to read"`
//	}
//
// Long and parameter names default to the kebab-cased field name and the short name to the
// first character of the long name. Bool fields become bare flags unless the tag sets
// value:true. Values are stored into a struct by ParseInto.
func NewParserFromStruct[T any](programName string, v *T, configs ...ConfigureParserFunc) (*Parser, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil struct pointer", ErrBindTarget)
	}

	parser := NewParser(programName)
	var err error
	for _, config := range configs {
		config(parser, &err)
		if err != nil {
			return nil, fmt.Errorf("error configuring parser: %w", err)
		}
	}

	if err = parser.registerStruct(util.UnwrapType(reflect.TypeOf(v))); err != nil {
		return nil, err
	}

	return parser, nil
}

// ParseInto parses args and stores the values of supplied options and parameters into target,
// which must point to the struct type the Parser was built from. Fields of absent options keep
// their current value.
func (s *Parser) ParseInto(args []string, target any) (*Result, error) {
	if s.boundType == nil {
		return nil, fmt.Errorf("%w: parser was not built from a struct", ErrBindTarget)
	}
	structValue, err := util.StructValue(target)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBindTarget, err)
	}
	if structValue.Type() != s.boundType {
		return nil, fmt.Errorf("%w: expected *%s, got %T", ErrBindTarget, s.boundType, target)
	}

	result, err := s.Parse(args)
	if err != nil {
		return nil, err
	}
	if err = s.assign(result, structValue); err != nil {
		return nil, err
	}

	return result, nil
}

func (s *Parser) registerStruct(st reflect.Type) error {
	if st.Kind() != reflect.Struct {
		return fmt.Errorf("%w: only structs can be tagged, got %s", ErrBindTarget, st)
	}

	for i := 0; i < st.NumField(); i++ {
		field := st.Field(i)
		tag, ok := field.Tag.Lookup(parse.TagName)
		if !ok || tag == "-" || !field.IsExported() {
			continue
		}

		config, err := parse.UnmarshalTagFormat(tag, field)
		if err != nil {
			return fmt.Errorf("error processing field %s: %w", field.Name, err)
		}
		if !parse.IsSupportedField(field) {
			return fmt.Errorf("%w: field %s has unsupported type %s", ErrBindTarget, field.Name, field.Type)
		}

		name := config.Name
		if name == "" {
			name = strcase.ToKebab(field.Name)
		}
		binding := fieldBinding{field: field.Name, index: field.Index, kind: config.Kind}

		switch config.Kind {
		case parse.KindParam:
			if err = s.AddParameter(name, config.Description); err != nil {
				return fmt.Errorf("error processing field %s: %w", field.Name, err)
			}
			binding.param = name
		default:
			short := config.Short
			if short == 0 {
				short, _ = utf8.DecodeRuneInString(name)
			}
			takesValue := parse.InferTakesValue(field)
			if config.TakesValue != nil {
				takesValue = *config.TakesValue
			}
			err = s.AddOption(&Option{
				Short:       short,
				Long:        name,
				Description: config.Description,
				Required:    config.Required,
				TakesValue:  takesValue,
			})
			if err != nil {
				return fmt.Errorf("error processing field %s: %w", field.Name, err)
			}
			binding.short = short
		}

		s.bindings = append(s.bindings, binding)
	}
	s.boundType = st

	return nil
}

func (s *Parser) assign(result *Result, structValue reflect.Value) error {
	for _, b := range s.bindings {
		var (
			value string
			found bool
		)
		if b.kind == parse.KindParam {
			value, found = result.GetParameter(b.param)
		} else if value, found = result.GetOptionValue(b.short); !found && result.HasOption(b.short) {
			value, found = "true", true
		}
		if !found {
			continue
		}

		fieldValue := structValue.FieldByIndex(b.index)
		if fieldValue.Kind() == reflect.Ptr {
			if fieldValue.IsNil() {
				fieldValue.Set(reflect.New(fieldValue.Type().Elem()))
			}
			fieldValue = fieldValue.Elem()
		}
		if err := util.ConvertString(value, fieldValue.Addr().Interface(), s.listFunc); err != nil {
			return fmt.Errorf("error setting field %s: %w", b.field, err)
		}
		s.logger.Debug("bound field", "field", b.field, "value", value)
	}

	return nil
}
