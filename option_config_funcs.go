package argsparser

import "fmt"

// NewOpt convenience initialization method to configure options
//
//	parser.AddOption(NewOpt(
//		WithShort('o'),
//		WithLong("output"),
//		WithDescription("write to file"),
//		WithValue(true),
//		SetRequired(true)))
func NewOpt(configs ...ConfigureOptionFunc) *Option {
	option := &Option{}
	var err error
	for _, config := range configs {
		config(option, &err)
	}

	return option
}

// Set applies configs to the Option and returns the first error encountered
func (o *Option) Set(configs ...ConfigureOptionFunc) error {
	var err error
	for _, config := range configs {
		config(o, &err)
		if err != nil {
			return err
		}
	}

	return nil
}

// WithShort sets the single character used as -x. It is also the key under which the
// parsed option is queried.
func WithShort(short rune) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		if short == 0 || short == '-' {
			*err = fmt.Errorf("%w: invalid short name %q", ErrInvalidOption, short)
			return
		}
		option.Short = short
	}
}

// WithLong sets the name used as --name
func WithLong(long string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Long = long
	}
}

func WithDescription(description string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Description = description
	}
}

// SetRequired makes parsing fail when the option is absent
func SetRequired(required bool) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Required = required
	}
}

// WithValue makes the option consume a value, either attached (-farg, --file=arg) or as the
// next argument
func WithValue(takesValue bool) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.TakesValue = takesValue
	}
}
