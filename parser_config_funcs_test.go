package argsparser

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParserWith(t *testing.T) {
	parser, err := NewParserWith(
		WithProgramName("cp"),
		WithOption(NewOpt(WithShort('v'), WithLong("verbose"))),
		WithParameter("source", "file to copy"))
	require.NoError(t, err)

	assert.Equal(t, "cp", parser.ProgramName())
	assert.Len(t, parser.Options(), 1)
	assert.Len(t, parser.Parameters(), 1)
	assert.Equal(t, MissingValueError, parser.missingValue)
	assert.Equal(t, ExtraParametersIgnore, parser.extraParameters)
}

func TestNewParserWith_DefaultProgramName(t *testing.T) {
	parser, err := NewParserWith()
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(os.Args[0]), parser.ProgramName())
}

func TestNewParserWith_Errors(t *testing.T) {
	tests := []struct {
		name     string
		config   ConfigureParserFunc
		expected error
	}{
		{"duplicate option", WithOption(NewOpt(WithShort('v'), WithLong("version"))), ErrDuplicateOption},
		{"invalid option", WithOption(NewOpt(WithShort('-'), WithLong("dash"))), ErrInvalidOption},
		{"duplicate parameter", WithParameter("source", ""), ErrDuplicateParameter},
		{"missing value policy", WithMissingValuePolicy(MissingValuePolicy(9)), ErrInvalidConfig},
		{"extra parameters policy", WithExtraParametersPolicy(ExtraParametersPolicy(9)), ErrInvalidConfig},
		{"nil logger", WithLogger(nil), ErrInvalidConfig},
		{"nil list delimiter", WithListDelimiterFunc(nil), ErrInvalidConfig},
		{"negative wrap width", WithWrapWidth(-1), ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser, err := NewParserWith(
				WithOption(NewOpt(WithShort('v'), WithLong("verbose"))),
				WithParameter("source", ""),
				tt.config)
			assert.Nil(t, parser)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestWithStrict(t *testing.T) {
	parser, err := NewParserWith(
		WithProgramName("test"),
		WithMissingValuePolicy(MissingValueIgnore),
		WithStrict(),
		WithOption(NewOpt(WithShort('f'), WithLong("file"), WithValue(true))))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"test", "-f"})
	assert.ErrorIs(t, err, ErrMissingValue)
	_, err = parser.Parse([]string{"test", "extra"})
	assert.ErrorIs(t, err, ErrUnexpectedParameter)
}

func TestWithLogger(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	parser, err := NewParserWith(WithLogger(logger))
	require.NoError(t, err)
	assert.Same(t, logger, parser.logger)
}

func TestWithWrapWidth(t *testing.T) {
	parser, err := NewParserWith(WithWrapWidth(72))
	require.NoError(t, err)
	assert.Equal(t, 72, NewRenderer(parser).width)
}
