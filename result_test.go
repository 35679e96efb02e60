package argsparser

import (
	"testing"
	"time"

	"github.com/Exilio016/args-parser/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTypedResult(t *testing.T, configs ...ConfigureParserFunc) *Result {
	t.Helper()
	configs = append([]ConfigureParserFunc{
		WithProgramName("test"),
		WithOption(NewOpt(WithShort('b'), WithLong("bare"))),
		WithOption(NewOpt(WithShort('B'), WithLong("bool"), WithValue(true))),
		WithOption(NewOpt(WithShort('i'), WithLong("int"), WithValue(true))),
		WithOption(NewOpt(WithShort('u'), WithLong("uint"), WithValue(true))),
		WithOption(NewOpt(WithShort('f'), WithLong("float"), WithValue(true))),
		WithOption(NewOpt(WithShort('d'), WithLong("duration"), WithValue(true))),
		WithOption(NewOpt(WithShort('t'), WithLong("time"), WithValue(true))),
		WithOption(NewOpt(WithShort('l'), WithLong("list"), WithValue(true))),
		WithOption(NewOpt(WithShort('x'), WithLong("text"), WithValue(true))),
	}, configs...)
	parser, err := NewParserWith(configs...)
	require.NoError(t, err)

	result, err := parser.Parse([]string{"test",
		"-b", "-Bfalse", "-i", "-42", "-u7", "-f2.5", "-d", "1m30s",
		"--time=2024-03-01 10:30:00", "--list=a,b|c d", "-x", "abc"})
	require.NoError(t, err)

	return result
}

func TestResult_TypedGetters(t *testing.T) {
	result := newTypedResult(t)

	b, err := result.GetBool('b')
	require.NoError(t, err)
	assert.True(t, b, "a bare flag reads as true")

	b, err = result.GetBool('B')
	require.NoError(t, err)
	assert.False(t, b)

	i, err := result.GetInt('i', 64)
	require.NoError(t, err)
	assert.Equal(t, int64(-42), i)

	u, err := result.GetUint('u', 8)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), u)

	f, err := result.GetFloat('f', 64)
	require.NoError(t, err)
	assert.Equal(t, 2.5, f)

	d, err := result.GetDuration('d')
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, d)

	tm, err := result.GetTime('t')
	require.NoError(t, err)
	assert.True(t, time.Date(2024, 3, 1, 10, 30, 0, 0, time.Local).Equal(tm), "got %s", tm)

	list, err := result.GetList('l')
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, list)
}

func TestResult_TypedGetterErrors(t *testing.T) {
	result := newTypedResult(t)

	_, err := result.GetInt('x', 64)
	assert.ErrorIs(t, err, util.ErrParseInt)
	_, err = result.GetUint('i', 64)
	assert.ErrorIs(t, err, util.ErrParseUint)
	_, err = result.GetFloat('x', 64)
	assert.ErrorIs(t, err, util.ErrParseFloat)
	_, err = result.GetBool('x')
	assert.ErrorIs(t, err, util.ErrParseBool)
	_, err = result.GetDuration('x')
	assert.ErrorIs(t, err, util.ErrParseDuration)
	_, err = result.GetTime('x')
	assert.ErrorIs(t, err, util.ErrParseTime)

	for _, get := range []func() error{
		func() error { _, err := result.GetInt('z', 64); return err },
		func() error { _, err := result.GetUint('z', 64); return err },
		func() error { _, err := result.GetFloat('z', 64); return err },
		func() error { _, err := result.GetBool('z'); return err },
		func() error { _, err := result.GetDuration('z'); return err },
		func() error { _, err := result.GetTime('z'); return err },
		func() error { _, err := result.GetList('z'); return err },
		func() error { _, err := result.GetInt('b', 64); return err },
	} {
		assert.ErrorIs(t, get(), ErrOptionNotSet)
	}
}

func TestResult_CustomListDelimiter(t *testing.T) {
	result := newTypedResult(t, WithListDelimiterFunc(func(r rune) bool { return r == '|' }))

	list, err := result.GetList('l')
	require.NoError(t, err)
	assert.Equal(t, []string{"a,b", "c d"}, list)
}

func TestResult_GetOrDefault(t *testing.T) {
	result := newTypedResult(t)

	assert.Equal(t, "abc", result.GetOrDefault('x', "default"))
	assert.Equal(t, "default", result.GetOrDefault('z', "default"))
	assert.Equal(t, "default", result.GetOrDefault('b', "default"), "bare flags carry no value")
}

func TestResult_Options(t *testing.T) {
	parser := NewParser("test")
	require.NoError(t, parser.Option('z', "zulu", "", false, false))
	require.NoError(t, parser.Option('a', "alpha", "", false, true))
	require.NoError(t, parser.Option('m', "mike", "", false, false))

	result, err := parser.Parse([]string{"test", "-zm", "--alpha", "1"})
	require.NoError(t, err)

	assert.Equal(t, 3, result.OptionCount())
	assert.Equal(t, []KeyValue{
		{Key: 'a', Value: "1"},
		{Key: 'm'},
		{Key: 'z'},
	}, result.Options())
}

func TestResult_RepeatedOptionKeepsLastValue(t *testing.T) {
	parser := NewParser("test")
	require.NoError(t, parser.Option('o', "output", "", false, true))

	result, err := parser.Parse([]string{"test", "-o", "first", "--output=second"})
	require.NoError(t, err)
	value, _ := result.GetOptionValue('o')
	assert.Equal(t, "second", value)
	assert.Equal(t, 1, result.OptionCount())
}
