package argsparser

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/Exilio016/args-parser/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func FuzzParse(f *testing.F) {
	f.Add("-a2こんにちは")
	f.Add("--long")
	f.Add("-vxffile")
	f.Add("-- value")
	f.Add("   --verbose ok   ")
	f.Add("-漢字=こんにちは こんにち")
	f.Add("0")
	f.Add("-")
	f.Add("-a \\'-xtra\\'")
	f.Add("-a -x 000000 -- --")
	f.Add("--file=a=b -f")
	f.Fuzz(func(t *testing.T, rawArgs string) {
		args, err := parse.Split(rawArgs)
		if err != nil {
			return
		}
		args = append([]string{"fuzz"}, args...)

		p := NewParser("fuzz")
		require.NoError(t, p.Option('a', "all", "", false, true))
		require.NoError(t, p.Option('x', "xtra", "", false, false))
		require.NoError(t, p.Option('v', "verbose", "", false, false))
		require.NoError(t, p.Option('f', "file", "", false, true))
		require.NoError(t, p.Option('漢', "漢字", "", false, true))
		require.NoError(t, p.AddParameter("first", ""))

		result, err := p.Parse(args)
		if err != nil {
			assert.Nil(t, result)
			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.NotEmpty(t, parseErr.Message)
			assert.NotContains(t, parseErr.Message, "%!")
			return
		}

		again, err := p.Parse(args)
		require.NoError(t, err)
		assert.Equal(t, result.Options(), again.Options())
		assert.Equal(t, result.Extra(), again.Extra())

		for _, kv := range result.Options() {
			opt, ok := p.LookupShort(kv.Key)
			require.True(t, ok, "option -%c was never registered", kv.Key)
			_, hasValue := result.GetOptionValue(kv.Key)
			assert.Equal(t, opt.TakesValue, hasValue)
		}
		first, ok := result.GetParameter("first")
		assert.True(t, ok)
		assert.False(t, strings.HasPrefix(first, "-") && first != "-" && !slices.Contains(args, "--"),
			"%q bound as a parameter without an end-of-options marker", first)
	})
}
