package completion

import (
	"fmt"
	"strings"
)

type ZshGenerator struct{}

func (g *ZshGenerator) Generate(programName string, data Data) string {
	var script strings.Builder

	script.WriteString(fmt.Sprintf(`#compdef %[1]s

__%[1]s_completion() {
    _arguments -s -S \`, programName))

	for _, o := range data.Options {
		desc := escapeZsh(describe(o))
		entry := fmt.Sprintf("'(-%[1]c --%[2]s)'{-%[1]c,--%[2]s}'[%[3]s]'", o.Short, o.Long, desc)
		if o.TakesValue {
			entry += fmt.Sprintf("':%s:_files'", o.Long)
		}
		script.WriteString(fmt.Sprintf(`
        %s \`, entry))
	}

	for i, p := range data.Parameters {
		script.WriteString(fmt.Sprintf(`
        '%d:%s:_files' \`, i+1, escapeZsh(p.Name)))
	}

	script.WriteString(fmt.Sprintf(`
        '*::arguments:_files'
}

__%[1]s_completion "$@"
`, programName))

	return script.String()
}
