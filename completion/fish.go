package completion

import (
	"fmt"
	"strings"
)

type FishGenerator struct{}

func (g *FishGenerator) Generate(programName string, data Data) string {
	var script strings.Builder

	for _, o := range data.Options {
		cmd := fmt.Sprintf("complete -c %s -s %c -l %s", programName, o.Short, o.Long)
		if o.TakesValue {
			cmd += " -r -F"
		} else {
			cmd += " -f"
		}
		cmd = fmt.Sprintf("%s -d '%s'", cmd, escapeFish(describe(o)))
		script.WriteString(cmd + "\n")
	}

	for _, p := range data.Parameters {
		script.WriteString(fmt.Sprintf("# <%s> %s\n", p.Name, p.Description))
	}

	return script.String()
}
