package completion

import (
	"fmt"
	"strings"
)

type PowerShellGenerator struct{}

func (g *PowerShellGenerator) Generate(programName string, data Data) string {
	var script strings.Builder

	script.WriteString(fmt.Sprintf(`Register-ArgumentCompleter -Native -CommandName %s -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    if ($wordToComplete.StartsWith('-')) {
        @(`, programName))

	for _, o := range data.Options {
		desc := escapePowerShell(describe(o))
		script.WriteString(fmt.Sprintf(`
            [System.Management.Automation.CompletionResult]::new('-%[1]c', '-%[1]c', [System.Management.Automation.CompletionResultType]::ParameterName, '%[3]s')
            [System.Management.Automation.CompletionResult]::new('--%[2]s', '--%[2]s', [System.Management.Automation.CompletionResultType]::ParameterName, '%[3]s')`,
			o.Short, o.Long, desc))
	}

	script.WriteString(`
        ) | Where-Object { $_.CompletionText -like "$wordToComplete*" }
        return
    }
}
`)

	return script.String()
}
