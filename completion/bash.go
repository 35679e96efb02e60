package completion

import (
	"fmt"
	"strings"
)

type BashGenerator struct{}

func (g *BashGenerator) Generate(programName string, data Data) string {
	var script strings.Builder

	script.WriteString(fmt.Sprintf(`#!/bin/bash

function __%[1]s_completion() {
    local cur prev
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Options expecting a value complete files
    case "${prev}" in`, programName))

	var valued []string
	for _, o := range data.Options {
		if o.TakesValue {
			valued = append(valued, fmt.Sprintf("-%c", o.Short), "--"+o.Long)
		}
	}
	if len(valued) > 0 {
		script.WriteString(fmt.Sprintf(`
        %s)
            COMPREPLY=( $(compgen -f -- "$cur") )
            return
            ;;`, strings.Join(valued, "|")))
	}

	script.WriteString(`
    esac

    if [[ "$cur" == -* ]]; then
        local flags=()`)

	for _, o := range data.Options {
		desc := escapeBash(describe(o))
		script.WriteString(fmt.Sprintf(`
        flags+=(-%c[%s])
        flags+=(--%s[%s])`, o.Short, desc, o.Long, desc))
	}

	script.WriteString(fmt.Sprintf(`
        flags+=(--)

        COMPREPLY=( $(compgen -W "${flags[*]%%%%[*}" -- "$cur") )
        return
    fi

    COMPREPLY=( $(compgen -f -- "$cur") )
}

complete -F __%[1]s_completion %[1]s
`, programName))

	return script.String()
}
