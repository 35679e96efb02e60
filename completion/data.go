// Package completion renders shell completion scripts for a registered set of options
// and positional parameters.
package completion

import (
	"sort"
	"strings"
)

// Option describes one completable option
type Option struct {
	Short       rune
	Long        string
	Description string
	TakesValue  bool
	Required    bool
}

// Parameter describes one positional parameter
type Parameter struct {
	Name        string
	Description string
}

// Data is used to store the completion data for all registered options and parameters
type Data struct {
	Options    []Option
	Parameters []Parameter
}

// Generator renders a completion script for programName
type Generator interface {
	Generate(programName string, data Data) string
}

var generators = map[string]Generator{
	"bash":       &BashGenerator{},
	"zsh":        &ZshGenerator{},
	"fish":       &FishGenerator{},
	"powershell": &PowerShellGenerator{},
}

// GetGenerator returns the generator for shell and false when the shell is not supported
func GetGenerator(shell string) (Generator, bool) {
	gen, ok := generators[strings.ToLower(shell)]
	return gen, ok
}

// Shells returns the supported shell names in sorted order
func Shells() []string {
	shells := make([]string, 0, len(generators))
	for shell := range generators {
		shells = append(shells, shell)
	}
	sort.Strings(shells)

	return shells
}

func describe(o Option) string {
	if o.Required {
		return "(required) " + o.Description
	}
	return o.Description
}

func escapeBash(desc string) string {
	desc = strings.ReplaceAll(desc, `"`, `\"`)
	desc = strings.ReplaceAll(desc, `'`, `\'`)
	desc = strings.ReplaceAll(desc, `$`, `\$`)
	desc = strings.ReplaceAll(desc, `[`, `\[`)
	desc = strings.ReplaceAll(desc, `]`, `\]`)
	return desc
}

func escapeFish(desc string) string {
	return strings.ReplaceAll(desc, "'", "\\'")
}

func escapePowerShell(desc string) string {
	desc = strings.ReplaceAll(desc, "`", "``")
	desc = strings.ReplaceAll(desc, `"`, "`\"")
	desc = strings.ReplaceAll(desc, `$`, "`$")
	desc = strings.ReplaceAll(desc, `'`, `''`)
	return desc
}

func escapeZsh(s string) string {
	s = strings.ReplaceAll(s, "[", "\\[")
	s = strings.ReplaceAll(s, "]", "\\]")
	s = strings.ReplaceAll(s, "'", `'\''`)
	s = strings.ReplaceAll(s, ":", "\\:")
	return s
}
