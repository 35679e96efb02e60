package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Report(t *testing.T) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	err := run(out, errOut, []string{"argsdemo", "-r3", "--timeout", "1m30s", "-T", "a,b", "one.txt", "--", "-two.txt"})
	require.NoError(t, err)

	assert.Equal(t, "-T a,b\n-r 3\n-t 1m30s\nretries: 3\ntimeout: 1m30s\ntags: a, b\nfile: one.txt\nfile: -two.txt\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestRun_Help(t *testing.T) {
	out := &bytes.Buffer{}

	require.NoError(t, run(out, &bytes.Buffer{}, []string{"argsdemo", "-h"}))
	assert.Contains(t, out.String(), "usage: argsdemo [-vh] [-c <arg>]")
	assert.Contains(t, out.String(), "\t-t, --timeout=<arg>\t\tTime allowed per attempt, e.g. 1m30s\n")
}

func TestRun_Completion(t *testing.T) {
	out := &bytes.Buffer{}

	require.NoError(t, run(out, &bytes.Buffer{}, []string{"argsdemo", "--completion", "zsh"}))
	assert.Contains(t, out.String(), "#compdef argsdemo")

	err := run(out, &bytes.Buffer{}, []string{"argsdemo", "-c", "tcsh"})
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.Code)
}

func TestRun_ParseError(t *testing.T) {
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"argsdemo", "-z"})

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, "Error: Unknown option '-z'!")
	assert.Contains(t, exitErr.Message, "usage: argsdemo")
}

func TestRun_Verbose(t *testing.T) {
	errOut := &bytes.Buffer{}

	require.NoError(t, run(&bytes.Buffer{}, errOut, []string{"argsdemo", "-v", "file"}))
	assert.Contains(t, errOut.String(), "parse complete")
	assert.Contains(t, errOut.String(), "bound field")

	errOut.Reset()
	require.NoError(t, run(&bytes.Buffer{}, errOut, []string{"argsdemo", "file"}))
	assert.Empty(t, errOut.String())
}

func TestRun_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")

	require.NoError(t, run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"argsdemo", "-o", path, "x"}))
	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(written), "file: x\n")
}
