package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "bundled short flags",
			input: "-abc -f arg",
			want:  []string{"-abc", "-f", "arg"},
		},
		{
			name:  "quoted value",
			input: `--message "hello world" -m'single quoted'`,
			want:  []string{"--message", "hello world", "-msingle quoted"},
		},
		{
			name:  "long flag with equals",
			input: `--verbose=3 -- -not-a-flag`,
			want:  []string{"--verbose=3", "--", "-not-a-flag"},
		},
		{
			name:  "escaped quotes",
			input: `echo \"hello\"`,
			want:  []string{"echo", `"hello"`},
		},
		{
			name:  "multiple spaces",
			input: "cmd   arg1    arg2",
			want:  []string{"cmd", "arg1", "arg2"},
		},
		{
			name:  "empty string",
			input: "",
			want:  []string{},
		},
		{
			name:    "unterminated quote",
			input:   `--name "oops`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
