package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		wantErr bool
	}{
		{name: "empty ok", output: "", wantErr: false},
		{name: "table ok", output: "table", wantErr: false},
		{name: "json ok", output: "json", wantErr: false},
		{name: "yaml rejected", output: "yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateOutputFormat(tt.output)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestPrintJSON_Indented(t *testing.T) {
	var b strings.Builder
	require.NoError(t, printJSON(&b, map[string]int{"cards": 6}))
	require.Equal(t, "{\n  \"cards\": 6\n}\n", b.String())
}
