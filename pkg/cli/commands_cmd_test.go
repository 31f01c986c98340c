package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsCmd_JSON(t *testing.T) {
	cmd, out := newTestRootCmd(t, "commands", "-o", "json")
	require.NoError(t, cmd.Execute())

	var entries []CommandEntry
	require.NoError(t, json.Unmarshal(out.Bytes(), &entries))

	paths := make(map[string]CommandEntry, len(entries))
	for _, e := range entries {
		paths[e.Path] = e
	}
	for _, want := range []string{"render", "cards", "version", "commands"} {
		assert.Contains(t, paths, want)
	}

	render := paths["render"]
	require.Len(t, render.Flags, 1)
	assert.Equal(t, "out", render.Flags[0].Name)
	assert.Equal(t, "string", render.Flags[0].Type)
}

func TestCommandsCmd_Filter(t *testing.T) {
	cmd, out := newTestRootCmd(t, "commands", "--filter", "HTML", "-o", "json")
	require.NoError(t, cmd.Execute())

	var entries []CommandEntry
	require.NoError(t, json.Unmarshal(out.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "render", entries[0].Path)
}

func TestCommandsCmd_Table(t *testing.T) {
	cmd, out := newTestRootCmd(t, "commands")
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "PATH")
	assert.Contains(t, out.String(), "List the route cards in display order")
}
