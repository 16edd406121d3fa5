package cli_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/locqa/locqa/internal/adapters/inbound/cli"
	"github.com/locqa/locqa/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCommand_RecordsRuns(t *testing.T) {
	project := t.TempDir()

	for i := 0; i < 2; i++ {
		cmd := cli.NewRootCmdForTest()
		cmd.SetOut(new(bytes.Buffer))
		cmd.SetArgs([]string{"check", fixture("strings.csv"),
			"--path", project,
			"--glossary", fixture("glossary.json"),
		})
		require.NoError(t, cmd.Execute())
	}

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"history", project, "--json"})
	require.NoError(t, cmd.Execute())

	var entries []domain.RunEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.NotEqual(t, entries[0].RunID, entries[1].RunID)
	assert.Equal(t, 5, entries[1].Records)
}

func TestHistoryCommand_Empty(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"history", t.TempDir()})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "No run history found.")
}

func TestHistoryCommand_NoHistoryFlag(t *testing.T) {
	project := t.TempDir()

	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"check", fixture("clean.csv"), "--path", project, "--no-history"})
	require.NoError(t, cmd.Execute())

	cmd = cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"history", project, "--json"})
	require.NoError(t, cmd.Execute())
	assert.JSONEq(t, "[]", buf.String())
}
