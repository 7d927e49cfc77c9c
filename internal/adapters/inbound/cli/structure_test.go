package cli_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rolelens/rolelens/internal/adapters/inbound/cli"
	"github.com/rolelens/rolelens/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	perfectRole = "../../../../testdata/roles/perfect"
	bareRole    = "../../../../testdata/roles/bare/myrole"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return buf.String()
}

func TestStructureCommand_PerfectRole(t *testing.T) {
	out := runCommand(t, "structure", perfectRole)

	var report domain.StructureReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	assert.Equal(t, "perfect", report.RoleName)
	assert.Equal(t, 10, report.Summary.DirectoriesPresent)
	assert.Equal(t, 10, report.Summary.TotalExpected)
	assert.Empty(t, report.Issues)
	assert.Empty(t, report.Recommendations)
	require.NotNil(t, report.Metadata)
	assert.Equal(t, "ops-team", report.Metadata.Author)
}

func TestStructureCommand_BareRole(t *testing.T) {
	out := runCommand(t, "structure", bareRole)

	var report domain.StructureReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	assert.Equal(t, "myrole", report.RoleName)
	assert.Equal(t, 0, report.Summary.DirectoriesPresent)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, "error", report.Issues[0].Severity)
	assert.Len(t, report.Recommendations, 4)
}

func TestStructureCommand_JSONIsIndented(t *testing.T) {
	out := runCommand(t, "structure", bareRole)
	assert.Contains(t, out, "\n  \"role_name\": \"myrole\"")
}

func TestStructureCommand_Idempotent(t *testing.T) {
	first := runCommand(t, "structure", perfectRole)
	second := runCommand(t, "structure", perfectRole)
	assert.Equal(t, first, second)
}

func TestStructureCommand_Pretty(t *testing.T) {
	out := runCommand(t, "structure", perfectRole, "--pretty")
	assert.Contains(t, out, "rolelens")
	assert.Contains(t, out, "perfect")
	assert.Contains(t, out, "10 / 10 directories present")
}

func TestVersionCommand(t *testing.T) {
	out := runCommand(t, "version")
	assert.Contains(t, out, "rolelens")
}
