package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/moracle/internal/sqlite"
	"github.com/mesh-intelligence/moracle/pkg/types"
)

// testEnv runs the root command in-process against temporary config and
// data directories.
type testEnv struct {
	t         *testing.T
	configDir string
	dataDir   string
}

// cmdResult captures the result of one command run.
type cmdResult struct {
	stdout string
	stderr string
	err    error
	code   int
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	tempDir := t.TempDir()
	return &testEnv{
		t:         t,
		configDir: filepath.Join(tempDir, "config"),
		dataDir:   filepath.Join(tempDir, "data"),
	}
}

// run executes moracle with args and stdin.
func (e *testEnv) run(stdin string, args ...string) cmdResult {
	e.t.Helper()
	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config-dir", e.configDir, "--data-dir", e.dataDir}, args...))

	err := root.ExecuteContext(context.Background())
	return cmdResult{
		stdout: stdout.String(),
		stderr: stderr.String(),
		err:    err,
		code:   exitCode(err),
	}
}

// mustRun executes moracle and fails the test on a non-zero exit code.
func (e *testEnv) mustRun(args ...string) cmdResult {
	e.t.Helper()
	res := e.run("", args...)
	require.NoError(e.t, res.err, "stderr: %s", res.stderr)
	return res
}

// seed stores the test card set in the data directory.
func (e *testEnv) seed() {
	e.t.Helper()
	b := sqlite.NewBackend()
	require.NoError(e.t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: e.dataDir}))
	defer b.Detach()
	require.NoError(e.t, b.ReplaceCards(testCards(e.t), types.Import{Source: "seed"}))
}

func testCards(t *testing.T) []types.Card {
	t.Helper()
	raw := []struct {
		name, cost, typeLine, text, power, toughness, loyalty string
	}{
		{"Counterspell", "{U}{U}", "Instant", "Counter target spell.", "", "", ""},
		{"Grizzly Bears", "{1}{G}", "Creature — Bear", "", "2", "2", ""},
		{"Wrath of God", "{2}{W}{W}", "Sorcery", "Destroy all creatures. They can't be regenerated.", "", "", ""},
	}
	cards := make([]types.Card, 0, len(raw))
	for _, r := range raw {
		c, err := types.NewCard(r.name, r.cost, r.typeLine, r.text, r.power, r.toughness, r.loyalty)
		require.NoError(t, err)
		cards = append(cards, c)
	}
	return cards
}
