package root

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petquest/internal/engine"
)

func run(t *testing.T, home string, args ...string) string {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--home", home, "--log-level", "error"}, args...))
	require.NoError(t, cmd.Execute(), "petq %v: %s", args, errOut.String())
	return out.String()
}

func runErr(t *testing.T, home string, args ...string) error {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--home", home, "--log-level", "error"}, args...))
	return cmd.Execute()
}

func TestCLITaskFlow(t *testing.T) {
	home := t.TempDir()

	out := run(t, home, "add", "Water", "the", "plants", "--due", "3h")
	fields := strings.Fields(out)
	require.GreaterOrEqual(t, len(fields), 3, out)
	id := fields[1]
	assert.Contains(t, out, "Water the plants")

	out = run(t, home, "list")
	assert.Contains(t, out, id)
	assert.Contains(t, out, "Uncategorized")

	out = run(t, home, "do", id)
	assert.Contains(t, out, "Water the plants")
	assert.Contains(t, out, "Novice Doer")

	out = run(t, home, "do", id)
	assert.Contains(t, out, "Already done.")

	out = run(t, home, "list")
	assert.NotContains(t, out, id)
	out = run(t, home, "list", "--all")
	assert.Contains(t, out, id)

	out = run(t, home, "status")
	assert.Contains(t, out, "Completed: 1")

	run(t, home, "rm", id)
	out = run(t, home, "list", "--all")
	assert.NotContains(t, out, id)
}

func TestCLIShop(t *testing.T) {
	home := t.TempDir()

	out := run(t, home, "shop")
	assert.Contains(t, out, "acc_flower")

	run(t, home, "buy", "accessory", "acc_flower")
	run(t, home, "equip", "accessory", "acc_flower")
	out = run(t, home, "status")
	assert.Contains(t, out, "Wearing: Pretty Flower")

	err := runErr(t, home, "buy", "theme", "forest")
	var pe engine.PurchaseError
	require.ErrorAs(t, err, &pe)

	require.Error(t, runErr(t, home, "equip", "theme", "forest"))
	require.Error(t, runErr(t, home, "buy", "hat", "x"))
}

func TestCLIFriendsAndLeaderboard(t *testing.T) {
	home := t.TempDir()

	code := strings.TrimSpace(run(t, home, "friend", "code"))
	require.Len(t, code, engine.UserCodeLength)

	err := runErr(t, home, "friend", "add", code)
	require.ErrorIs(t, err, engine.ErrSelfCode)

	out := run(t, home, "friend", "add", "zz9plural")
	assert.Contains(t, out, "Added ")

	out = run(t, home, "leaderboard", "--monthly")
	assert.Contains(t, out, "monthly")
	assert.Contains(t, out, "You")
}

func TestCLICategories(t *testing.T) {
	home := t.TempDir()

	run(t, home, "category", "add", "Garden", "--color", "#22c55e")
	out := run(t, home, "add", "Weed", "--category", "garden")
	id := strings.Fields(out)[1]

	out = run(t, home, "list")
	assert.Contains(t, out, "[Garden]")

	run(t, home, "category", "rm", "Garden")
	out = run(t, home, "list")
	assert.Contains(t, out, id)
	assert.Contains(t, out, "[Uncategorized]")

	require.Error(t, runErr(t, home, "add", "x", "--category", "nope"))
}

func TestCLIExportAndDB(t *testing.T) {
	home := t.TempDir()

	out := run(t, home, "db", "path")
	assert.Equal(t, filepath.Join(home, "petquest.db"), strings.TrimSpace(out))

	out = run(t, home, "export")
	assert.Contains(t, out, "points: 150")

	out = run(t, home, "db", "keys")
	assert.Contains(t, out, engine.KeyPoints)
}

func TestResolveTask(t *testing.T) {
	tasks := []engine.Task{{ID: "abc111"}, {ID: "abc222"}, {ID: "def333"}}

	got, err := resolveTask(tasks, "def")
	require.NoError(t, err)
	assert.Equal(t, "def333", got.ID)

	_, err = resolveTask(tasks, "abc")
	assert.ErrorContains(t, err, "matches 2 tasks")

	_, err = resolveTask(tasks, "zzz")
	assert.Error(t, err)
}
