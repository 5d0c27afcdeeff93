package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	run := func(args ...string) string {
		t.Helper()
		stdout, stderr, err := runSchem(t, binaryPath, home, args...)
		require.NoError(t, err, "schem %v: stderr: %s", args, stderr)
		return stdout
	}

	run("world", "set-block", "minecraft:stone", "--at", "0,0,0")
	run("world", "set-block", "minecraft:glass", "--at", "2,2,2")
	run("actor", "set", "--at", "5,5,5")
	run("pos1", "--at", "0,0,0")
	run("pos2", "--at", "2,2,2")
	assert.Equal(t, "Saved to clipboard.\n", run("copy"))

	stdout := run("save", "fort", "-q")
	assert.Contains(t, stdout, filepath.Join(home, ".schematics", "schematics", "fort.schem"))

	_, _, err := runSchem(t, binaryPath, home, "save", "fort", "-q")
	require.Error(t, err)

	run("actor", "set", "--at", "10,0,10")
	assert.Equal(t, "Loaded schematic from fort\n", run("load", "fort", "-q"))
	assert.Equal(t, "Pasted clipboard.\n", run("paste"))

	assert.Equal(t, "minecraft:stone\n", run("world", "get-block", "--at=5,-5,5"))
	assert.Equal(t, "minecraft:glass\n", run("world", "get-block", "--at=7,-3,7"))
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "schem-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/schem")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build schem binary: %s", string(output))
	return binaryPath
}

func runSchem(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
