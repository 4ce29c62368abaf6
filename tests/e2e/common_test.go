package e2e

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// buildGitrsBinary builds the gitrs binary in the specified directory and
// returns its path. It handles the build command execution and error checking.
func buildGitrsBinary(t *testing.T, dir string) string {
	t.Helper()
	gitrsBin := filepath.Join(dir, "gitrs.exe")
	// Assumes tests are running from tests/e2e or similar depth.
	buildCmd := exec.Command("go", "build", "-o", gitrsBin, "../../cmd/gitrs")
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build gitrs: %v\n%s", err, string(out))
	}
	return gitrsBin
}

// runCmd executes the command in dir and returns its stdout. The test fails
// on a non-zero exit.
func runCmd(t *testing.T, dir string, input io.Reader, name string, args ...string) string {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	if input != nil {
		cmd.Stdin = input
	}
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr
	fmt.Printf("[%s] Executing: %s %v\n", dir, name, args)
	if err := cmd.Run(); err != nil {
		t.Fatalf("Command %s %v failed in %s: %v\n%s", name, args, dir, err, stdout.String())
	}
	return stdout.String()
}

// runCmdExpectError executes the command in dir and returns its combined
// output, failing the test if the command unexpectedly succeeds.
func runCmdExpectError(t *testing.T, dir string, name string, args ...string) string {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err == nil {
		t.Fatalf("Command %s %v in %s succeeded, expected failure\n%s", name, args, dir, string(out))
	}
	return string(out)
}
