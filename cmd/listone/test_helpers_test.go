package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"listone/internal/testsupport"
)

var cliPlaylist = []string{
	"#EXTM3U",
	"#EXTINF:-1,Sky Calcio 1",
	"http://example.com/calcio1",
	"#EXTINF:-1,RAI 1 (V)",
	"http://example.com/rai1-v",
	"#EXTINF:-1,RAI 1",
	"http://example.com/rai1",
	"#EXTINF:-1,Nove",
	"http://example.com/nove",
	"#EXTINF:-1,Local Indie Channel",
	"http://example.com/indie",
}

type cliTestEnv struct {
	baseDir string
	input   string
	output  string
}

// setupCLITestEnv isolates HOME and the working directory so no real
// configuration file is discovered.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	workDir := filepath.Join(base, "work")
	for _, dir := range []string{homeDir, workDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("LISTONE_LOG_LEVEL", "")
	t.Setenv("NO_COLOR", "1")
	t.Chdir(workDir)

	env := &cliTestEnv{
		baseDir: base,
		input:   filepath.Join(workDir, "listone.m3u8"),
		output:  filepath.Join(workDir, "listone_ordinato.m3u8"),
	}
	testsupport.WritePlaylist(t, env.input, cliPlaylist...)
	return env
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected output to contain %q, got:\n%s", substr, output)
	}
}
