package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/blackroad/facilities/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags restores every flag on c and its subcommands to its default.
// Cobra commands are package globals, so values stick between Execute calls.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// testEnv isolates configuration and returns a store path in a temp directory.
func testEnv(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	t.Setenv("FM_DB_PATH", "")
	t.Setenv("FM_LOG_LEVEL", "")
	t.Setenv("NO_COLOR", "")
	config.ResetGlobalConfigCache()
	t.Cleanup(config.ResetGlobalConfigCache)

	return filepath.Join(tmpDir, "facilities.db")
}

// executeCommand runs the root command with args against dbPath and returns stdout.
func executeCommand(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--db", dbPath}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

// mustExecute runs a command that is expected to succeed.
func mustExecute(t *testing.T, dbPath string, args ...string) string {
	t.Helper()

	out, err := executeCommand(t, dbPath, args...)
	if err != nil {
		t.Fatalf("%v: error = %v", args, err)
	}
	return out
}

// decodeJSON unmarshals command output into v.
func decodeJSON(t *testing.T, out string, v interface{}) {
	t.Helper()

	if err := json.Unmarshal([]byte(out), v); err != nil {
		t.Fatalf("invalid JSON output %q: %v", out, err)
	}
}
