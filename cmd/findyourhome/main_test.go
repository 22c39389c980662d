package main

import (
	"testing"

	"github.com/jimezsa/findyourhome/internal/cmd"
)

func TestApplyEnvDefaults(t *testing.T) {
	t.Setenv("FINDYOURHOME_JSON", "yes")
	t.Setenv("FINDYOURHOME_PLAIN", "0")
	t.Setenv("FINDYOURHOME_COLOR", "never")
	cli := cmd.NewCLI()
	applyEnvDefaults(cli)
	if !cli.JSON || cli.Plain || cli.Color != "never" {
		t.Fatalf("cli = %+v", cli)
	}
}

func TestBuildVersion(t *testing.T) {
	version, commit, date = "1.2.0", "abc123", ""
	t.Cleanup(func() { version, commit, date = "dev", "", "" })
	if got := buildVersion(); got != "1.2.0 (abc123)" {
		t.Fatalf("buildVersion() = %q", got)
	}
}

func TestRunVersionAndUnknownCommand(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("FINDYOURHOME_COLOR", "never")

	if err := run(cmd.NewCLI(), []string{"version"}); err != nil {
		t.Fatalf("run(version) error = %v", err)
	}
	if err := run(cmd.NewCLI(), []string{"no-such-command"}); err == nil {
		t.Fatal("run(no-such-command) error = nil, want parse error")
	}
}
