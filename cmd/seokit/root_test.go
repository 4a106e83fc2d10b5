package main

import (
	"errors"
	"testing"
)

// TestNewRootCmd tests the root command creation.
func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "seokit" {
			t.Errorf("expected use 'seokit', got %q", cmd.Use)
		}
	})

	t.Run("has descriptions", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" || cmd.Long == "" {
			t.Error("expected non-empty descriptions")
		}
	})

	t.Run("has version", func(t *testing.T) {
		t.Parallel()
		if cmd.Version == "" {
			t.Error("expected non-empty version")
		}
	})

	t.Run("has global flags", func(t *testing.T) {
		t.Parallel()
		for name, short := range map[string]string{"verbose": "v", "config": "c"} {
			flag := cmd.PersistentFlags().Lookup(name)
			if flag == nil {
				t.Fatalf("expected %s flag", name)
			}
			if flag.Shorthand != short {
				t.Errorf("expected %s shorthand %q, got %q", name, short, flag.Shorthand)
			}
		}
	})

	t.Run("has subcommands", func(t *testing.T) {
		t.Parallel()
		want := map[string]bool{
			"sitemap":  false,
			"validate": false,
			"schema":   false,
			"audit":    false,
			"history":  false,
			"init":     false,
			"version":  false,
		}
		for _, sub := range cmd.Commands() {
			if _, ok := want[sub.Name()]; ok {
				want[sub.Name()] = true
			}
		}
		for name, found := range want {
			if !found {
				t.Errorf("expected %s subcommand", name)
			}
		}
	})

	t.Run("silences usage and errors", func(t *testing.T) {
		t.Parallel()
		if !cmd.SilenceUsage {
			t.Error("expected SilenceUsage to be true")
		}
		if !cmd.SilenceErrors {
			t.Error("expected SilenceErrors to be true")
		}
	})
}

// TestRun tests the exit codes returned by run.
func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("success returns zero", func(t *testing.T) {
		t.Parallel()
		if code := run([]string{"version"}); code != 0 {
			t.Errorf("expected exit code 0, got %d", code)
		}
	})

	t.Run("unknown command returns one", func(t *testing.T) {
		t.Parallel()
		if code := run([]string{"no-such-command"}); code != 1 {
			t.Errorf("expected exit code 1, got %d", code)
		}
	})

	t.Run("exit error code is passed through", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, dir, "index.html", brokenPage)
		cfgPath := writeConfig(t, dir, "root: "+dir+"\n")

		if code := run([]string{"validate", "-c", cfgPath, "--json", "-o", dir + "/report.json"}); code != 1 {
			t.Errorf("expected exit code 1, got %d", code)
		}
	})
}

// TestExitError tests the ExitError message.
func TestExitError(t *testing.T) {
	t.Parallel()

	var err error = &ExitError{Code: 3}
	if err.Error() != "exit status 3" {
		t.Errorf("unexpected message %q", err.Error())
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 3 {
		t.Error("expected errors.As to find the exit code")
	}
}
