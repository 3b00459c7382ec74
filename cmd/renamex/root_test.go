// SPDX-License-Identifier: MPL-2.0

package cmd

import "testing"

func TestRootCommandFlags(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"rep", "recurse", "test-run", "root", "include-hidden", "confirm"} {
		if rootCmd.Flags().Lookup(name) == nil {
			t.Errorf("expected flag --%s to be registered", name)
		}
	}
	for _, name := range []string{"verbose", "config"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected persistent flag --%s to be registered", name)
		}
	}
}

func TestRootCommandRequiresPattern(t *testing.T) {
	t.Parallel()

	if err := rootCmd.Args(rootCmd, []string{}); err == nil {
		t.Error("expected an error without a pattern argument")
	}
	if err := rootCmd.Args(rootCmd, []string{`\.txt$`}); err != nil {
		t.Errorf("one pattern argument should be accepted: %v", err)
	}
	if err := rootCmd.Args(rootCmd, []string{"a", "b"}); err == nil {
		t.Error("expected an error with two positional arguments")
	}
}

func TestConfigSubcommandsRegistered(t *testing.T) {
	t.Parallel()

	want := map[string]bool{"show": false, "path": false, "init": false}
	for _, sub := range configCmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("expected config subcommand %q", name)
		}
	}
}

func TestGetVersionString(t *testing.T) {
	t.Parallel()

	if got := getVersionString(); got != "dev (built from source)" {
		t.Errorf("unexpected dev version string %q", got)
	}
}
