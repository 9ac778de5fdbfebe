package main

import "testing"

func TestCommandTree(t *testing.T) {
	for _, name := range []string{"pull", "push", "set", "watch"} {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil {
			t.Fatalf("command %q not registered: %v", name, err)
		}
		if cmd.Name() != name {
			t.Errorf("expected command %q, got %q", name, cmd.Name())
		}
	}
}

func TestPullFlagDefaults(t *testing.T) {
	if v, _ := pullCmd.Flags().GetBool("modular"); !v {
		t.Error("pull --modular should default to true")
	}
	if v, _ := pullCmd.Flags().GetBool("clean"); !v {
		t.Error("pull --clean should default to true")
	}
	if v, _ := pushCmd.Flags().GetBool("modular"); !v {
		t.Error("push --modular should default to true")
	}
}
