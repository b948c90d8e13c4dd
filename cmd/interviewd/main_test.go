package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestAdminCreate_RequiresPassword(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"--env-file", "testdata-missing.env", "admin", "create", "--email", "admin@example.com"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "password") {
		t.Fatalf("expected missing password flag error, got %v", err)
	}
}

func TestCommandTree(t *testing.T) {
	want := map[string]bool{"serve": false, "admin create": false, "admin reset-password": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
		for _, sub := range c.Commands() {
			if _, ok := want[c.Name()+" "+sub.Name()]; ok {
				want[c.Name()+" "+sub.Name()] = true
			}
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("command %q not registered", name)
		}
	}
}
