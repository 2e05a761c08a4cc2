package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestHashPasswordCommand(t *testing.T) {
	var out bytes.Buffer
	hashPasswordCmd.SetOut(&out)

	if err := hashPasswordCmd.RunE(hashPasswordCmd, []string{"abc"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := strings.TrimSpace(out.String())
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got != want {
		t.Fatalf("hash = %s, want %s", got, want)
	}
}

func TestHashPasswordCommandRejectsEmpty(t *testing.T) {
	if err := hashPasswordCmd.RunE(hashPasswordCmd, []string{""}); err == nil {
		t.Fatal("expected error for empty password")
	}
}
