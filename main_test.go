package main

import "testing"

func TestRunRejectsMalformedSize(t *testing.T) {
	if code := run([]string{"--width", "abc"}); code != 1 {
		t.Fatalf("exit=%d want 1", code)
	}
}

func TestRunHelp(t *testing.T) {
	if code := run([]string{"--help"}); code != 0 {
		t.Fatalf("exit=%d want 0", code)
	}
}

func TestRunTooManyArgs(t *testing.T) {
	if code := run([]string{"a.com", "b.com"}); code != 1 {
		t.Fatalf("exit=%d want 1", code)
	}
}
