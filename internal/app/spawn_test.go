package app

import (
	"strings"
	"testing"

	"GoBroz/internal/config"
)

func TestChildArgs(t *testing.T) {
	args := ChildArgs(config.LaunchConfig{Frame: true}, "https://a.test", 1, 2, 3, 4)
	want := "https://a.test --x=1 --y=2 --width=3 --height=4 --child --frame"
	if got := strings.Join(args, " "); got != want {
		t.Fatalf("args=%q want %q", got, want)
	}
	plain := ChildArgs(config.LaunchConfig{}, "u", -5, 0, 10, 10)
	if strings.Contains(strings.Join(plain, " "), "--top") || plain[1] != "--x=-5" {
		t.Fatalf("args=%v", plain)
	}
}

func TestChildArgsInheritDebug(t *testing.T) {
	args := ChildArgs(config.LaunchConfig{Top: true, Debug: true}, "https://a.test", 0, 0, 10, 10)
	want := "https://a.test --x=0 --y=0 --width=10 --height=10 --child --top --debug"
	if got := strings.Join(args, " "); got != want {
		t.Fatalf("args=%q want %q", got, want)
	}
}
