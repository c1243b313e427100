package app

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"GoBroz/internal/config"
)

// Spawner starts a new broz process with the given arguments.
type Spawner func(args []string) error

// ExecSpawner re-executes the running binary. The child is detached from
// this process's lifetime so closing the opener keeps it open.
func ExecSpawner(args []string) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locate executable: %w", err)
	}
	cmd := exec.Command(exe, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start child window: %w", err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// ChildArgs builds the command line for a window opened from a window
// launched with cfg: same flags, explicit geometry, marked as a child.
func ChildArgs(cfg config.LaunchConfig, url string, x, y, width, height int) []string {
	args := []string{
		url,
		"--x=" + strconv.Itoa(x),
		"--y=" + strconv.Itoa(y),
		"--width=" + strconv.Itoa(width),
		"--height=" + strconv.Itoa(height),
		"--child",
	}
	if cfg.Top {
		args = append(args, "--top")
	}
	if cfg.Frame {
		args = append(args, "--frame")
	}
	if cfg.Debug {
		args = append(args, "--debug")
	}
	return args
}
