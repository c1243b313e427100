// Command broz-state prints or clears the window geometry broz remembers
// between launches.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"GoBroz/internal/config"
	"GoBroz/internal/util"
	"GoBroz/internal/winstate"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("broz-state", flag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.String("file", config.StatePath(), "Path to the window state JSON file")
	key := fs.String("key", config.AppName, "Record to reset")
	reset := fs.Bool("reset", false, "Forget the remembered geometry for --key")
	dryRun := fs.Bool("dry-run", false, "With --reset, only report what would be removed")
	backup := fs.Bool("backup", true, "Create a .bak backup before writing")
	if err := fs.Parse(args); err != nil {
		usage(fs)
		return 2
	}

	path := strings.TrimSpace(*file)
	if path == "" {
		fmt.Fprintln(stderr, "--file is required")
		usage(fs)
		return 2
	}

	records, err := winstate.Records(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintln(stdout, "No window state stored at", path)
			return 0
		}
		fmt.Fprintln(stderr, "failed to read file:", err)
		return 1
	}

	if !*reset {
		printRecords(stdout, records)
		return 0
	}

	g, ok := records[*key]
	if !ok {
		fmt.Fprintf(stdout, "No record for %q\n", *key)
		return 0
	}
	fmt.Fprintf(stdout, "Removing %s: %s\n", *key, describe(g))
	if *dryRun {
		fmt.Fprintln(stdout, "Dry-run: no changes written.")
		return 0
	}
	if *backup {
		if err := writeBackup(path); err != nil {
			fmt.Fprintln(stderr, "warning: could not create backup:", err)
		}
	}
	if err := winstate.Open(path, *key).Reset(); err != nil {
		fmt.Fprintln(stderr, "failed to write file:", err)
		return 1
	}
	fmt.Fprintln(stdout, "Window state reset:", path)
	return 0
}

func usage(fs *flag.FlagSet) {
	fmt.Fprintf(fs.Output(), "Usage: %s [--file window-state.json] [--reset] [--key Broz] [--dry-run] [--backup=true]\n", fs.Name())
}

func printRecords(w io.Writer, records map[string]winstate.Geometry) {
	keys := make([]string, 0, len(records))
	for k := range records {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%s\t%s\n", k, describe(records[k]))
	}
}

// describe renders a record as "1280 x 720 (16:9) at 10,20".
func describe(g winstate.Geometry) string {
	s := fmt.Sprintf("%d x %d (%s)", g.Width, g.Height, util.Ratio(g.Width, g.Height))
	if g.X != nil && g.Y != nil {
		s += fmt.Sprintf(" at %d,%d", *g.X, *g.Y)
	} else {
		s += " at default position"
	}
	return s
}

func writeBackup(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !fi.Mode().IsRegular() {
		return errors.New("not a regular file: " + path)
	}
	bak := path + ".bak"
	// keep earlier backups
	if _, err := os.Stat(bak); err == nil {
		ext := filepath.Ext(path)
		base := strings.TrimSuffix(filepath.Base(path), ext)
		bak = filepath.Join(filepath.Dir(path), fmt.Sprintf("%s.%d%s.bak", base, time.Now().Unix(), ext))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return os.WriteFile(bak, data, 0o644)
}
