package main

import (
	"context"
	"os"

	"GoBroz/internal/cli"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	return cli.Execute(context.Background(), cli.DefaultEnv(), args)
}
