package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/primalhq/primal/internal/cli"
)

func main() {
	_ = godotenv.Load()

	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
