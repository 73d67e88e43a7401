package main

import (
	"fmt"
	"os"

	"github.com/AdamBudac/Quick-Batch-Rename-Tool/internal/cli"
)

var version = "dev"

func main() {
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
