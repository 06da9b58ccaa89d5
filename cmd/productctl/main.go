package main

import (
	"fmt"
	"os"

	"github.com/yanizio/productform/internal/cli"
	"github.com/yanizio/productform/internal/logger"
)

func main() {
	logger.Console("warn")
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.ErrorLine(err))
		os.Exit(1)
	}
}
