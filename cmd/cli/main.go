package main

import (
	"btctreasury/cmd"
	"context"
	"fmt"
	"os"
)

func main() {
	root := cmd.NewRootCommand(cmd.InitializeDependencies)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
