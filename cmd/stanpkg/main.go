// Package main is the entry point for the stanpkg CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/stanpkg/stanpkg/internal/cmd"
	oerrors "github.com/stanpkg/stanpkg/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *cmd.ExitError
		if !errors.As(err, &exitErr) || !exitErr.Printed {
			printError(err)
		}
		os.Exit(cmd.ExitCodeFromError(err))
	}
}

// printError writes err to stderr. Detail errors carry their own prefix.
func printError(err error) {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		fmt.Fprint(os.Stderr, err)
		return
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
}
