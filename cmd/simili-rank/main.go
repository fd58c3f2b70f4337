// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-02-15

// Package main is the entry point for the simili-rank CLI.
package main

import (
	"fmt"
	"os"

	"github.com/similigh/simili-rank/cmd/simili-rank/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, commands.DescribeError(err))
		os.Exit(1)
	}
}
