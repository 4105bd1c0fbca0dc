// SPDX-License-Identifier: MIT
// Package: cliquega/cmd/cliquega
//
// Command cliquega searches for a maximum clique with a genetic algorithm.
//
// Usage:
//
//	cliquega run <graph-file>            single run, generation log and charts
//	cliquega bench <graph-file> --runs N N independent runs, best run reported
//	cliquega generate <kind> [flags]     write a synthetic instance
//	cliquega history                     list archived benchmarks
//
// Settings resolve as: flags > --config file > instance parameter lines > defaults.

package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "cliquega:", err)
		os.Exit(1)
	}
}
