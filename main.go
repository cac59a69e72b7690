package main

import "os"

func main() {
	// Errors are rendered by fang inside run, so main only sets the exit
	// code.
	if err := run(os.Args[1:], os.Stdout); err != nil {
		os.Exit(1)
	}
}
