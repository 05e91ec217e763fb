// Command runexamples executes a directory of example programs in name
// order and stops at the first failure.
//
// Usage:
//
//	runexamples [flags] [DIR]
//
// Every file whose name starts with -prefix and ends with -ext is listed as
// "{seq}/{total}: {name}". The first -skip files are only listed; the rest
// are run with -cmd followed by the file name, inside DIR.
//
// Examples:
//
//	runexamples examples
//	runexamples -skip 2 -out images examples
//	runexamples -ext .py -prefix S -cmd python3 book/quantlets
//	runexamples -config runner.yaml
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	if err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
