// Package runner executes a directory of example programs one after
// another.
//
// Examples are the files of a directory whose names carry a configured
// extension and prefix. They are numbered in name order, a progress line
// "{seq}/{total}: {name}" is printed for each, and all examples past a
// skip count are handed to an [Executor]. The first failure stops the run
// and is returned unmodified.
//
// The default [ProcessExecutor] runs each example as a subprocess (by
// default "go run <file>") inside the example directory. The runner never
// changes the working directory of its own process.
package runner
