package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jacoelho/atom"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("atomlint", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.Bool("format", false, "print the feed re-serialized in canonical form")
	var usageErr error
	fs.Usage = func() {
		usageErr = errors.Join(
			usageErr,
			writef(stderr, "Usage: %s [--format] <feed.xml>\n\n", os.Args[0]),
			writeln(stderr, "Checks that an Atom feed document parses. Use - to read from stdin."),
			writeln(stderr),
			writeln(stderr, "Options:"),
		)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	remaining := fs.Args()
	if len(remaining) != 1 {
		if err := writeln(stderr, "error: exactly one feed file argument is required"); err != nil {
			return 1
		}
		fs.Usage()
		if usageErr != nil {
			return 1
		}
		return 2
	}
	path := remaining[0]

	feed, err := readFeed(path, stdin)
	if err != nil {
		if writeErr := writef(stderr, "error reading feed: %v\n", err); writeErr != nil {
			return 1
		}
		return 1
	}

	if *format {
		if err := feed.WriteTo(stdout); err != nil {
			_ = writef(stderr, "error writing feed: %v\n", err)
			return 1
		}
		if err := writeln(stdout); err != nil {
			return 1
		}
		return 0
	}

	if err := writef(stdout, "%s: %d entries\n", path, len(feed.Entries)); err != nil {
		return 1
	}
	return 0
}

func readFeed(path string, stdin io.Reader) (*atom.Feed, error) {
	if path == "-" {
		return atom.ReadFrom(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return atom.ReadFrom(f)
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
