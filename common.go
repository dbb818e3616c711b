package main

import (
	"fmt"
	"io"
	"os"
)

func errorf(format string, a ...interface{}) error {
	return fmt.Errorf(format, a...)
}

func eprintln(a ...interface{}) {
	fmt.Fprintln(os.Stderr, a...)
}

func fprintf(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintf(w, format, a...)
}

func fprintln(w io.Writer, a ...interface{}) {
	fmt.Fprintln(w, a...)
}
