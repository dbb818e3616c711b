package main

import (
	"bytes"
	"io"
)

type ReaderFunc func(p []byte) (n int, err error)

func (f ReaderFunc) Read(p []byte) (n int, err error) {
	return f(p)
}

// _countLines counts the newlines read through r into *lines. A final line
// without a newline counts too, once r is drained.
func _countLines(r io.Reader, lines *int) io.Reader {
	last := byte('\n')
	return ReaderFunc(func(p []byte) (n int, err error) {
		n, err = r.Read(p)
		if n > 0 {
			*lines += bytes.Count(p[:n], []byte{'\n'})
			last = p[n-1]
		}
		if err == io.EOF && last != '\n' {
			*lines++
			last = '\n'
		}
		return
	})
}
