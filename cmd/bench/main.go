package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"numscript/internal"
)

var source string = `
fn fib(n) if n < 2 then n else fib(n - 1) + fib(n - 2) end end
s = 0
for i = 1 to %d s = s + fib(15) end
`

type nullPrinter struct{}

func (s nullPrinter) Println(a ...interface{}) (n int, err error) {
	return 0, nil
}

func (s nullPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(w, format, a...)
}

func (s nullPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, a...)
}

func main() {
	iterations := flag.Int("n", 100, "loop iterations")
	flag.Parse()

	start := time.Now()
	internal.RunSourceWithPrinter("", fmt.Sprintf(source, *iterations), nullPrinter{})
	fmt.Println("Time elapsed is:", time.Since(start))
}
