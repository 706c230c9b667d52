package errorx

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

var osExit = os.Exit

var exit = osExit

// ExitWhen prints err with the caller's position to stderr and exits with status 1.
func ExitWhen(err error) {
	exitWhen(os.Stderr, err)
}

func exitWhen(w io.Writer, err error) {
	if err == nil {
		return
	}
	_, file, line, _ := runtime.Caller(2)
	file = filepath.Base(file)
	fmt.Fprintf(w, "ERROR (EXIT): %v - (%s:%d)\n", err, file, line)
	exit(1)
}
