// Command seqzip loads named sequences from a TOML file and prints them zipped.
//
// Flags (or environment / .env.toml keys):
//
//	-file     input document, default sequences.toml
//	-index    print only the tuple at this index (negative counts from the end)
//	-compare  second document; report equality and the prefix changelog
//	-verbose  list every input sequence
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mazzegi/log"
	"github.com/mazzegi/seqzip/env"
	"github.com/mazzegi/seqzip/errorx"
	"github.com/mazzegi/seqzip/internal/loader"
	"github.com/mazzegi/seqzip/seq"
	"github.com/mazzegi/seqzip/seqzip"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	errorx.ExitWhen(run(os.Stdout, env.Load(os.Args[1:])))
}

func run(w io.Writer, e env.Env) error {
	file := e.StringOrDefault("file", "sequences.toml")
	ns, err := loader.LoadFile(file)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	z, err := loader.Zip(ns)
	if err != nil {
		return fmt.Errorf("zip %q: %w", file, err)
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(w, "%s\n", z)
	p.Fprintf(w, "length: %d\n", z.Len())
	if e.Bool("verbose") {
		for k, n := range ns {
			p.Fprintf(w, "  #%d %s (%d): %s\n", k, n.Name, n.Sequence.Len(), seq.Repr(n.Sequence))
		}
	}

	if _, ok := e["index"]; ok {
		i, ok := e.Int("index")
		if !ok {
			return fmt.Errorf("index %q is not an integer", e.StringOrDefault("index", ""))
		}
		ts, err := z.At(i)
		if err != nil {
			return fmt.Errorf("at %d: %w", i, err)
		}
		fmt.Fprintf(w, "%d: %s\n", i, seqzip.FormatTuple(ts))
	} else {
		for i, ts := range z.All() {
			fmt.Fprintf(w, "%d: %s\n", i, seqzip.FormatTuple(ts))
		}
	}

	if other, ok := e.String("compare"); ok {
		return compare(w, z, other)
	}
	return nil
}

func compare(w io.Writer, z *seqzip.SequenceZip[any], file string) error {
	ns, err := loader.LoadFile(file)
	if err != nil {
		return fmt.Errorf("load compare: %w", err)
	}
	oz, err := loader.Zip(ns)
	if err != nil {
		return fmt.Errorf("zip %q: %w", file, err)
	}
	eq := seqzip.Equal(z, oz)
	fmt.Fprintf(w, "equal: %t\n", eq)
	if eq {
		return nil
	}
	cl, err := seqzip.Diff(z, oz)
	if err != nil {
		log.Errorf("diff against %q: %v", file, err)
		return nil
	}
	for _, c := range cl {
		fmt.Fprintf(w, "  %s %s: %v -> %v\n", c.Type, strings.Join(c.Path, "."), c.From, c.To)
	}
	return nil
}
