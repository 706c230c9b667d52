// Package loader decodes named sequences from TOML documents of the form
//
//	[[sequence]]
//	name = "numbers"
//	values = [1, 2, 3]
//
//	[[sequence]]
//	name = "letters"
//	text = "ab"
package loader

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/mazzegi/log"
	"github.com/mazzegi/seqzip/convert"
	"github.com/mazzegi/seqzip/errorx"
	"github.com/mazzegi/seqzip/seq"
	"github.com/mazzegi/seqzip/seqzip"
	"github.com/mazzegi/seqzip/set"
	"github.com/mazzegi/seqzip/slicesx"
)

type document struct {
	Sequences []entry `toml:"sequence"`
}

type entry struct {
	Name   string  `toml:"name"`
	Values []any   `toml:"values"`
	Text   *string `toml:"text"`
}

type Named struct {
	Name     string
	Sequence seq.Sequence[any]
}

func LoadFile(path string) ([]Named, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open-file %q: %w", path, err)
	}
	defer f.Close()
	ns, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}
	log.Infof("loaded %d sequences from %q", len(ns), path)
	return ns, nil
}

// Decode reads all [[sequence]] tables. Every problem is reported, not just the first one.
func Decode(r io.Reader) ([]Named, error) {
	var doc document
	_, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("decode-toml: %w", err)
	}

	errs := errorx.NewGroup()
	names := set.New[string]()
	var ns []Named
	for i, e := range doc.Sequences {
		switch {
		case e.Name == "":
			errs.Append(fmt.Errorf("sequence #%d: missing name", i))
			continue
		case names.Contains(e.Name):
			errs.Append(fmt.Errorf("sequence #%d: duplicate name %q", i, e.Name))
			continue
		case e.Text != nil && e.Values != nil:
			errs.Append(fmt.Errorf("sequence %q: both text and values given", e.Name))
			continue
		}
		names.Insert(e.Name)
		n := Named{Name: e.Name}
		if e.Text != nil {
			n.Sequence = seq.Erase[seq.Char](seq.RunesOf(*e.Text))
		} else {
			vs := slicesx.Map(e.Values, convert.Normalize)
			if err := checkScalars(e.Name, vs); err != nil {
				errs.Append(err)
				continue
			}
			n.Sequence = seq.Of(vs...)
		}
		log.Debugf("sequence %q: %d elements", n.Name, n.Sequence.Len())
		ns = append(ns, n)
	}
	if err := errs.Err(); err != nil {
		log.Errorf("rejected %d of %d sequences", errs.Len(), len(doc.Sequences))
		return nil, err
	}
	return ns, nil
}

// checkScalars accepts only values that compare with ==, so views over them can be tested for equality.
func checkScalars(name string, vs []any) error {
	for i, v := range vs {
		switch v.(type) {
		case int, float64, string, bool, time.Time:
		default:
			return fmt.Errorf("sequence %q: value #%d is not a scalar (%T)", name, i, v)
		}
	}
	return nil
}

// Zip zips the sequences in document order.
func Zip(ns []Named) (*seqzip.SequenceZip[any], error) {
	return seqzip.New(slicesx.Map(ns, func(n Named) seq.Sequence[any] {
		return n.Sequence
	})...)
}
