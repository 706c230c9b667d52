package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mazzegi/seqzip/env"
	"github.com/mazzegi/seqzip/seq"
	"github.com/mazzegi/seqzip/testx"
)

func writeDoc(tx *testx.Tx, dir, name, doc string) string {
	path := filepath.Join(dir, name)
	tx.AssertNoErr(os.WriteFile(path, []byte(doc), 0644))
	return path
}

const doc = `
[[sequence]]
name = "numbers"
values = [1, 2, 3]

[[sequence]]
name = "letters"
text = "ab"
`

func TestRunAll(t *testing.T) {
	tx := testx.NewTx(t)
	path := writeDoc(tx, t.TempDir(), "a.toml", doc)

	var buf bytes.Buffer
	tx.AssertNoErr(run(&buf, env.Env{"file": path}))
	exp := strings.Join([]string{
		`SequenceZip([1, 2, 3], "ab")`,
		"length: 2",
		"0: (1, 'a')",
		"1: (2, 'b')",
		"",
	}, "\n")
	tx.AssertEqual(exp, buf.String())
}

func TestRunIndex(t *testing.T) {
	tx := testx.NewTx(t)
	path := writeDoc(tx, t.TempDir(), "a.toml", doc)

	var buf bytes.Buffer
	tx.AssertNoErr(run(&buf, env.Env{"file": path, "index": "-1", "verbose": true}))
	out := buf.String()
	tx.AssertTrue(strings.Contains(out, "  #0 numbers (3): [1, 2, 3]\n"), out)
	tx.AssertTrue(strings.Contains(out, `  #1 letters (2): "ab"`), out)
	tx.AssertTrue(strings.HasSuffix(out, "-1: (2, 'b')\n"), out)

	err := run(&buf, env.Env{"file": path, "index": "2"})
	tx.AssertErrIs(err, seq.ErrOutOfRange)

	err = run(&buf, env.Env{"file": path, "index": "x"})
	tx.AssertErr(err)
}

func TestRunCompare(t *testing.T) {
	tx := testx.NewTx(t)
	dir := t.TempDir()
	path := writeDoc(tx, dir, "a.toml", doc)
	same := writeDoc(tx, dir, "same.toml", strings.Replace(doc, "[1, 2, 3]", "[1, 2, 3, 4]", 1))
	other := writeDoc(tx, dir, "other.toml", strings.Replace(doc, "[1, 2, 3]", "[1, 7, 3]", 1))

	var buf bytes.Buffer
	tx.AssertNoErr(run(&buf, env.Env{"file": path, "compare": same}))
	tx.AssertTrue(strings.HasSuffix(buf.String(), "equal: true\n"), buf.String())

	buf.Reset()
	tx.AssertNoErr(run(&buf, env.Env{"file": path, "compare": other}))
	out := buf.String()
	tx.AssertTrue(strings.Contains(out, "equal: false\n"), out)
	tx.AssertTrue(strings.Contains(out, "update "), out)
	tx.AssertTrue(strings.Contains(out, ": 2 -> 7\n"), out)
}

func TestRunMissingFile(t *testing.T) {
	tx := testx.NewTx(t)
	var buf bytes.Buffer
	err := run(&buf, env.Env{"file": filepath.Join(t.TempDir(), "missing.toml")})
	tx.AssertErr(err)
}

func TestRunCompareNestedValues(t *testing.T) {
	tx := testx.NewTx(t)
	dir := t.TempDir()
	nested := "[[sequence]]\nname = \"pairs\"\nvalues = [[1, 2], [3]]\n"
	path := writeDoc(tx, dir, "a.toml", doc)
	other := writeDoc(tx, dir, "nested.toml", nested)

	var buf bytes.Buffer
	err := run(&buf, env.Env{"file": path, "compare": other})
	tx.AssertErr(err)
	tx.AssertTrue(strings.Contains(err.Error(), "is not a scalar"), err.Error())
	tx.AssertFalse(strings.Contains(buf.String(), "equal:"), buf.String())

	err = run(&buf, env.Env{"file": other})
	tx.AssertErr(err)
}
