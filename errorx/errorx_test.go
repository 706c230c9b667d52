package errorx

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/mazzegi/seqzip/testx"
)

func TestGroup(t *testing.T) {
	tx := testx.NewTx(t)
	g := NewGroup(nil, nil)
	tx.AssertTrue(g.IsEmpty(), "empty group")
	tx.AssertNoErr(g.Err())

	e1, e2 := errors.New("first"), errors.New("second")
	g.Append(e1, nil, e2)
	tx.AssertEqual(2, g.Len())
	err := g.Err()
	tx.AssertErrIs(err, e1)
	tx.AssertErrIs(err, e2)
	tx.AssertEqual("first\nsecond", err.Error())
}

func TestExitWhen(t *testing.T) {
	tx := testx.NewTx(t)
	var code int
	exit = func(c int) { code = c }
	defer func() { exit = osExit }()

	var buf bytes.Buffer
	exitWhen(&buf, nil)
	tx.AssertEqual(0, buf.Len())

	exitWhen(&buf, errors.New("boom"))
	tx.AssertEqual(1, code)
	tx.AssertTrue(strings.HasPrefix(buf.String(), "ERROR (EXIT): boom - ("), buf.String())
}
