package testx

import (
	"errors"
	"reflect"
	"testing"
)

func NewTx(t *testing.T) *Tx {
	return &Tx{t: t}
}

type Tx struct {
	t *testing.T
}

func (tx *Tx) AssertEqual(want, have any) {
	tx.t.Helper()
	if reflect.DeepEqual(want, have) {
		return
	}
	tx.t.Fatalf("want %v, have %v", want, have)
}

func (tx *Tx) AssertTrue(v bool, msg string) {
	tx.t.Helper()
	if v {
		return
	}
	tx.t.Fatalf("expect true: %s", msg)
}

func (tx *Tx) AssertFalse(v bool, msg string) {
	tx.t.Helper()
	if !v {
		return
	}
	tx.t.Fatalf("expect false: %s", msg)
}

func (tx *Tx) AssertNoErr(err error) {
	tx.t.Helper()
	if err == nil {
		return
	}
	tx.t.Fatalf("error is not-nil but: %v", err)
}

func (tx *Tx) AssertErr(err error) {
	tx.t.Helper()
	if err != nil {
		return
	}
	tx.t.Fatalf("expect err; got none")
}

func (tx *Tx) AssertErrIs(err error, target error) {
	tx.t.Helper()
	if errors.Is(err, target) {
		return
	}
	tx.t.Fatalf("expect err %v; got %v", target, err)
}

func (tx *Tx) AssertPanics(fn func()) {
	tx.t.Helper()
	defer func() {
		if r := recover(); r == nil {
			tx.t.Fatalf("expect panic; got none")
		}
	}()
	fn()
}
