package dataflow

import (
	"errors"
	"testing"
)

func TestFutureGetBlocksUntilResolved(t *testing.T) {
	f := NewFuture()
	go f.Resolve(7, nil)

	v, err := f.Get()
	if err != nil {
		t.Fatal(err)
	}
	if v != 7 {
		t.Errorf("expected 7, got %v", v)
	}
}

func TestFutureResolveOnlyTakesFirstValue(t *testing.T) {
	f := NewFuture()
	f.Resolve(1, nil)
	f.Resolve(2, nil)

	v, _ := f.Get()
	if v != 1 {
		t.Errorf("expected the first Resolve to win, got %v", v)
	}
}

func TestAllReturnsFirstError(t *testing.T) {
	ok := NewFuture()
	ok.Resolve("fine", nil)

	bad := NewFuture()
	wantErr := errors.New("boom")
	bad.Resolve(nil, wantErr)

	_, err := All([]*Future{ok, bad})
	if !errors.Is(err, wantErr) {
		t.Errorf("expected All to surface the failing future's error, got %v", err)
	}
}
