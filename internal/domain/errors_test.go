package domain

import (
	"errors"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "boardcfg.load",
		Kind: KindNotFound,
		Path: "board.yaml",
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindNotFound {
		t.Fatalf("expected kind %s, got %s", KindNotFound, got.Kind)
	}
}

func TestIsKind(t *testing.T) {
	err := &OpError{Op: "x", Kind: KindInvalidConfig}

	if !IsKind(err, KindInvalidConfig) {
		t.Error("expected IsKind to match")
	}
	if IsKind(err, KindNotFound) {
		t.Error("expected IsKind mismatch for other kind")
	}
	if IsKind(errors.New("plain"), KindInvalidConfig) {
		t.Error("expected IsKind false for non-OpError")
	}
}
