package errors

import (
	"errors"
	"testing"
)

func TestStorageKeepsCodeAndChain(t *testing.T) {
	cause := errors.New("connection refused")
	err := Storage(cause, "set seen pointer")

	if GetCode(err) != CodeStorage {
		t.Errorf("expected code %s, got %q", CodeStorage, GetCode(err))
	}
	if !IsStorage(err) {
		t.Error("expected IsStorage to match")
	}
	if !errors.Is(err, cause) {
		t.Error("expected the original cause to stay in the chain")
	}
	if GetMessage(err) != "set seen pointer" {
		t.Errorf("unexpected message %q", GetMessage(err))
	}
}

func TestMediaLoad(t *testing.T) {
	err := MediaLoad(errors.New("decode"), "s1")
	if !IsMediaLoad(err) || IsStorage(err) {
		t.Errorf("unexpected classification for %v", err)
	}
	if GetCode(err) != CodeMediaLoad {
		t.Errorf("expected code %s, got %q", CodeMediaLoad, GetCode(err))
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, "x") != nil || WrapWithCode(nil, "c", "x") != nil {
		t.Error("wrapping nil must return nil")
	}
}

func TestInvalidTargetIsNotFound(t *testing.T) {
	err := WrapWithCode(ErrInvalidTarget, CodeInvalidTarget, "user Z")
	if !IsNotFound(err) || !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("expected %v to match both sentinels", err)
	}
}
