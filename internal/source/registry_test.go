package source

import (
	"context"
	"testing"
)

type fixed string

func (f fixed) Read(context.Context, Config) (string, error) { return string(f), nil }

func TestRegisterGet(t *testing.T) {
	Register("test-fixed", func() Source { return fixed("hello") })
	defer delete(registry, "test-fixed")

	ctor, err := Get("test-fixed")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	got, err := ctor().Read(context.Background(), Config{})
	if err != nil || got != "hello" {
		t.Fatalf("Read() = %q, %v", got, err)
	}

	found := false
	for _, n := range Names() {
		if n == "test-fixed" {
			found = true
		}
	}
	if !found {
		t.Fatalf("Names() = %v, missing test-fixed", Names())
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("carrier-pigeon"); err == nil {
		t.Fatal("expected error for unknown source")
	}
}
