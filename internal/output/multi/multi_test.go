package multi

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/crimson-sun/tagviz/internal/model"
)

// mockOutput records calls for test assertions.
type mockOutput struct {
	analyses []model.Analysis
	closed   bool
	err      error // if set, Write and Close return this error
}

func (m *mockOutput) Write(_ context.Context, a model.Analysis) error {
	m.analyses = append(m.analyses, a)
	return m.err
}

func (m *mockOutput) Close() error {
	m.closed = true
	return m.err
}

func TestFanOutDeliversToAll(t *testing.T) {
	a := &mockOutput{}
	b := &mockOutput{}
	c := &mockOutput{}
	m := New(a, b, c)

	if err := m.Write(context.Background(), model.Analysis{ID: "x1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, out := range []*mockOutput{a, b, c} {
		if len(out.analyses) != 1 {
			t.Fatalf("output %d: got %d analyses, want 1", i, len(out.analyses))
		}
		if out.analyses[0].ID != "x1" {
			t.Errorf("output %d: got id %q, want %q", i, out.analyses[0].ID, "x1")
		}
	}
}

func TestErrorDoesNotPreventDelivery(t *testing.T) {
	failing := &mockOutput{err: errors.New("disk full")}
	healthy := &mockOutput{}
	m := New(failing, healthy)

	err := m.Write(context.Background(), model.Analysis{ID: "x2"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "output 0: disk full") {
		t.Fatalf("expected error tagged with output index, got %v", err)
	}
	if len(healthy.analyses) != 1 {
		t.Fatalf("healthy output got %d analyses, want 1", len(healthy.analyses))
	}
}

func TestCloseCollectsErrors(t *testing.T) {
	a := &mockOutput{err: errors.New("err-a")}
	b := &mockOutput{err: errors.New("err-b")}
	m := New(a, b)

	err := m.Close()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !a.closed || !b.closed {
		t.Error("Close should be called on all outputs even when errors occur")
	}
	if !errors.Is(err, a.err) || !errors.Is(err, b.err) {
		t.Errorf("expected both errors joined, got %v", err)
	}
}

func TestNilOutputsSkipped(t *testing.T) {
	inner := &mockOutput{}
	m := New(nil, inner, nil)
	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", m.Len())
	}
	if err := m.Write(context.Background(), model.Analysis{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !inner.closed {
		t.Error("inner output not closed")
	}
}
