package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/crimson-sun/tagviz/internal/config"
	"github.com/crimson-sun/tagviz/internal/output/file"
	"github.com/crimson-sun/tagviz/internal/output/multi"
	"github.com/crimson-sun/tagviz/internal/output/stdout"
)

func TestPickSource(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		path     string
		stdin    bool
		args     []string
		wantName string
		wantErr  bool
	}{
		{name: "text flag", text: "Hello.", wantName: "text"},
		{name: "file flag", path: "in.txt", wantName: "file"},
		{name: "stdin flag", stdin: true, wantName: "stdin"},
		{name: "positional", args: []string{"Hello there."}, wantName: "text"},
		{name: "nothing", wantErr: true},
		{name: "two flags", text: "a", path: "b", wantErr: true},
		{name: "unquoted words", args: []string{"Hello", "there"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, cfg, err := pickSource(tt.text, tt.path, tt.stdin, tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got source %q", name)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if name != tt.wantName {
				t.Errorf("source = %q, want %q", name, tt.wantName)
			}
			if tt.path != "" && cfg.Path != tt.path {
				t.Errorf("Path = %q, want %q", cfg.Path, tt.path)
			}
		})
	}
}

func TestNewOutput(t *testing.T) {
	dir := t.TempDir()

	o, err := newOutput(config.OutputConfig{Kind: "stdout", Format: "json", Verbosity: "standard"}, false)
	if err != nil {
		t.Fatalf("stdout: %v", err)
	}
	if _, ok := o.(*stdout.Output); !ok {
		t.Errorf("stdout kind gave %T", o)
	}

	o, err = newOutput(config.OutputConfig{Kind: "file", Dir: dir, Format: "json", Verbosity: "full"}, false)
	if err != nil {
		t.Fatalf("file: %v", err)
	}
	if _, ok := o.(*file.Output); !ok {
		t.Errorf("file kind gave %T", o)
	}
	o.Close()

	o, err = newOutput(config.OutputConfig{Kind: "file", Dir: dir, Format: "json", Verbosity: "full"}, true)
	if err != nil {
		t.Fatalf("tee: %v", err)
	}
	m, ok := o.(*multi.Multi)
	if !ok || m.Len() != 2 {
		t.Errorf("tee gave %T", o)
	}
	o.Close()

	if _, err := newOutput(config.OutputConfig{Kind: "stdout", Verbosity: "loud"}, false); err == nil {
		t.Error("expected error for unknown verbosity")
	}
}

func TestPrintTagset(t *testing.T) {
	var buf bytes.Buffer
	if err := printTagset(&buf); err != nil {
		t.Fatalf("printTagset: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "NN: noun, common, singular or mass") {
		t.Errorf("missing NN line:\n%s", out)
	}
	if n := strings.Count(out, "\n"); n != 45 {
		t.Errorf("got %d lines, want 45", n)
	}
}

func TestAnalyzeUsageListsSources(t *testing.T) {
	cfg := config.Config{Output: config.OutputConfig{Kind: "stdout", Format: "json", Verbosity: "standard"}}
	long := analyzeCmd(&cfg).Long
	if !strings.Contains(long, "Sources: file, stdin, text.") {
		t.Errorf("analyze help does not list the registered sources:\n%s", long)
	}
}
