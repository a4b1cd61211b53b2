package file

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/crimson-sun/tagviz/internal/model"
	"github.com/crimson-sun/tagviz/internal/output"
)

func testAnalysis(id string, normalized bool) model.Analysis {
	png := []byte{0x89, 'P', 'N', 'G'}
	pass := model.Pass{
		Tokens: []string{"fox"},
		Tagged: []model.TaggedToken{{Token: "fox", Tag: "NN"}},
		Chart:  model.Artifact{Kind: "chart", Format: "png", Data: png},
		Cloud:  model.Artifact{Kind: "wordcloud", Format: "png", Data: png},
	}
	a := model.Analysis{
		ID:        id,
		Text:      "fox",
		CreatedAt: time.Date(2026, 2, 28, 12, 0, 0, 0, time.UTC),
		Original:  pass,
	}
	if normalized {
		p := pass
		a.Processed = &p
	}
	return a
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines
}

func TestWriteProducesValidNDJSON(t *testing.T) {
	dir := t.TempDir()
	out, err := New(dir, output.Standard)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	for i := 0; i < 5; i++ {
		if err := out.Write(context.Background(), testAnalysis(fmt.Sprintf("a%d", i), false)); err != nil {
			t.Fatalf("Write error: %v", err)
		}
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	lines := readLines(t, filepath.Join(dir, indexName))
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	for i, line := range lines {
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("line %d invalid JSON: %v", i, err)
		}
	}
}

func TestWriteImages(t *testing.T) {
	dir := t.TempDir()
	out, err := New(dir, output.Minimal)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	defer out.Close()

	if err := out.Write(context.Background(), testAnalysis("withproc", true)); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	for _, name := range []string{"original_chart.png", "original_cloud.png", "processed_chart.png", "processed_cloud.png"} {
		if _, err := os.Stat(filepath.Join(out.Dir("withproc"), name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}

	if err := out.Write(context.Background(), testAnalysis("noproc", false)); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out.Dir("noproc"), "processed_chart.png")); !os.IsNotExist(err) {
		t.Error("processed images should not exist without a processed pass")
	}
}

func TestCloseFlushesData(t *testing.T) {
	dir := t.TempDir()
	out, err := New(dir, output.Standard, WithBufSize(1<<20))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	out.Write(context.Background(), testAnalysis("a", false))

	// Buffer not flushed yet.
	data, _ := os.ReadFile(filepath.Join(dir, indexName))
	if len(data) != 0 {
		t.Fatalf("expected empty index before Close, got %d bytes", len(data))
	}

	out.Close()
	data, _ = os.ReadFile(filepath.Join(dir, indexName))
	if len(data) == 0 {
		t.Fatal("expected data after Close")
	}
}

func TestVerbosityStripsImageBytesFromJSON(t *testing.T) {
	dir := t.TempDir()
	out, err := New(dir, output.Standard)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	out.Write(context.Background(), testAnalysis("a", false))
	out.Close()

	lines := readLines(t, filepath.Join(dir, indexName))
	if strings.Contains(lines[0], `"data"`) {
		t.Fatalf("expected image bytes stripped at Standard, got: %s", lines[0])
	}
}

func TestConcurrentWritesSafe(t *testing.T) {
	dir := t.TempDir()
	out, err := New(dir, output.Minimal)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out.Write(context.Background(), testAnalysis(fmt.Sprintf("c%d", i), false))
		}(i)
	}
	wg.Wait()
	out.Close()

	lines := readLines(t, filepath.Join(dir, indexName))
	if len(lines) != 20 {
		t.Fatalf("expected 20 lines, got %d", len(lines))
	}
}
