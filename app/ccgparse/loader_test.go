package ccgparse

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileLoaderParsesWordsAndSuperTags(t *testing.T) {
	content := "the\tD\tN/N:-0.1,NP/N:-2\ndog\tN\tN:0\n\nruns\tV\tS\\N:0\n"
	path := filepath.Join(t.TempDir(), "sents.tags")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	loader := &FileLoader{Path: path}
	sents, err := loader.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sents) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(sents))
	}

	first := sents[0]
	if len(first.Words) != 2 || first.Words[0] != "the" || first.Words[1] != "dog" {
		t.Fatalf("unexpected words: %v", first.Words)
	}
	if len(first.SuperTags[0]) != 2 {
		t.Fatalf("expected 2 supertag candidates for 'the', got %d", len(first.SuperTags[0]))
	}
	if got, want := first.SuperTags[0][0].Cat.String(), "N/N"; got != want {
		t.Fatalf("expected category %q, got %q", want, got)
	}
	if got, want := first.SuperTags[0][0].LogPScore, -0.1; got != want {
		t.Fatalf("expected logP %v, got %v", want, got)
	}

	second := sents[1]
	if len(second.Words) != 1 || second.Words[0] != "runs" {
		t.Fatalf("unexpected second sentence words: %v", second.Words)
	}
}

func TestFileLoaderRejectsMalformedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.tags")
	if err := os.WriteFile(path, []byte("onlyoneword\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	loader := &FileLoader{Path: path}
	if _, err := loader.Load(); err == nil {
		t.Fatalf("expected error for malformed line")
	}
}

func TestFileLoaderRejectsMalformedSuperTag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad2.tags")
	if err := os.WriteFile(path, []byte("w\tN\tbadformat\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	loader := &FileLoader{Path: path}
	if _, err := loader.Load(); err == nil {
		t.Fatalf("expected error for malformed supertag field")
	}
}
