package frontmatter

import (
	"errors"
	"strings"
	"testing"
)

type skillMeta struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

func TestParseHeader(t *testing.T) {
	input := `---
name: git-helper
description: Helps with git workflows
---
# Instructions

Body content here.
`

	var meta skillMeta
	if err := ParseHeader(strings.NewReader(input), &meta); err != nil {
		t.Fatalf("ParseHeader() error = %v", err)
	}

	if meta.Name != "git-helper" {
		t.Errorf("Name = %q, want %q", meta.Name, "git-helper")
	}
	if meta.Description != "Helps with git workflows" {
		t.Errorf("Description = %q, want %q", meta.Description, "Helps with git workflows")
	}
}

func TestParseHeader_NoFrontmatter(t *testing.T) {
	var meta skillMeta
	if err := ParseHeader(strings.NewReader("# Just a heading\n"), &meta); err != nil {
		t.Fatalf("ParseHeader() error = %v", err)
	}
	if meta.Name != "" {
		t.Error("matter should remain empty without frontmatter")
	}
}

func TestParseHeader_Unclosed(t *testing.T) {
	input := "---\nname: broken\nno closing delimiter\n"

	var meta skillMeta
	if err := ParseHeader(strings.NewReader(input), &meta); err == nil {
		t.Error("expected error for unclosed frontmatter")
	}
}

func TestParseHeader_InvalidYAML(t *testing.T) {
	input := "---\nname: [unclosed\n---\n"

	var meta skillMeta
	if err := ParseHeader(strings.NewReader(input), &meta); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestParseHeader_Empty(t *testing.T) {
	var meta skillMeta
	if err := ParseHeader(strings.NewReader(""), &meta); err != nil {
		t.Errorf("ParseHeader() on empty input error = %v", err)
	}
}

func TestMustParseHeader_Missing(t *testing.T) {
	var meta skillMeta
	err := MustParseHeader(strings.NewReader("no frontmatter\n"), &meta)
	if !errors.Is(err, ErrMissingFrontmatter) {
		t.Errorf("error = %v, want ErrMissingFrontmatter", err)
	}
}

func TestMustParseHeader_Present(t *testing.T) {
	input := "---\nname: ok\n---\n"

	var meta skillMeta
	if err := MustParseHeader(strings.NewReader(input), &meta); err != nil {
		t.Fatalf("MustParseHeader() error = %v", err)
	}
	if meta.Name != "ok" {
		t.Errorf("Name = %q, want %q", meta.Name, "ok")
	}
}
