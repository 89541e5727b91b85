// Package frontmatter provides utilities for parsing YAML frontmatter
// in markdown files such as SKILL.md.
package frontmatter

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/taskdeck/taskdeck/internal/errors"
)

// ErrMissingFrontmatter is returned by MustParseHeader when no frontmatter is found.
var ErrMissingFrontmatter = errors.New("missing frontmatter")

// ParseHeader parses only the frontmatter from the reader.
// It stops reading after the closing delimiter "---".
// The body is not consumed or returned.
// Returns nil if no frontmatter is found (silent success, matter remains empty).
func ParseHeader(r io.Reader, matter any) error {
	_, err := parseHeader(r, matter)
	return err
}

// MustParseHeader is like ParseHeader but returns ErrMissingFrontmatter when
// the document has no frontmatter block. Use for files where frontmatter is
// required (skills).
func MustParseHeader(r io.Reader, matter any) error {
	found, err := parseHeader(r, matter)
	if err != nil {
		return err
	}
	if !found {
		return ErrMissingFrontmatter
	}
	return nil
}

func parseHeader(r io.Reader, matter any) (found bool, err error) {
	scanner := bufio.NewScanner(r)

	// Check first line
	if !scanner.Scan() {
		return false, scanner.Err()
	}
	line := strings.TrimSpace(scanner.Text())
	if line != "---" {
		// No frontmatter start delimiter
		return false, nil
	}

	var buf bytes.Buffer
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "---" {
			// Found closing delimiter
			if err := yaml.Unmarshal(buf.Bytes(), matter); err != nil {
				return true, errors.Wrap(err, "parsing frontmatter YAML")
			}
			return true, nil
		}
		buf.WriteString(line)
		buf.WriteString("\n")
	}

	if err := scanner.Err(); err != nil {
		return false, err
	}
	// Start delimiter without a closing one.
	return false, errors.New("missing closing frontmatter delimiter")
}
