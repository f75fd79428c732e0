// ABOUTME: Generic YAML frontmatter parser with CRLF normalization
// ABOUTME: Splits Markdown into typed frontmatter and body; strict mode rejects unknown keys

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

// ErrUnterminatedFrontmatter is returned when the opening --- has no match.
var ErrUnterminatedFrontmatter = errors.New("unterminated frontmatter: missing closing ---")

// ParseFrontmatter extracts YAML frontmatter from Markdown content.
// It returns the parsed frontmatter as T, the remaining body, and any error.
// Content without an opening delimiter yields (zero T, content, nil).
func ParseFrontmatter[T any](content string) (T, string, error) {
	return parseFrontmatter[T](content, false)
}

// ParseFrontmatterStrict is ParseFrontmatter but fails on keys T does not declare.
func ParseFrontmatterStrict[T any](content string) (T, string, error) {
	return parseFrontmatter[T](content, true)
}

// StripFrontmatter returns the body of content without its frontmatter.
// Content with malformed frontmatter is returned unchanged.
func StripFrontmatter(content string) string {
	_, body, err := ParseFrontmatter[map[string]any](content)
	if err != nil {
		return content
	}
	return body
}

func parseFrontmatter[T any](content string, strict bool) (T, string, error) {
	var out T

	doc, body, found, err := splitFrontmatter(content)
	if err != nil || !found {
		return out, body, err
	}
	if strings.TrimSpace(doc) == "" {
		return out, body, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader([]byte(doc)))
	dec.KnownFields(strict)
	if err := dec.Decode(&out); err != nil && !errors.Is(err, io.EOF) {
		var zero T
		return zero, "", fmt.Errorf("parse frontmatter YAML: %w", err)
	}
	return out, body, nil
}

// splitFrontmatter separates the YAML document from the body.
func splitFrontmatter(content string) (doc, body string, found bool, err error) {
	text := strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(text, frontmatterDelimiter+"\n") {
		return "", content, false, nil
	}
	rest := text[len(frontmatterDelimiter)+1:]

	// Closing delimiter right after the opening one: empty document.
	if rest == frontmatterDelimiter || strings.HasPrefix(rest, frontmatterDelimiter+"\n") {
		return "", strings.TrimPrefix(rest[len(frontmatterDelimiter):], "\n"), true, nil
	}

	doc, after, ok := strings.Cut(rest, "\n"+frontmatterDelimiter)
	if !ok {
		return "", "", true, ErrUnterminatedFrontmatter
	}
	return doc, strings.TrimPrefix(after, "\n"), true, nil
}
