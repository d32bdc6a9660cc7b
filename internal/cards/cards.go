// Package cards mirrors notes into a folder of markdown files, one card per
// note, with the note's metadata in YAML frontmatter.
package cards

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"discard/internal/logs"
	"discard/internal/notes/data"
)

const (
	ext            = ".md"
	fileTimeLayout = "20060102150405"
	maxSlugLen     = 40
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
	cardName     = regexp.MustCompile(`^\d{14}_[a-z0-9-]+_[^_]+\.md$`)
)

type cardFrontmatter struct {
	ID      string `yaml:"id"`
	Title   string `yaml:"title"`
	Expires string `yaml:"expires"`
}

// Card is a note read back from a card file
type Card struct {
	Note     data.Note
	FilePath string
}

// FileName returns the card file name for a note: expiry timestamp, a slug of
// the title and the short id.
func FileName(n data.Note) string {
	return n.ExpiryDate.UTC().Format(fileTimeLayout) + "_" + slug(n.Title) + "_" + n.ShortID() + ext
}

func slug(title string) string {
	s := nonSlugChars.ReplaceAllString(strings.ToLower(title), "-")
	s = strings.Trim(s, "-")
	if len(s) > maxSlugLen {
		s = strings.TrimRight(s[:maxSlugLen], "-")
	}
	if s == "" {
		return "note"
	}
	return s
}

// Render produces the card file content for a note
func Render(n data.Note) ([]byte, error) {
	fm, err := yaml.Marshal(cardFrontmatter{
		ID:      n.ID,
		Title:   n.Title,
		Expires: n.ExpiryDate.Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, fmt.Errorf("render card %s: %w", n.ID, err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(fm)
	buf.WriteString("---\n")
	buf.WriteString(n.Content)
	return buf.Bytes(), nil
}

// Parse reads a card. It returns false when the content has no frontmatter
// or no parseable expiry. A card without a frontmatter title takes the first
// level-1 heading of its body.
func Parse(content []byte) (data.Note, bool) {
	lines := bytes.Split(content, []byte("\n"))

	if len(lines) == 0 || !bytes.Equal(bytes.TrimSpace(lines[0]), []byte("---")) {
		return data.Note{}, false
	}

	var fmEnd int
	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			fmEnd = i
			break
		}
	}

	if fmEnd == 0 {
		return data.Note{}, false
	}

	var fm cardFrontmatter
	if err := yaml.Unmarshal(bytes.Join(lines[1:fmEnd], []byte("\n")), &fm); err != nil {
		return data.Note{}, false
	}

	expires, err := time.Parse(time.RFC3339Nano, fm.Expires)
	if err != nil {
		return data.Note{}, false
	}

	body := string(bytes.Join(lines[fmEnd+1:], []byte("\n")))

	// Hand-written cards may carry their title as a heading instead
	title := fm.Title
	if strings.TrimSpace(title) == "" {
		title = headingTitle(body)
	}

	return data.Note{
		ID:         fm.ID,
		Title:      title,
		Content:    body,
		ExpiryDate: expires,
	}, true
}

// Read parses every card in dir, skipping files that are not cards
func Read(dir string) ([]Card, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", dir, err)
	}

	var cards []Card
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ext {
			continue
		}
		path := filepath.Join(dir, e.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			logs.Logger.Printf("Skipping card %s: %v", path, err)
			continue
		}
		n, ok := Parse(content)
		if !ok {
			continue
		}
		cards = append(cards, Card{Note: n, FilePath: path})
	}
	return cards, nil
}

// ExportResult counts what Export did
type ExportResult struct {
	Written int
	Removed int
}

// Export writes one card per note into dir and removes cards left over from
// notes that no longer exist. Markdown files without card frontmatter are
// left alone.
func Export(dir string, notes []data.Note) (ExportResult, error) {
	var res ExportResult

	if err := os.MkdirAll(dir, 0755); err != nil {
		return res, fmt.Errorf("error creating directory: %w", err)
	}

	wanted := make(map[string]bool, len(notes))
	for _, n := range notes {
		wanted[FileName(n)] = true
	}

	existing, err := Read(dir)
	if err != nil {
		return res, err
	}
	for _, c := range existing {
		name := filepath.Base(c.FilePath)
		if wanted[name] || c.Note.ID == "" || !cardName.MatchString(name) {
			continue
		}
		if err := os.Remove(c.FilePath); err != nil {
			return res, fmt.Errorf("error removing %s: %w", c.FilePath, err)
		}
		res.Removed++
	}

	for _, n := range notes {
		content, err := Render(n)
		if err != nil {
			return res, err
		}
		path := filepath.Join(dir, FileName(n))
		if err := os.WriteFile(path, content, 0644); err != nil {
			return res, fmt.Errorf("error writing %s: %w", path, err)
		}
		res.Written++
	}

	logs.Logger.Printf("Exported %d card(s) to %s, removed %d", res.Written, dir, res.Removed)
	return res, nil
}
