// Package docx extracts lecture-script lines from DOCX (Office Open XML)
// files. It reads word/document.xml directly from the ZIP container; no
// external conversion tools are involved.
package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Paragraph is one extracted script paragraph with resolved heading info.
type Paragraph struct {
	// Text is the NFC-normalized paragraph text
	Text string

	// IsHeading reports whether the paragraph uses a heading style
	IsHeading bool

	// Level is the heading level (1-9), or 0 for body text
	Level int
}

// Reader provides access to the script content of a DOCX document.
type Reader struct {
	zipReader  *zip.ReadCloser
	document   *documentXML
	styles     *stylesXML
	paragraphs []Paragraph
}

// Open opens a DOCX file for reading.
func Open(filename string) (*Reader, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	r := &Reader{zipReader: zr}
	if err := r.parse(&zr.Reader); err != nil {
		zr.Close()
		return nil, err
	}
	return r, nil
}

// NewReader parses DOCX content from an io.ReaderAt, typically an uploaded
// file held in memory.
func NewReader(ra io.ReaderAt, size int64) (*Reader, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	r := &Reader{}
	if err := r.parse(zr); err != nil {
		return nil, err
	}
	return r, nil
}

// Close releases resources associated with the Reader. It is a no-op for
// readers built over in-memory content.
func (r *Reader) Close() error {
	if r.zipReader != nil {
		err := r.zipReader.Close()
		r.zipReader = nil
		return err
	}
	return nil
}

func (r *Reader) parse(zr *zip.Reader) error {
	data, err := fileContent(zr, "word/document.xml")
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}

	r.document = &documentXML{}
	if err := xml.Unmarshal(data, r.document); err != nil {
		return fmt.Errorf("unmarshaling document.xml: %w", err)
	}

	// Styles are optional; heading detection degrades without them.
	if data, err := fileContent(zr, "word/styles.xml"); err == nil {
		r.styles = &stylesXML{}
		xml.Unmarshal(data, r.styles)
	}

	r.processParagraphs()
	return nil
}

func fileContent(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("file not found: %s", name)
}

// Paragraphs returns every non-empty paragraph in document order.
func (r *Reader) Paragraphs() []Paragraph {
	return r.paragraphs
}

// Lines returns the script as plain lines, one per paragraph.
func (r *Reader) Lines() []string {
	lines := make([]string, 0, len(r.paragraphs))
	for _, p := range r.paragraphs {
		lines = append(lines, p.Text)
	}
	return lines
}

// Script returns engine-ready lines: heading paragraphs carry a section tag
// so they always become divider pages regardless of their wording.
func (r *Reader) Script() []string {
	lines := make([]string, 0, len(r.paragraphs))
	for _, p := range r.paragraphs {
		if p.IsHeading {
			lines = append(lines, "[section_page] "+p.Text)
		} else {
			lines = append(lines, p.Text)
		}
	}
	return lines
}

// Text returns the whole script as one newline-joined string.
func (r *Reader) Text() string {
	return strings.Join(r.Lines(), "\n")
}

func (r *Reader) processParagraphs() {
	if r.document == nil || r.document.Body == nil {
		return
	}

	r.paragraphs = make([]Paragraph, 0, len(r.document.Body.Paragraphs))
	for _, p := range r.document.Body.Paragraphs {
		text := norm.NFC.String(strings.TrimSpace(paragraphText(p)))
		if text == "" {
			continue
		}
		isHeading, level := r.isHeadingStyle(p.Properties.Style.Val)
		r.paragraphs = append(r.paragraphs, Paragraph{
			Text:      text,
			IsHeading: isHeading,
			Level:     level,
		})
	}
}

// paragraphText joins the text of all runs, including runs inside hyperlinks.
func paragraphText(p paragraphXML) string {
	var b strings.Builder
	for _, run := range p.Runs {
		b.WriteString(runText(run))
	}
	for _, h := range p.Hyperlinks {
		for _, run := range h.Runs {
			b.WriteString(runText(run))
		}
	}
	return b.String()
}

func runText(run runXML) string {
	var b strings.Builder
	for _, t := range run.Text {
		b.WriteString(t.Value)
	}
	for range run.Tabs {
		b.WriteString("\t")
	}
	for range run.Breaks {
		b.WriteString("\n")
	}
	return b.String()
}

// isHeadingStyle determines if a style ID represents a heading.
func (r *Reader) isHeadingStyle(styleID string) (bool, int) {
	if styleID == "" {
		return false, 0
	}
	lower := strings.ToLower(styleID)

	// Standard Word heading style IDs.
	headingMap := map[string]int{
		"heading1": 1, "heading2": 2, "heading3": 3,
		"heading4": 4, "heading5": 5, "heading6": 6,
		"heading7": 7, "heading8": 8, "heading9": 9,
		"title": 1,
	}
	if level, ok := headingMap[lower]; ok {
		return true, level
	}

	// Fall back to the style definition's outline level.
	if r.styles != nil {
		for _, style := range r.styles.Styles {
			if !strings.EqualFold(style.StyleID, styleID) {
				continue
			}
			if style.PPr.OutlineLvl.Val != "" {
				if level := parseOutlineLevel(style.PPr.OutlineLvl.Val); level >= 0 {
					// OutlineLvl is 0-based in OOXML.
					return true, level + 1
				}
			}
			if strings.Contains(strings.ToLower(style.Name.Val), "heading") {
				return true, 1
			}
		}
	}
	return false, 0
}

// parseOutlineLevel parses an outline level string to an integer.
func parseOutlineLevel(s string) int {
	level := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return -1
		}
		level = level*10 + int(c-'0')
	}
	if level >= 0 && level <= 8 {
		return level
	}
	return -1
}
