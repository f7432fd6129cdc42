// Package htmltext extracts lecture-script lines from HTML exports. Authors
// sometimes deliver scripts as saved web pages or rich-text exports; this
// package flattens them into the same line-per-block form a DOCX yields.
package htmltext

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// skippedElements never contribute script text.
var skippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"head":     true,
	"nav":      true,
	"footer":   true,
	"iframe":   true,
}

// blockElements force a line break around their content.
var blockElements = map[string]bool{
	"p": true, "div": true, "section": true, "article": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"li": true, "blockquote": true, "br": true, "tr": true,
}

// headingElements become tagged section lines, mirroring DOCX heading styles.
var headingElements = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// Lines parses HTML and returns trimmed, NFC-normalized script lines.
func Lines(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}

	var b strings.Builder
	walk(doc, &b, false)

	var lines []string
	for _, raw := range strings.Split(b.String(), "\n") {
		if line := norm.NFC.String(strings.TrimSpace(raw)); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// Script is Lines with heading elements converted to section tags, ready for
// the pagination engine.
func Script(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}

	var b strings.Builder
	walk(doc, &b, true)

	var lines []string
	for _, raw := range strings.Split(b.String(), "\n") {
		if line := norm.NFC.String(strings.TrimSpace(raw)); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

func walk(n *html.Node, b *strings.Builder, tagHeadings bool) {
	switch n.Type {
	case html.ElementNode:
		if skippedElements[n.Data] {
			return
		}
		if blockElements[n.Data] {
			b.WriteString("\n")
		}
		if tagHeadings && headingElements[n.Data] {
			b.WriteString("[section_page] ")
		}
	case html.TextNode:
		b.WriteString(n.Data)
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, b, tagHeadings)
	}

	if n.Type == html.ElementNode && blockElements[n.Data] {
		b.WriteString("\n")
	}
}
