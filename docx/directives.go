package docx

import (
	"regexp"
	"strconv"
)

// Directive is an explicit page directive embedded in a script, e.g.
// "P3老师出镜": an author-placed marker pinning a page number to a layout
// label. Directives are metadata, not script content; strip them before
// pagination.
type Directive struct {
	// PageNo is the 1-based page number the author pinned
	PageNo int

	// Label is the layout label as written, e.g. 半屏 or 老师出镜
	Label string
}

var directiveRE = regexp.MustCompile(`^[Pp]\s*(\d{1,3})\s*(全屏|小头像|半屏|标题页|章节页|老师出镜)$`)

// ParseDirective reports whether a line is a page directive.
func ParseDirective(line string) (Directive, bool) {
	m := directiveRE.FindStringSubmatch(line)
	if m == nil {
		return Directive{}, false
	}
	no, err := strconv.Atoi(m[1])
	if err != nil || no < 1 {
		return Directive{}, false
	}
	return Directive{PageNo: no, Label: m[2]}, true
}

// StripDirectives separates directive headers from script lines, preserving
// the order of both.
func StripDirectives(lines []string) ([]string, []Directive) {
	var script []string
	var directives []Directive
	for _, line := range lines {
		if d, ok := ParseDirective(line); ok {
			directives = append(directives, d)
			continue
		}
		script = append(script, line)
	}
	return script, directives
}
