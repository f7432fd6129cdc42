package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"testing"
)

// buildDocx assembles a minimal DOCX archive in memory.
func buildDocx(t *testing.T, documentXML string, extra map[string]string) *bytes.Reader {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	files := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`,
		"word/document.xml":   documentXML,
	}
	for name, content := range extra {
		files[name] = content
	}

	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("creating %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing archive: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func para(style, text string) string {
	if style == "" {
		return fmt.Sprintf(`<w:p><w:r><w:t>%s</w:t></w:r></w:p>`, text)
	}
	return fmt.Sprintf(`<w:p><w:pPr><w:pStyle w:val="%s"/></w:pPr><w:r><w:t>%s</w:t></w:r></w:p>`, style, text)
}

func wrapDocument(paragraphs ...string) string {
	body := ""
	for _, p := range paragraphs {
		body += p
	}
	return `<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body + `</w:body></w:document>`
}

func TestNewReader_ExtractsParagraphs(t *testing.T) {
	doc := wrapDocument(
		para("Heading1", "一、建安文学的背景"),
		para("", "大家好，欢迎来到本课。"),
		para("", "  "),
		para("", "建安文学是汉末的文学流派。"),
	)
	br := buildDocx(t, doc, nil)

	r, err := NewReader(br, int64(br.Len()))
	if err != nil {
		t.Fatalf("NewReader() error: %v", err)
	}
	defer r.Close()

	paras := r.Paragraphs()
	if len(paras) != 3 {
		t.Fatalf("got %d paragraphs, want 3 (blank dropped)", len(paras))
	}
	if !paras[0].IsHeading || paras[0].Level != 1 {
		t.Errorf("first paragraph = %+v, want a level-1 heading", paras[0])
	}
	if paras[1].IsHeading {
		t.Errorf("body paragraph flagged as heading")
	}
	if paras[1].Text != "大家好，欢迎来到本课。" {
		t.Errorf("paragraph text = %q", paras[1].Text)
	}
}

func TestReader_Script_TagsHeadings(t *testing.T) {
	doc := wrapDocument(
		para("Heading2", "二、三曹"),
		para("", "曹操是建安文学的领袖。"),
	)
	br := buildDocx(t, doc, nil)

	r, err := NewReader(br, int64(br.Len()))
	if err != nil {
		t.Fatalf("NewReader() error: %v", err)
	}

	script := r.Script()
	if script[0] != "[section_page] 二、三曹" {
		t.Errorf("heading line = %q, want a section tag", script[0])
	}
	if script[1] != "曹操是建安文学的领袖。" {
		t.Errorf("body line = %q", script[1])
	}
}

func TestReader_OutlineLevelFromStyles(t *testing.T) {
	styles := `<?xml version="1.0"?><w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:style w:styleId="MySection"><w:name w:val="Custom Section"/><w:pPr><w:outlineLvl w:val="1"/></w:pPr></w:style>` +
		`</w:styles>`
	doc := wrapDocument(para("MySection", "章节标题"))
	br := buildDocx(t, doc, map[string]string{"word/styles.xml": styles})

	r, err := NewReader(br, int64(br.Len()))
	if err != nil {
		t.Fatalf("NewReader() error: %v", err)
	}

	paras := r.Paragraphs()
	if len(paras) != 1 || !paras[0].IsHeading || paras[0].Level != 2 {
		t.Errorf("paragraphs = %+v, want a level-2 heading", paras)
	}
}

func TestNewReader_RejectsNonArchive(t *testing.T) {
	br := bytes.NewReader([]byte("not a zip file"))
	if _, err := NewReader(br, int64(br.Len())); err == nil {
		t.Errorf("expected an error for a non-ZIP payload")
	}
}

func TestNewReader_MissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, _ := zw.Create("word/other.xml")
	w.Write([]byte("<x/>"))
	zw.Close()

	br := bytes.NewReader(buf.Bytes())
	if _, err := NewReader(br, int64(br.Len())); err == nil {
		t.Errorf("expected an error when word/document.xml is absent")
	}
}

func TestReader_Text(t *testing.T) {
	doc := wrapDocument(
		para("", "第一段。"),
		para("", "第二段。"),
	)
	br := buildDocx(t, doc, nil)

	r, err := NewReader(br, int64(br.Len()))
	if err != nil {
		t.Fatalf("NewReader() error: %v", err)
	}
	if got := r.Text(); got != "第一段。\n第二段。" {
		t.Errorf("Text() = %q", got)
	}
}
