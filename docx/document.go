package docx

import "encoding/xml"

// documentXML represents the structure of word/document.xml
type documentXML struct {
	XMLName xml.Name `xml:"document"`
	Body    *bodyXML `xml:"body"`
}

// bodyXML represents the document body. Only paragraphs matter for script
// extraction; tables and drawings carry no spoken text.
type bodyXML struct {
	Paragraphs []paragraphXML `xml:"p"`
}

// paragraphXML represents a paragraph element (<w:p>).
type paragraphXML struct {
	XMLName    xml.Name          `xml:"p"`
	Properties paragraphPropsXML `xml:"pPr"`
	Runs       []runXML          `xml:"r"`
	Hyperlinks []hyperlinkXML    `xml:"hyperlink"`
}

// paragraphPropsXML represents paragraph properties (<w:pPr>).
type paragraphPropsXML struct {
	Style      styleRefXML   `xml:"pStyle"`
	OutlineLvl outlineLvlXML `xml:"outlineLvl"`
}

// styleRefXML represents a style reference.
type styleRefXML struct {
	Val string `xml:"val,attr"`
}

// outlineLvlXML represents outline level.
type outlineLvlXML struct {
	Val string `xml:"val,attr"`
}

// runXML represents a text run (<w:r>).
type runXML struct {
	XMLName xml.Name   `xml:"r"`
	Text    []textXML  `xml:"t"`
	Tabs    []tabXML   `xml:"tab"`
	Breaks  []breakXML `xml:"br"`
}

// textXML represents text content (<w:t>).
type textXML struct {
	XMLName xml.Name `xml:"t"`
	Space   string   `xml:"space,attr"`
	Value   string   `xml:",chardata"`
}

// tabXML represents a tab character.
type tabXML struct {
	XMLName xml.Name `xml:"tab"`
}

// breakXML represents a break (line or page).
type breakXML struct {
	XMLName xml.Name `xml:"br"`
	Type    string   `xml:"type,attr"`
}

// hyperlinkXML represents a hyperlink; only its runs matter here.
type hyperlinkXML struct {
	ID   string   `xml:"id,attr"`
	Runs []runXML `xml:"r"`
}

// stylesXML represents word/styles.xml, used for heading detection.
type stylesXML struct {
	XMLName xml.Name   `xml:"styles"`
	Styles  []styleXML `xml:"style"`
}

// styleXML represents a single style definition.
type styleXML struct {
	StyleID string      `xml:"styleId,attr"`
	Name    styleRefXML `xml:"name"`
	PPr     stylePPrXML `xml:"pPr"`
}

// stylePPrXML represents the paragraph properties of a style definition.
type stylePPrXML struct {
	OutlineLvl outlineLvlXML `xml:"outlineLvl"`
}
