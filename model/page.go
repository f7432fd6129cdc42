package model

import (
	"strings"
	"unicode/utf8"
)

// Item is a single text fragment with its delivery intent
type Item struct {
	// Text is the fragment as placed on the page
	Text string `json:"text" yaml:"text"`

	// Intent is how the fragment is meant to be delivered
	Intent Intent `json:"intent" yaml:"intent"`
}

// Evidence is a page's audit trail of which heuristics fired during
// construction. Signals record observations; SplitReason records why the
// page was opened or re-laid-out.
type Evidence struct {
	Signals     []string `json:"signals" yaml:"signals"`
	SplitReason []string `json:"split_reason" yaml:"split_reason"`
}

// Page is one output slide-plan unit. While open it is mutated only through
// the Add* methods; Finalize computes the derived content fields when the
// page is closed.
type Page struct {
	// Title is the display title of the page
	Title string `json:"title" yaml:"title"`

	// Type is the content type of the page
	Type PageType `json:"page_type" yaml:"page_type"`

	// Topic is the knowledge topic the page belongs to, if any
	Topic string `json:"topic" yaml:"topic"`

	// Bullets are the displayed text fragments, in order
	Bullets []string `json:"bullets" yaml:"bullets"`

	// Quotes are quoted fragments, displayed after the bullets
	Quotes []string `json:"quotes" yaml:"quotes"`

	// Items are all fragments in append order with their intents
	Items []Item `json:"items" yaml:"items"`

	// Content is the derived page text: bullets then quotes, newline-joined
	Content string `json:"content" yaml:"content"`

	// CharCount is the rune length of Content
	CharCount int `json:"char_count" yaml:"char_count"`

	// Layout is the assigned visual template
	Layout Layout `json:"layout" yaml:"layout"`

	// PageTag combines the page number and the layout label, e.g. "P3老师出镜"
	PageTag string `json:"page_tag,omitempty" yaml:"page_tag,omitempty"`

	// PageNo is the 1-based position in the final sequence, assigned last
	PageNo int `json:"page_no" yaml:"page_no"`

	// MainAnchor marks that the page already carries its one primary
	// knowledge anchor
	MainAnchor bool `json:"main_anchor,omitempty" yaml:"main_anchor,omitempty"`

	// Evidence is the audit trail for this page
	Evidence Evidence `json:"evidence" yaml:"evidence"`
}

// NewPage creates an open page of the given type.
func NewPage(title string, pt PageType, topic string) *Page {
	return &Page{
		Title:   title,
		Type:    pt,
		Topic:   topic,
		Bullets: []string{},
		Quotes:  []string{},
		Items:   []Item{},
		Evidence: Evidence{
			Signals:     []string{},
			SplitReason: []string{},
		},
	}
}

// AddSignal appends an evidence signal.
func (p *Page) AddSignal(s string) {
	p.Evidence.Signals = append(p.Evidence.Signals, s)
}

// AddSplitReason appends a split reason to the evidence.
func (p *Page) AddSplitReason(s string) {
	p.Evidence.SplitReason = append(p.Evidence.SplitReason, s)
}

// AddBullet appends a bullet and its item record.
func (p *Page) AddBullet(text string, intent Intent) {
	p.Bullets = append(p.Bullets, text)
	p.Items = append(p.Items, Item{Text: text, Intent: intent})
}

// AddQuote appends a quote and its item record.
func (p *Page) AddQuote(text string, intent Intent) {
	p.Quotes = append(p.Quotes, text)
	p.Items = append(p.Items, Item{Text: text, Intent: intent})
}

// PopBullet removes and returns the most recent bullet along with its
// delivery intent. It returns ("", IntentShow) when the page has no bullets.
func (p *Page) PopBullet() (string, Intent) {
	if len(p.Bullets) == 0 {
		return "", IntentShow
	}
	last := p.Bullets[len(p.Bullets)-1]
	p.Bullets = p.Bullets[:len(p.Bullets)-1]
	return last, p.popItem(last)
}

// PopQuote removes and returns the most recent quote along with its delivery
// intent. It returns ("", IntentShow) when the page has no quotes.
func (p *Page) PopQuote() (string, Intent) {
	if len(p.Quotes) == 0 {
		return "", IntentShow
	}
	last := p.Quotes[len(p.Quotes)-1]
	p.Quotes = p.Quotes[:len(p.Quotes)-1]
	return last, p.popItem(last)
}

// popItem removes the most recent item matching text, searching from the end,
// and returns its intent.
func (p *Page) popItem(text string) Intent {
	for i := len(p.Items) - 1; i >= 0; i-- {
		if p.Items[i].Text == text {
			intent := p.Items[i].Intent
			p.Items = append(p.Items[:i], p.Items[i+1:]...)
			return intent
		}
	}
	return IntentShow
}

// PrependBullet inserts a bullet at the head of the page.
func (p *Page) PrependBullet(text string, intent Intent) {
	p.Bullets = append([]string{text}, p.Bullets...)
	p.Items = append([]Item{{Text: text, Intent: intent}}, p.Items...)
}

// ShiftBullet removes and returns the first bullet along with its delivery
// intent. It returns ("", IntentShow) when the page has no bullets.
func (p *Page) ShiftBullet() (string, Intent) {
	if len(p.Bullets) == 0 {
		return "", IntentShow
	}
	head := p.Bullets[0]
	p.Bullets = p.Bullets[1:]
	intent := IntentShow
	for i, it := range p.Items {
		if it.Text == head {
			intent = it.Intent
			p.Items = append(p.Items[:i], p.Items[i+1:]...)
			break
		}
	}
	return head, intent
}

// HasContent reports whether any bullets or quotes have been appended.
func (p *Page) HasContent() bool {
	return len(p.Bullets) > 0 || len(p.Quotes) > 0
}

// ProjectedLen returns the rune length the page content would have if
// finalized right now.
func (p *Page) ProjectedLen() int {
	return utf8.RuneCountInString(p.joined())
}

// Finalize computes Content and CharCount from the appended fragments and
// returns the page for chaining.
func (p *Page) Finalize() *Page {
	p.Content = p.joined()
	p.CharCount = utf8.RuneCountInString(p.Content)
	return p
}

// ClearContent forces the page to carry no slide content. Used for
// structural pages whose bullets must never render.
func (p *Page) ClearContent() {
	p.Bullets = []string{}
	p.Quotes = []string{}
	p.Items = []Item{}
	p.Content = ""
	p.CharCount = 0
}

func (p *Page) joined() string {
	lines := make([]string, 0, len(p.Bullets)+len(p.Quotes))
	lines = append(lines, p.Bullets...)
	lines = append(lines, p.Quotes...)
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
