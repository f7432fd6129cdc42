package engine

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"github.com/tsawler/pagina/model"
	"github.com/tsawler/pagina/rules"
)

// Default titles for pages the paginator opens on its own.
const (
	titleOpening   = "开场"
	titleKnowledge = "知识点"
	titleQuote     = "引用"

	// continuationSuffix marks a page carrying overflow from its predecessor.
	continuationSuffix = "（续）"
)

var (
	// sectionTitleRE matches numbered section headings such as "一、" or "3."
	sectionTitleRE = regexp.MustCompile(`^([一二三四五六七八九十]+、|\d+[.、])`)

	// quoteLineRE matches a line carrying a quotation-mark-enclosed span.
	quoteLineRE = regexp.MustCompile(`["“].+["”]`)

	// mainAnchorREs identify openers that introduce a page's primary concept.
	// At most one such opener may land on a page.
	mainAnchorREs = []*regexp.Regexp{
		regexp.MustCompile(`^\p{Han}{2,3}(?:作为|是|则是|则以|则)`),
		regexp.MustCompile(`^(?:所谓|什么是)`),
	}
)

// paginator folds classified lines into pages. It owns exactly one open page
// at a time; closed pages are finalized and appended in order.
type paginator struct {
	rules rules.Rules
	cls   *Classifier

	pages []*model.Page
	cur   *model.Page
}

func newPaginator(r rules.Rules, cls *Classifier) *paginator {
	return &paginator{rules: r, cls: cls}
}

// run consumes all lines and returns the closed page sequence.
func (p *paginator) run(ctx context.Context, lines []string) []*model.Page {
	p.pages = nil
	p.cur = newTeacherPage(titleOpening, "init")

	for _, line := range lines {
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		p.handle(p.cls.Classify(ctx, text))
	}

	// An open teacher or quote page is meaningful even when empty; anything
	// else must have content to survive.
	if p.cur.HasContent() || p.cur.Type == model.PageTypeTeacherOnly || p.cur.Type == model.PageTypeQuote {
		p.close()
	}
	return p.pages
}

func (p *paginator) handle(c Classification) {
	if c.Text == "" || c.Type == BlockDrop {
		return
	}

	switch {
	case c.Type == BlockTitle:
		p.emitStructural(c.Text, model.PageTypeTitle, "", "title")
		return
	case c.Type == BlockSection || (!c.Tagged && isSectionTitle(c.Text)):
		p.emitStructural(c.Text, model.PageTypeSection, sectionTopic(c.Text), "section")
		return
	}

	if c.ForceNewTopic && p.cur.HasContent() {
		p.close()
		p.cur = model.NewPage(titleKnowledge, model.PageTypeKnowledge, topicOf(c.Text))
		p.cur.AddSignal("anchor_new_topic")
		p.cur.AddSplitReason("anchor")
	}

	switch {
	case c.Type == BlockQuote || (!c.Tagged && isQuoteLine(c.Text)):
		p.handleQuote(c.Text)
	case c.Type == BlockTeacherOnly || (!c.Tagged && p.looksTeacherOnly(c.Text)):
		p.handleTeacherOnly(c.Text)
	default:
		intent := model.IntentShow
		if c.Type == BlockExample {
			intent = model.IntentSupport
		}
		p.handleKnowledge(c.Text, intent)
	}
}

// emitStructural closes the open page and appends a standalone structural
// page. The open page is discarded silently only when it is still the
// untouched default opener.
func (p *paginator) emitStructural(title string, pt model.PageType, topic, signal string) {
	if p.cur.HasContent() || p.cur.Type != model.PageTypeTeacherOnly {
		p.close()
	}
	sp := model.NewPage(title, pt, topic)
	sp.AddSignal(signal)
	p.pages = append(p.pages, sp.Finalize())

	p.cur = newTeacherPage(titleOpening, "after_"+signal)
}

func (p *paginator) handleQuote(text string) {
	if p.cur.Type != model.PageTypeQuote {
		if p.cur.HasContent() {
			topic := p.cur.Topic
			p.close()
			p.cur = model.NewPage(titleQuote, model.PageTypeQuote, topic)
		} else {
			// Repurpose the empty open page rather than emit a blank one.
			p.cur.Type = model.PageTypeQuote
			p.cur.Title = titleQuote
		}
	}
	p.cur.AddSignal("quote_block")
	p.cur = p.appendQuote(p.cur, text, model.IntentSupport)
}

func (p *paginator) handleTeacherOnly(text string) {
	if p.cur.Type != model.PageTypeTeacherOnly {
		if p.cur.HasContent() {
			p.close()
			p.cur = newTeacherPage(p.rules.LabelTeacherOnly, "teacher_only")
		} else {
			p.cur.Type = model.PageTypeTeacherOnly
			p.cur.Title = p.rules.LabelTeacherOnly
			p.cur.AddSignal("teacher_only")
		}
	}
	for _, b := range splitBullets(text) {
		p.cur = p.appendBullet(p.cur, b, model.IntentSay)
	}
}

func (p *paginator) handleKnowledge(text string, intent model.Intent) {
	for _, b := range splitBullets(text) {
		anchored := isMainAnchor(b)

		// One primary concept per page. A second anchor opener forces a
		// fresh page before the bullet lands.
		if anchored && p.cur.MainAnchor && p.cur.HasContent() {
			p.close()
			p.cur = model.NewPage(titleKnowledge, model.PageTypeKnowledge, topicOf(b))
			p.cur.AddSignal("anchor_mutex")
			p.cur.AddSplitReason("anchor_mutex")
		}

		if p.rules.TopicSplitEnabled && p.cur.Type == model.PageTypeKnowledge && len(p.cur.Bullets) > 0 {
			if topicSimilarity(b, p.cur.Bullets) < p.rules.SimilarityThreshold {
				topic := p.cur.Topic
				p.close()
				p.cur = model.NewPage(titleKnowledge, model.PageTypeKnowledge, topic)
				p.cur.AddSignal("topic_diverge")
				p.cur.AddSplitReason("topic_diverge")
			}
		}

		if p.cur.Type == model.PageTypeTeacherOnly {
			if p.cur.HasContent() {
				p.close()
				p.cur = model.NewPage(titleKnowledge, model.PageTypeKnowledge, topicOf(b))
				p.cur.AddSignal("enter_knowledge")
			} else {
				p.cur.Type = model.PageTypeKnowledge
				p.cur.Title = titleKnowledge
				if p.cur.Topic == "" {
					p.cur.Topic = topicOf(b)
				}
				p.cur.AddSignal("enter_knowledge")
			}
		}

		p.cur = p.appendBullet(p.cur, b, intent)
		if anchored {
			p.cur.MainAnchor = true
		}
	}
}

// appendBullet adds text to page, hard-wrapping across continuation pages
// when the character budget would be exceeded. It returns the page that
// received the final chunk.
func (p *paginator) appendBullet(page *model.Page, text string, intent model.Intent) *model.Page {
	for _, chunk := range splitLongText(text, p.rules.MaxCharsPerPage) {
		page.AddBullet(chunk, intent)
		// Pop only when the chunk is not alone on the page: a lone chunk on a
		// fresh continuation page cannot re-overflow, which bounds recursion.
		if page.ProjectedLen() > p.rules.MaxCharsPerPage && (len(page.Bullets) > 1 || len(page.Quotes) > 0) {
			popped, poppedIntent := page.PopBullet()
			p.pages = append(p.pages, page.Finalize())
			page = p.continuation(page)
			page.AddBullet(popped, poppedIntent)
		}
	}
	return page
}

// appendQuote is appendBullet for the quote lane.
func (p *paginator) appendQuote(page *model.Page, text string, intent model.Intent) *model.Page {
	for _, chunk := range splitLongText(text, p.rules.MaxCharsPerPage) {
		page.AddQuote(chunk, intent)
		if page.ProjectedLen() > p.rules.MaxCharsPerPage && (len(page.Quotes) > 1 || len(page.Bullets) > 0) {
			popped, poppedIntent := page.PopQuote()
			p.pages = append(p.pages, page.Finalize())
			page = p.continuation(page)
			page.AddQuote(popped, poppedIntent)
		}
	}
	return page
}

// continuation opens the overflow successor of page, carrying its type and
// topic. The successor becomes the open page.
func (p *paginator) continuation(page *model.Page) *model.Page {
	title := page.Title
	if !strings.HasSuffix(title, continuationSuffix) {
		title += continuationSuffix
	}
	next := model.NewPage(title, page.Type, page.Topic)
	next.AddSignal("char_limit")
	next.AddSplitReason("char_limit")
	p.cur = next
	return next
}

func (p *paginator) close() {
	p.pages = append(p.pages, p.cur.Finalize())
}

func newTeacherPage(title, signal string) *model.Page {
	pg := model.NewPage(title, model.PageTypeTeacherOnly, "")
	pg.AddSignal(signal)
	return pg
}

// isSectionTitle reports whether an untagged line reads as a section heading:
// a numbered prefix, or a short line whose head before a full-width colon is
// at most 20 runes.
func isSectionTitle(text string) bool {
	if sectionTitleRE.MatchString(text) {
		return true
	}
	if head, _, ok := strings.Cut(text, "："); ok {
		n := runeLen(head)
		return n >= 1 && n <= 20
	}
	return false
}

// sectionTopic extracts the topic a section heading introduces.
func sectionTopic(text string) string {
	if head, _, ok := strings.Cut(text, "："); ok {
		return strings.TrimSpace(sectionTitleRE.ReplaceAllString(head, ""))
	}
	return strings.TrimSpace(sectionTitleRE.ReplaceAllString(text, ""))
}

func isQuoteLine(text string) bool {
	return quoteLineRE.MatchString(text)
}

// looksTeacherOnly applies the spoken-text heuristics: a presenter keyword,
// or a short line built around a lead-in connector.
func (p *paginator) looksTeacherOnly(text string) bool {
	for _, kw := range p.rules.TeacherOnlyKeywords {
		if kw != "" && strings.Contains(text, kw) {
			return true
		}
	}
	if runeLen(text) <= 18 {
		for _, c := range p.rules.LeadinConnectors {
			if c != "" && strings.Contains(text, c) {
				return true
			}
		}
	}
	return false
}

func isMainAnchor(text string) bool {
	for _, re := range mainAnchorREs {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// topicOf extracts a short topic name: the leading run of Han characters,
// capped at four runes.
func topicOf(text string) string {
	var out []rune
	for _, r := range text {
		if !unicode.Is(unicode.Han, r) || len(out) == 4 {
			break
		}
		out = append(out, r)
	}
	return string(out)
}
