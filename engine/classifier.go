package engine

import (
	"context"
	"regexp"
	"strings"

	"github.com/tsawler/pagina/advisory"
	"github.com/tsawler/pagina/model"
	"github.com/tsawler/pagina/rules"
)

// BlockType represents the classified role of one input line
type BlockType int

const (
	// BlockTeacherOnly is spoken presenter text
	BlockTeacherOnly BlockType = iota
	// BlockKnowledge is a knowledge point to display
	BlockKnowledge
	// BlockExample is supporting example material
	BlockExample
	// BlockQuote is quoted material
	BlockQuote
	// BlockSection is a section divider
	BlockSection
	// BlockTitle is the course title
	BlockTitle
	// BlockDrop is content to discard
	BlockDrop
)

// String returns a human-readable representation of the block type
func (bt BlockType) String() string {
	switch bt {
	case BlockTeacherOnly:
		return "teacher_only"
	case BlockKnowledge:
		return "knowledge"
	case BlockExample:
		return "example"
	case BlockQuote:
		return "quote"
	case BlockSection:
		return "section"
	case BlockTitle:
		return "title"
	case BlockDrop:
		return "drop"
	default:
		return "unknown"
	}
}

// Classification is the classifier's verdict on one line.
type Classification struct {
	// Type is the block role
	Type BlockType

	// ForceNewTopic requests a page break before this block
	ForceNewTopic bool

	// Text is the line with any leading tag stripped
	Text string

	// Tagged reports whether an explicit bracket tag drove the verdict
	Tagged bool
}

// tagRE matches the fixed leading-tag vocabulary, e.g. "[key_point] ...".
var tagRE = regexp.MustCompile(`^\[(title_page|section_page|teacher_only|key_point|example|quote|droppable)\]\s*`)

// Classifier tags or scores a line into a block type. Untagged lines may be
// soft-overridden by the advisory collaborator.
type Classifier struct {
	rules rules.Rules
	safe  *advisory.Safe
}

// NewClassifier builds a classifier. safe may be nil, in which case no
// advisory is consulted.
func NewClassifier(r rules.Rules, safe *advisory.Safe) *Classifier {
	return &Classifier{rules: r, safe: safe}
}

// Classify produces the verdict for one trimmed line.
func (c *Classifier) Classify(ctx context.Context, line string) Classification {
	text := strings.TrimSpace(line)

	if m := tagRE.FindStringSubmatch(text); m != nil {
		clean := strings.TrimSpace(text[len(m[0]):])
		return taggedClassification(m[1], clean)
	}

	score := 0
	for _, kw := range c.rules.KeepKeywords {
		if kw != "" && strings.Contains(text, kw) {
			score++
		}
	}
	for _, kw := range c.rules.DropKeywords {
		if kw != "" && strings.Contains(text, kw) {
			score--
		}
	}

	force := false
	for _, re := range c.rules.AnchorPatterns {
		if re.MatchString(text) {
			force = true
			break
		}
	}

	var bt BlockType
	switch {
	case score <= c.rules.TeacherOnlyMaxScore:
		bt = BlockTeacherOnly
	case score >= c.rules.KnowledgeMinScore:
		bt = BlockKnowledge
	default:
		// Ambiguous band between the thresholds: keep it off the slides.
		bt = BlockTeacherOnly
	}

	// Advisory soft override, untagged lines only.
	if advice, ok := c.consult(ctx, text); ok {
		switch advice.Intent {
		case model.IntentShow:
			bt = BlockKnowledge
		case model.IntentSupport:
			bt = BlockExample
		case model.IntentSay:
			bt = BlockTeacherOnly
		}
		if advice.IsAnchor {
			force = true
		}
	}

	return Classification{Type: bt, ForceNewTopic: force, Text: text}
}

func (c *Classifier) consult(ctx context.Context, text string) (advisory.Advice, bool) {
	if c.safe == nil {
		return advisory.Advice{}, false
	}
	return c.safe.Consult(ctx, text)
}

func taggedClassification(tag, clean string) Classification {
	cl := Classification{Text: clean, Tagged: true}
	switch tag {
	case "title_page":
		cl.Type, cl.ForceNewTopic = BlockTitle, true
	case "section_page":
		cl.Type, cl.ForceNewTopic = BlockSection, true
	case "teacher_only":
		cl.Type = BlockTeacherOnly
	case "key_point":
		cl.Type, cl.ForceNewTopic = BlockKnowledge, true
	case "example":
		cl.Type = BlockExample
	case "quote":
		cl.Type = BlockQuote
	case "droppable":
		cl.Type = BlockDrop
	}
	return cl
}
