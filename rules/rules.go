// Package rules provides the rule configuration for the pagination engine.
//
// A Rules value is loaded once (from YAML or from Default) and treated as
// immutable for the rest of the run. Loading and validation are the only
// places the engine can fail hard; everything downstream degrades
// deterministically.
package rules

import (
	"fmt"
	"regexp"
)

// Default label values. Title, section and teacher-only labels are
// configurable; the three visual templates keep their product names.
const (
	LabelFullScreen  = "全屏"
	LabelSmallAvatar = "小头像"
	LabelHalfScreen  = "半屏"

	defaultLabelTitle       = "标题页"
	defaultLabelSection     = "章节页"
	defaultLabelTeacherOnly = "老师出镜"
)

// Rules holds all thresholds, labels and pattern lists the engine consults.
type Rules struct {
	// Version identifies the rule set; carried onto every Result
	Version string

	// MaxCharsPerPage is the hard character budget per page (runes)
	MaxCharsPerPage int

	// Bullet-count bands for the three visual layouts
	FullScreenMin  int
	SmallAvatarMin int
	SmallAvatarMax int
	HalfScreenMin  int
	HalfScreenMax  int

	// Labels for the structural and presenter templates
	LabelTitlePage   string
	LabelSectionPage string
	LabelTeacherOnly string

	// Topic divergence splitting
	TopicSplitEnabled   bool
	SimilarityThreshold float64

	// Keyword heuristics
	TeacherOnlyKeywords []string
	KeepKeywords        []string
	DropKeywords        []string
	LeadinConnectors    []string

	// AnchorPatterns mark the start of a new primary knowledge concept
	AnchorPatterns []*regexp.Regexp

	// Score thresholds for untagged classification
	KnowledgeMinScore   int
	TeacherOnlyMaxScore int

	// AdvisoryMinConfidence is the floor below which advice is discarded
	AdvisoryMinConfidence float64

	// MaxLayoutRun is the longest permitted run of one visual layout
	MaxLayoutRun int
}

// Default returns the built-in rule set.
func Default() Rules {
	return Rules{
		Version:          "v2",
		MaxCharsPerPage:  150,
		FullScreenMin:    6,
		SmallAvatarMin:   4,
		SmallAvatarMax:   5,
		HalfScreenMin:    1,
		HalfScreenMax:    3,
		LabelTitlePage:   defaultLabelTitle,
		LabelSectionPage: defaultLabelSection,
		LabelTeacherOnly: defaultLabelTeacherOnly,

		TopicSplitEnabled:   true,
		SimilarityThreshold: 0.58,

		TeacherOnlyKeywords: []string{"大家好", "欢迎", "同学们", "希望大家", "课后", "下课"},
		KeepKeywords:        []string{"定义", "概念", "特点", "步骤", "要点", "核心", "代表", "意义", "影响", "方法"},
		DropKeywords:        []string{"嗯", "呃", "那个", "对吧", "是吧"},
		LeadinConnectors:    []string{"下面", "接着", "然后", "接下来"},

		AnchorPatterns: []*regexp.Regexp{
			regexp.MustCompile(`^\p{Han}{2,3}(?:作为|是|则是)`),
		},

		KnowledgeMinScore:   0,
		TeacherOnlyMaxScore: -1,

		AdvisoryMinConfidence: 0.6,
		MaxLayoutRun:          4,
	}
}

// Validate checks the rule set for structural problems. A non-nil error is
// fatal for the run.
func (r Rules) Validate() error {
	if r.MaxCharsPerPage <= 0 {
		return fmt.Errorf("max_chars_per_page must be positive, got %d", r.MaxCharsPerPage)
	}
	if r.SimilarityThreshold < 0 || r.SimilarityThreshold > 1 {
		return fmt.Errorf("similarity_threshold must be in [0,1], got %v", r.SimilarityThreshold)
	}
	if r.AdvisoryMinConfidence < 0 || r.AdvisoryMinConfidence > 1 {
		return fmt.Errorf("advisory min_confidence must be in [0,1], got %v", r.AdvisoryMinConfidence)
	}
	if r.FullScreenMin <= 0 {
		return fmt.Errorf("full_screen min_bullets must be positive, got %d", r.FullScreenMin)
	}
	if r.SmallAvatarMin > r.SmallAvatarMax {
		return fmt.Errorf("small_avatar band inverted: min %d > max %d", r.SmallAvatarMin, r.SmallAvatarMax)
	}
	if r.HalfScreenMin > r.HalfScreenMax {
		return fmt.Errorf("half_screen band inverted: min %d > max %d", r.HalfScreenMin, r.HalfScreenMax)
	}
	if r.TeacherOnlyMaxScore >= r.KnowledgeMinScore {
		return fmt.Errorf("score thresholds overlap: teacher_only_max %d >= knowledge_min %d",
			r.TeacherOnlyMaxScore, r.KnowledgeMinScore)
	}
	if r.MaxLayoutRun <= 0 {
		return fmt.Errorf("max_layout_run must be positive, got %d", r.MaxLayoutRun)
	}
	if r.LabelTitlePage == "" || r.LabelSectionPage == "" || r.LabelTeacherOnly == "" {
		return fmt.Errorf("structural page labels must not be empty")
	}
	return nil
}
