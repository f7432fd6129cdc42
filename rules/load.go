package rules

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// ruleFile mirrors the YAML document shape of a rules file.
type ruleFile struct {
	Engine struct {
		Version         string `yaml:"version"`
		MaxCharsPerPage *int   `yaml:"max_chars_per_page"`
	} `yaml:"engine"`

	Layout struct {
		FullScreen struct {
			MinBullets *int `yaml:"min_bullets"`
		} `yaml:"full_screen"`
		SmallAvatar struct {
			MinBullets *int `yaml:"min_bullets"`
			MaxBullets *int `yaml:"max_bullets"`
		} `yaml:"small_avatar"`
		HalfScreen struct {
			MinBullets *int `yaml:"min_bullets"`
			MaxBullets *int `yaml:"max_bullets"`
		} `yaml:"half_screen"`
		TitlePage   string `yaml:"title_page"`
		SectionPage string `yaml:"section_page"`
		TeacherOnly string `yaml:"teacher_only"`
	} `yaml:"layout"`

	TopicSplit struct {
		Enabled             *bool    `yaml:"enabled"`
		SimilarityThreshold *float64 `yaml:"similarity_threshold"`
	} `yaml:"topic_split"`

	Heuristics struct {
		TeacherOnlyKeywords []string `yaml:"teacher_only_keywords"`
		KeepKeywords        []string `yaml:"keep_keywords"`
		DropKeywords        []string `yaml:"drop_keywords"`
		LeadinConnectors    []string `yaml:"leadin_connectors"`
		AnchorPatterns      []string `yaml:"anchor_patterns"`
	} `yaml:"heuristics"`

	Scores struct {
		KnowledgeMin   *int `yaml:"knowledge_min"`
		TeacherOnlyMax *int `yaml:"teacher_only_max"`
	} `yaml:"scores"`

	Advisory struct {
		MinConfidence *float64 `yaml:"min_confidence"`
	} `yaml:"advisory"`

	Limits struct {
		MaxLayoutRun *int `yaml:"max_layout_run"`
	} `yaml:"limits"`
}

// Load reads and validates a rules file. Fields absent from the file keep
// their Default values.
func Load(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("reading rules file: %w", err)
	}
	return Parse(data)
}

// Parse builds a validated Rules value from YAML bytes.
func Parse(data []byte) (Rules, error) {
	var rf ruleFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return Rules{}, fmt.Errorf("parsing rules: %w", err)
	}

	r := Default()

	if rf.Engine.Version != "" {
		r.Version = rf.Engine.Version
	}
	setInt(&r.MaxCharsPerPage, rf.Engine.MaxCharsPerPage)

	setInt(&r.FullScreenMin, rf.Layout.FullScreen.MinBullets)
	setInt(&r.SmallAvatarMin, rf.Layout.SmallAvatar.MinBullets)
	setInt(&r.SmallAvatarMax, rf.Layout.SmallAvatar.MaxBullets)
	setInt(&r.HalfScreenMin, rf.Layout.HalfScreen.MinBullets)
	setInt(&r.HalfScreenMax, rf.Layout.HalfScreen.MaxBullets)
	if rf.Layout.TitlePage != "" {
		r.LabelTitlePage = rf.Layout.TitlePage
	}
	if rf.Layout.SectionPage != "" {
		r.LabelSectionPage = rf.Layout.SectionPage
	}
	if rf.Layout.TeacherOnly != "" {
		r.LabelTeacherOnly = rf.Layout.TeacherOnly
	}

	if rf.TopicSplit.Enabled != nil {
		r.TopicSplitEnabled = *rf.TopicSplit.Enabled
	}
	if rf.TopicSplit.SimilarityThreshold != nil {
		r.SimilarityThreshold = *rf.TopicSplit.SimilarityThreshold
	}

	if rf.Heuristics.TeacherOnlyKeywords != nil {
		r.TeacherOnlyKeywords = rf.Heuristics.TeacherOnlyKeywords
	}
	if rf.Heuristics.KeepKeywords != nil {
		r.KeepKeywords = rf.Heuristics.KeepKeywords
	}
	if rf.Heuristics.DropKeywords != nil {
		r.DropKeywords = rf.Heuristics.DropKeywords
	}
	if rf.Heuristics.LeadinConnectors != nil {
		r.LeadinConnectors = rf.Heuristics.LeadinConnectors
	}
	if rf.Heuristics.AnchorPatterns != nil {
		patterns := make([]*regexp.Regexp, 0, len(rf.Heuristics.AnchorPatterns))
		for _, expr := range rf.Heuristics.AnchorPatterns {
			re, err := regexp.Compile(expr)
			if err != nil {
				return Rules{}, fmt.Errorf("compiling anchor pattern %q: %w", expr, err)
			}
			patterns = append(patterns, re)
		}
		r.AnchorPatterns = patterns
	}

	setInt(&r.KnowledgeMinScore, rf.Scores.KnowledgeMin)
	setInt(&r.TeacherOnlyMaxScore, rf.Scores.TeacherOnlyMax)

	if rf.Advisory.MinConfidence != nil {
		r.AdvisoryMinConfidence = *rf.Advisory.MinConfidence
	}
	setInt(&r.MaxLayoutRun, rf.Limits.MaxLayoutRun)

	if err := r.Validate(); err != nil {
		return Rules{}, err
	}
	return r, nil
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
