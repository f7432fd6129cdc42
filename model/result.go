package model

import "math"

// Stats summarizes a finished plan.
type Stats struct {
	// TotalPages is the number of pages in the plan
	TotalPages int `json:"total_pages" yaml:"total_pages"`

	// MaxCharsPerPage is the configured character budget the plan was built
	// against
	MaxCharsPerPage int `json:"max_chars_per_page" yaml:"max_chars_per_page"`

	// AvgChars is the mean page character count, rounded to 2 decimals
	AvgChars float64 `json:"avg_chars" yaml:"avg_chars"`
}

// Result is a complete, normalized page plan.
type Result struct {
	// EngineVersion identifies the rule set the plan was built with
	EngineVersion string `json:"engine_version" yaml:"engine_version"`

	// Pages are the planned pages in final order
	Pages []*Page `json:"pages" yaml:"pages"`

	// Stats summarizes the plan
	Stats Stats `json:"stats" yaml:"stats"`
}

// ComputeStats fills Stats from the finished page list.
func (r *Result) ComputeStats(maxCharsPerPage int) {
	r.Stats = Stats{
		TotalPages:      len(r.Pages),
		MaxCharsPerPage: maxCharsPerPage,
	}
	if len(r.Pages) == 0 {
		return
	}
	total := 0
	for _, p := range r.Pages {
		total += p.CharCount
	}
	avg := float64(total) / float64(len(r.Pages))
	r.Stats.AvgChars = math.Round(avg*100) / 100
}
