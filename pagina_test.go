package pagina

import (
	"context"
	"testing"

	"github.com/tsawler/pagina/advisory"
	"github.com/tsawler/pagina/model"
	"github.com/tsawler/pagina/rules"
)

func TestScript_Plan(t *testing.T) {
	result, err := Script("[title_page] 建安文学专题\n一、背景\n建安文学是汉末的文学流派。").
		Plan(context.Background())
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}

	if result.Stats.TotalPages != 3 {
		t.Fatalf("TotalPages = %d, want 3", result.Stats.TotalPages)
	}
	if result.Pages[0].Type != model.PageTypeTitle {
		t.Errorf("first page type = %v, want title", result.Pages[0].Type)
	}
	if result.Pages[1].Type != model.PageTypeSection {
		t.Errorf("second page type = %v, want section", result.Pages[1].Type)
	}
}

func TestFromLines_WithRules(t *testing.T) {
	r := rules.Default()
	r.MaxCharsPerPage = 20
	r.TopicSplitEnabled = false

	result, err := FromLines([]string{"第一句内容很长很长。第二句内容也很长很长。"}).
		WithRules(r).
		Plan(context.Background())
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}
	if result.Stats.TotalPages != 2 {
		t.Errorf("TotalPages = %d, want an overflow split into 2", result.Stats.TotalPages)
	}
}

func TestPlanner_InvalidRules(t *testing.T) {
	r := rules.Default()
	r.MaxCharsPerPage = -1

	if _, err := Script("内容。").WithRules(r).Plan(context.Background()); err == nil {
		t.Errorf("expected an error for invalid rules")
	}
}

func TestPlanner_WithRulesFileError(t *testing.T) {
	if _, err := Script("内容。").WithRulesFile("no_such_rules.yaml").Plan(context.Background()); err == nil {
		t.Errorf("expected a deferred load error")
	}
}

func TestFromDocx_MissingFile(t *testing.T) {
	if _, err := FromDocx("no_such.docx").Plan(context.Background()); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}

func TestPlanner_WithAdvisor(t *testing.T) {
	advisor := advisory.Func(func(context.Context, string) (*advisory.Advice, error) {
		return &advisory.Advice{Intent: model.IntentSay, Confidence: 0.95}, nil
	})

	result, err := Script("曹操曹丕曹植并称三曹。").
		WithAdvisor(advisor).
		Plan(context.Background())
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}
	if result.Pages[0].Type != model.PageTypeTeacherOnly {
		t.Errorf("page type = %v, want teacher_only from the advisor", result.Pages[0].Type)
	}
}

func TestMust(t *testing.T) {
	if got := Must(42, nil); got != 42 {
		t.Errorf("Must() = %d", got)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("Must() did not panic on error")
		}
	}()
	Must(0, context.Canceled)
}
