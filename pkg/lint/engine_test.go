package lint_test

import (
	"context"
	"errors"
	"testing"

	"github.com/yaklabco/stylefix/pkg/config"
	"github.com/yaklabco/stylefix/pkg/document"
	"github.com/yaklabco/stylefix/pkg/fix"
	"github.com/yaklabco/stylefix/pkg/lint"
)

func diagAt(ruleID string, line, col int, edits ...fix.TextEdit) lint.Diagnostic {
	b := lint.NewDiagnosticAt(ruleID, "", line, col, col, "issue")
	for _, e := range edits {
		b.WithEdit(e)
	}
	return b.Build()
}

func TestEngineFiltersByKind(t *testing.T) {
	t.Parallel()

	md := newMockRule("MD001", "md-rule", lint.Markdown())
	md.diags = []lint.Diagnostic{diagAt("MD001", 1, 1)}
	yml := newMockRule("Y001", "yaml-rule", lint.YAML())
	yml.diags = []lint.Diagnostic{diagAt("Y001", 1, 1)}

	reg := lint.NewRegistry()
	reg.Register(md)
	reg.Register(yml)
	engine := lint.NewEngine(reg)

	result, err := engine.LintContent(context.Background(), "play.yml", []byte("a: 1\n"), config.NewConfig())
	if err != nil {
		t.Fatalf("LintContent() error = %v", err)
	}
	if result.IssueCount() != 1 {
		t.Fatalf("IssueCount() = %d, want 1", result.IssueCount())
	}
	d := result.Diagnostics[0]
	if d.RuleID != "Y001" {
		t.Errorf("RuleID = %q, want Y001", d.RuleID)
	}
	if d.RuleName != "yaml-rule" {
		t.Errorf("RuleName = %q, want yaml-rule", d.RuleName)
	}
	if d.FilePath != "play.yml" {
		t.Errorf("FilePath = %q, want play.yml", d.FilePath)
	}
	if d.Severity != config.SeverityWarning {
		t.Errorf("Severity = %q, want warning", d.Severity)
	}
}

func TestEngineSortsDiagnostics(t *testing.T) {
	t.Parallel()

	a := newMockRule("MD010", "a", lint.Markdown())
	a.diags = []lint.Diagnostic{diagAt("MD010", 3, 1), diagAt("MD010", 1, 5)}
	b := newMockRule("MD002", "b", lint.Markdown())
	b.diags = []lint.Diagnostic{diagAt("MD002", 1, 5), diagAt("MD002", 2, 1)}

	reg := lint.NewRegistry()
	reg.Register(a)
	reg.Register(b)

	result, err := lint.NewEngine(reg).LintContent(context.Background(), "a.md", []byte("x\ny\nz\n"), nil)
	if err != nil {
		t.Fatalf("LintContent() error = %v", err)
	}

	want := []struct {
		id   string
		line int
	}{{"MD002", 1}, {"MD010", 1}, {"MD002", 2}, {"MD010", 3}}
	if len(result.Diagnostics) != len(want) {
		t.Fatalf("got %d diagnostics, want %d", len(result.Diagnostics), len(want))
	}
	for i, w := range want {
		d := result.Diagnostics[i]
		if d.RuleID != w.id || d.StartLine != w.line {
			t.Errorf("diag[%d] = %s line %d, want %s line %d", i, d.RuleID, d.StartLine, w.id, w.line)
		}
	}
}

func TestEngineRuleConfig(t *testing.T) {
	t.Parallel()

	rule := newMockRule("MD009", "no-trailing-spaces", lint.Markdown())
	rule.diags = []lint.Diagnostic{diagAt("MD009", 1, 1)}
	reg := lint.NewRegistry()
	reg.Register(rule)
	engine := lint.NewEngine(reg)

	tests := []struct {
		name      string
		configure func(*config.Config)
		wantCount int
		wantSev   config.Severity
	}{
		{
			name:      "defaults",
			configure: func(*config.Config) {},
			wantCount: 1,
			wantSev:   config.SeverityWarning,
		},
		{
			name: "disabled by name",
			configure: func(c *config.Config) {
				c.Rules["no-trailing-spaces"] = config.RuleConfig{Enabled: config.BoolPtr(false)}
			},
		},
		{
			name: "severity override",
			configure: func(c *config.Config) {
				c.Rules["MD009"] = config.RuleConfig{Severity: config.StringPtr("error")}
			},
			wantCount: 1,
			wantSev:   config.SeverityError,
		},
		{
			name: "global default severity",
			configure: func(c *config.Config) {
				c.SeverityDefault = "info"
			},
			wantCount: 1,
			wantSev:   config.SeverityInfo,
		},
		{
			name: "cli disable wins over config enable",
			configure: func(c *config.Config) {
				c.Rules["MD009"] = config.RuleConfig{Enabled: config.BoolPtr(true)}
				c.DisableRules = []string{"md009"}
			},
		},
		{
			name: "cli enable",
			configure: func(c *config.Config) {
				c.Rules["MD009"] = config.RuleConfig{Enabled: config.BoolPtr(false)}
				c.EnableRules = []string{"all"}
			},
			wantCount: 1,
			wantSev:   config.SeverityWarning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.NewConfig()
			tt.configure(cfg)

			result, err := engine.LintContent(context.Background(), "a.md", []byte("x \n"), cfg)
			if err != nil {
				t.Fatalf("LintContent() error = %v", err)
			}
			if result.IssueCount() != tt.wantCount {
				t.Fatalf("IssueCount() = %d, want %d", result.IssueCount(), tt.wantCount)
			}
			if tt.wantCount > 0 && result.Diagnostics[0].Severity != tt.wantSev {
				t.Errorf("Severity = %q, want %q", result.Diagnostics[0].Severity, tt.wantSev)
			}
		})
	}
}

func TestEngineEditsOnlyInFixMode(t *testing.T) {
	t.Parallel()

	rule := newMockRule("MD047", "eof", lint.Markdown())
	rule.diags = []lint.Diagnostic{diagAt("MD047", 1, 2, fix.TextEdit{StartOffset: 1, EndOffset: 1, NewText: "\n"})}
	reg := lint.NewRegistry()
	reg.Register(rule)
	engine := lint.NewEngine(reg)

	cfg := config.NewConfig()
	result, err := engine.LintContent(context.Background(), "a.md", []byte("x"), cfg)
	if err != nil {
		t.Fatalf("LintContent() error = %v", err)
	}
	if result.HasFixes() {
		t.Error("check mode should not collect edits")
	}
	if result.FixableCount() != 1 {
		t.Errorf("FixableCount() = %d, want 1", result.FixableCount())
	}

	cfg.Mode = config.ModeFix
	result, err = engine.LintContent(context.Background(), "a.md", []byte("x"), cfg)
	if err != nil {
		t.Fatalf("LintContent() error = %v", err)
	}
	if len(result.Edits) != 1 {
		t.Fatalf("len(Edits) = %d, want 1", len(result.Edits))
	}
}

func TestEngineRecordsRuleErrors(t *testing.T) {
	t.Parallel()

	broken := newMockRule("MD001", "broken", lint.Markdown())
	broken.err = errors.New("boom")
	ok := newMockRule("MD002", "ok", lint.Markdown())
	ok.diags = []lint.Diagnostic{diagAt("MD002", 1, 1)}

	reg := lint.NewRegistry()
	reg.Register(broken)
	reg.Register(ok)

	result, err := lint.NewEngine(reg).Lint(context.Background(),
		document.New("a.md", document.KindMarkdown, []byte("x\n")), nil)
	if err != nil {
		t.Fatalf("Lint() error = %v", err)
	}
	if _, found := result.RuleErrors["MD001"]; !found {
		t.Error("expected MD001 in RuleErrors")
	}
	if result.IssueCount() != 1 {
		t.Errorf("IssueCount() = %d, want 1", result.IssueCount())
	}
}

func TestEngineCancelled(t *testing.T) {
	t.Parallel()

	reg := lint.NewRegistry()
	reg.Register(newMockRule("MD001", "a", lint.Markdown()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := lint.NewEngine(reg).LintContent(ctx, "a.md", []byte("x\n"), nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
