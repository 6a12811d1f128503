package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/stylefix/pkg/config"
	"github.com/yaklabco/stylefix/pkg/document"
	"github.com/yaklabco/stylefix/pkg/fix"
	"github.com/yaklabco/stylefix/pkg/lint"
)

// tasksPath is a path that marks YAML as Ansible content.
const tasksPath = "roles/web/tasks/main.yml"

// maxTestPasses mirrors the pipeline's pass limit.
const maxTestPasses = config.DefaultMaxFixPasses

// ruleCase is a single table entry for rule tests.
type ruleCase struct {
	name      string
	path      string
	input     string
	options   map[string]any
	wantDiags int
	wantLines []int
	wantFix   string
	noFix     bool
}

func (tc ruleCase) filePath(def string) string {
	if tc.path != "" {
		return tc.path
	}
	return def
}

// applyRule runs rule once against content.
func applyRule(t *testing.T, rule lint.Rule, path, content string, options map[string]any) []lint.Diagnostic {
	t.Helper()

	doc := document.New(path, document.Detect(path), []byte(content))
	var ruleCfg *config.RuleConfig
	if options != nil {
		ruleCfg = &config.RuleConfig{Options: options}
	}
	ruleCtx := lint.NewRuleContext(context.Background(), doc, config.NewConfig(), ruleCfg)

	diags, err := rule.Apply(ruleCtx)
	require.NoError(t, err)
	return diags
}

// fixWith applies the rule's edits until it proposes none.
func fixWith(t *testing.T, rule lint.Rule, path, content string, options map[string]any) string {
	t.Helper()

	for range maxTestPasses {
		var edits []fix.TextEdit
		for _, d := range applyRule(t, rule, path, content, options) {
			edits = append(edits, d.FixEdits...)
		}
		if len(edits) == 0 {
			return content
		}
		accepted, _, err := fix.Prepare(edits, len(content))
		require.NoError(t, err)
		content = string(fix.ApplyEdits([]byte(content), accepted))
	}
	t.Fatalf("rule %s did not converge", rule.ID())
	return content
}

// runRuleCases executes a table of ruleCase against rule.
func runRuleCases(t *testing.T, rule lint.Rule, defPath string, tests []ruleCase) {
	t.Helper()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := tt.filePath(defPath)
			diags := applyRule(t, rule, path, tt.input, tt.options)
			require.Len(t, diags, tt.wantDiags)

			if tt.wantLines != nil {
				lines := make([]int, len(diags))
				for i, d := range diags {
					lines[i] = d.StartLine
				}
				assert.Equal(t, tt.wantLines, lines)
			}

			for _, d := range diags {
				assert.Equal(t, rule.ID(), d.RuleID)
				assert.Equal(t, !tt.noFix, d.HasFix(), "fixability of %q", d.Message)
			}

			if tt.wantDiags == 0 || tt.noFix {
				return
			}

			fixed := fixWith(t, rule, path, tt.input, tt.options)
			assert.Equal(t, tt.wantFix, fixed)

			for _, d := range applyRule(t, rule, path, fixed, tt.options) {
				assert.False(t, d.HasFix(), "fix should be idempotent, got %s", d.String())
			}
		})
	}
}
