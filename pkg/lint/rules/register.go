package rules

import "github.com/yaklabco/stylefix/pkg/lint"

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *lint.Registry) {
	// Markdown structure
	registry.Register(NewCodeBlockLanguageRule())  // MD040
	registry.Register(NewBlanksAroundFencesRule()) // MD031
	registry.Register(NewHeadingBlankLinesRule())  // MD022
	registry.Register(NewBlanksAroundListsRule())  // MD032

	// Markdown whitespace and layout
	registry.Register(NewTrailingWhitespaceRule()) // MD009
	registry.Register(NewMaxLineLengthRule())      // MD013
	registry.Register(NewNoBareURLsRule())         // MD034
	registry.Register(NewFinalNewlineRule())       // MD047

	// YAML and Jinja
	registry.Register(NewFQCNRule())                   // Y001
	registry.Register(NewTruthyRule())                 // Y002
	registry.Register(NewJinjaSpacingRule())           // Y003
	registry.Register(NewYAMLTrailingWhitespaceRule()) // Y004
	registry.Register(NewLineEndingsRule())            // Y005
}

// RegisterAliases registers alternative names used by other linters.
func RegisterAliases(registry *lint.Registry) {
	registry.RegisterAlias("fqcn", "Y001")
	registry.RegisterAlias("fqcn-builtins", "Y001")
	registry.RegisterAlias("jinja2-spacing", "Y003")
	registry.RegisterAlias("line-endings", "Y005")
}

// init registers all built-in rules with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic rule registration
func init() {
	RegisterAll(lint.DefaultRegistry)
	RegisterAliases(lint.DefaultRegistry)
}
