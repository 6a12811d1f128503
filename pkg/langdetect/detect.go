// Package langdetect guesses a fence info string for an unlabeled code block.
// Cheap textual signatures common in infrastructure docs are tried first,
// then go-enry's shebang and classifier heuristics.
package langdetect

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Fallback is returned when nothing more specific can be inferred.
const Fallback = "text"

// signature maps a content pattern to a fence language.
type signature struct {
	lang  string
	match func(text string, trimmed string) bool
}

var (
	consolePrompt = regexp.MustCompile(`(?m)^\$ \S`)
	hclBlock      = regexp.MustCompile(`(?m)^(resource|variable|module|provider|output|data|terraform)\s+("[^"]*"\s*)*\{`)
	iniSection    = regexp.MustCompile(`(?m)^\[[A-Za-z0-9_.:-]+\]\s*$`)
	yamlKey       = regexp.MustCompile(`(?m)^\s*(- )?[A-Za-z_][\w.-]*:(\s|$)`)
	jinjaTag      = regexp.MustCompile(`\{%-?\s*(if|for|set|block|include|macro)\b`)
)

// signatures are checked in order; the first match wins.
var signatures = []signature{
	{lang: "console", match: func(text, _ string) bool { return consolePrompt.MatchString(text) }},
	{lang: "dockerfile", match: func(text, trimmed string) bool {
		return strings.HasPrefix(trimmed, "FROM ") ||
			(strings.Contains(text, "\nRUN ") && strings.Contains(text, "\nCOPY "))
	}},
	{lang: "hcl", match: func(text, _ string) bool { return hclBlock.MatchString(text) }},
	{lang: "json", match: func(_, trimmed string) bool {
		return (strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")) &&
			strings.Contains(trimmed, `"`) && !strings.Contains(trimmed, "{{")
	}},
	{lang: "jinja", match: func(text, _ string) bool { return jinjaTag.MatchString(text) }},
	{lang: "yaml", match: func(text, trimmed string) bool {
		return strings.HasPrefix(trimmed, "---") || len(yamlKey.FindAllStringIndex(text, 3)) >= 2
	}},
	{lang: "ini", match: func(text, _ string) bool { return iniSection.MatchString(text) && strings.Contains(text, "=") }},
	{lang: "python", match: func(text, _ string) bool {
		return (strings.Contains(text, "def ") && strings.Contains(text, "):")) ||
			strings.Contains(text, "__name__")
	}},
	{lang: "bash", match: func(text, trimmed string) bool {
		for _, cmd := range []string{"sudo ", "apt-get ", "systemctl ", "ansible-playbook ", "curl ", "export ", "cd "} {
			if strings.HasPrefix(trimmed, cmd) || strings.Contains(text, "\n"+cmd) {
				return true
			}
		}
		return false
	}},
}

// classifierCandidates restricts the enry classifier to languages that
// commonly appear in operations repositories.
var classifierCandidates = []string{
	"Shell", "YAML", "Python", "JSON", "HCL", "INI", "Dockerfile", "Go", "SQL", "Ruby",
}

// Detect returns a fence language for content, or Fallback.
func Detect(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return Fallback
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe && lang != "" {
		return normalize(lang)
	}

	text := string(content)
	trimmedText := string(trimmed)
	for _, sig := range signatures {
		if sig.match(text, trimmedText) {
			return sig.lang
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}

	return Fallback
}

// normalize converts go-enry language names to fence tags.
func normalize(lang string) string {
	switch lang {
	case "Shell":
		return "bash"
	case "HCL":
		return "hcl"
	default:
		return strings.ToLower(lang)
	}
}
