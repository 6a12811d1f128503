// Package rules provides the built-in rules for stylefix.
//
// # Markdown
//
//   - MD009: no-trailing-spaces - Lines should not have trailing spaces
//   - MD013: line-length - Line length should not exceed the configured maximum
//   - MD022: blanks-around-headings - Headings should be surrounded by blank lines
//   - MD031: blanks-around-fences - Fenced code blocks should be surrounded by blank lines
//   - MD032: blanks-around-lists - Lists should be surrounded by blank lines
//   - MD034: no-bare-urls - Bare URL used
//   - MD040: fenced-code-language - Fenced code blocks should have a language specified
//   - MD047: single-trailing-newline - Files should end with a single newline character
//
// # YAML and Jinja
//
//   - Y001: fqcn-module - Ansible modules should use fully qualified collection names
//   - Y002: truthy - Boolean values should be true or false
//   - Y003: jinja-spacing - Jinja expressions should use consistent brace padding
//   - Y004: trailing-spaces - Lines should not have trailing spaces
//   - Y005: new-lines - Line endings should be LF (all document kinds)
//
// Every rule works on raw lines through lint.Scan; none of them parses
// Markdown or YAML. Rules register with lint.DefaultRegistry in init.
package rules
