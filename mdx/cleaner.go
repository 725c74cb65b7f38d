// Package mdx normalizes raw MDX documents for plain-text display. It is a
// stateless string transform: frontmatter, module statements, and JSX
// component tags are stripped while the markdown prose is kept intact.
package mdx

import (
	"regexp"
	"strings"

	"github.com/fwojciec/polarisdocs"
)

// Ensure Cleaner implements polarisdocs.Cleaner at compile time.
var _ polarisdocs.Cleaner = (*Cleaner)(nil)

var (
	frontmatterRe = regexp.MustCompile(`(?s)\A---\n.*?\n---\n?`)
	moduleStmtRe  = regexp.MustCompile(`(?m)^(?:import|export)\s[^\n]*\n?`)
	// JSX component tags start with an uppercase letter; plain HTML tags in
	// the prose are left alone.
	jsxTagRe    = regexp.MustCompile(`</?[A-Z][\w.]*(?:\s[^<>]*?)?/?>`)
	blankRunsRe = regexp.MustCompile(`\n{3,}`)
)

// Cleaner strips MDX-specific syntax from markup.
type Cleaner struct{}

// NewCleaner creates a Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Clean returns the displayable markdown portion of an MDX document.
func (c *Cleaner) Clean(markup string) string {
	out := frontmatterRe.ReplaceAllString(markup, "")
	out = moduleStmtRe.ReplaceAllString(out, "")
	out = jsxTagRe.ReplaceAllString(out, "")
	out = blankRunsRe.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}
