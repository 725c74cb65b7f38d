package registry

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// frontmatter is the subset of the component index header block the
// registry cares about. Multi-line plain scalars fold to a single line per
// YAML, which matches how descriptions are wrapped in the source files.
type frontmatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// parseFrontmatter extracts the YAML header block between the leading ---
// fences of an MDX document. A document without a header block, or with one
// that fails to parse, yields zero values rather than an error: schema
// drift in the source degrades metadata, it never fails a build.
func parseFrontmatter(doc string) frontmatter {
	var fm frontmatter

	block, ok := frontmatterBlock(doc)
	if !ok {
		return fm
	}
	if err := yaml.Unmarshal([]byte(block), &fm); err != nil {
		return frontmatter{}
	}
	fm.Title = strings.TrimSpace(fm.Title)
	fm.Description = strings.TrimSpace(fm.Description)
	return fm
}

// frontmatterBlock returns the text between the opening and closing ---
// fences at the top of doc.
func frontmatterBlock(doc string) (string, bool) {
	doc = strings.TrimPrefix(doc, "\uFEFF")
	lines := strings.Split(doc, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return "", false
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return strings.Join(lines[1:i], "\n"), true
		}
	}
	return "", false
}
