package catalog

import (
	"fmt"
	"html"
	"io"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"

	"github.com/codekaro/formwizard/pkg/form"
)

// document is the YAML shape accepted by Load and Parse.
type document struct {
	Questions []form.Question `yaml:"questions"`
}

// Parse decodes a YAML catalog document into a Resolver. Titles, descriptions
// and option labels are stripped of any markup before use; catalog files are
// authored content and must not smuggle HTML into the rendering layer.
func Parse(raw []byte) (Resolver, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("catalog: parse document: %w", err)
	}
	if len(doc.Questions) == 0 {
		return nil, fmt.Errorf("catalog: document declares no questions")
	}

	questions := make([]form.Question, len(doc.Questions))
	for i, q := range doc.Questions {
		q.Title = sanitizeText(q.Title)
		q.Description = sanitizeText(q.Description)
		for j, opt := range q.Options {
			q.Options[j].Label = sanitizeText(opt.Label)
		}
		for j, variant := range q.Variants {
			for k, opt := range variant.Options {
				q.Variants[j].Options[k].Label = sanitizeText(opt.Label)
			}
		}
		questions[i] = q
	}

	return New(questions...)
}

// Load reads a YAML catalog document from r.
func Load(r io.Reader) (Resolver, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("catalog: read document: %w", err)
	}
	return Parse(raw)
}

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

func sanitizeText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	cleaned := textPolicy.Sanitize(trimmed)
	// StrictPolicy escapes entities while stripping tags; catalog text is
	// plain prose, so undo the escaping.
	return strings.TrimSpace(html.UnescapeString(cleaned))
}
