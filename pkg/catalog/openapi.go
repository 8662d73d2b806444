package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/codekaro/formwizard/pkg/form"
)

// FromOpenAPI builds a Resolver out of an OpenAPI operation's JSON request
// schema. String properties become text questions (email/tel formats map to
// their dedicated kinds), enums become single-choice questions, and arrays
// of enum items become multi-choice questions. Property order follows the
// schema's required list, then the remaining properties sorted by name.
//
// Catalogs built this way carry no visibility conditions; they suit flat
// intake forms whose backend contract is already described by an API spec.
func FromOpenAPI(ctx context.Context, raw []byte, operationID string) (Resolver, error) {
	if ctx == nil {
		return nil, errors.New("catalog: context is required")
	}
	if operationID == "" {
		return nil, errors.New("catalog: operation id is required")
	}
	if len(raw) == 0 {
		return nil, errors.New("catalog: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("catalog: load openapi document: %w", err)
	}

	operation := findOperation(spec, operationID)
	if operation == nil {
		return nil, fmt.Errorf("catalog: operation %q not found", operationID)
	}

	schema := requestSchema(operation)
	if schema == nil || len(schema.Properties) == 0 {
		return nil, fmt.Errorf("catalog: operation %q has no request properties", operationID)
	}

	questions := make([]form.Question, 0, len(schema.Properties))
	for _, name := range propertyOrder(schema) {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		questions = append(questions, questionFromSchema(name, ref.Value))
	}

	return New(questions...)
}

func findOperation(spec *openapi3.T, operationID string) *openapi3.Operation {
	if spec == nil || spec.Paths == nil {
		return nil
	}
	for _, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, operation := range item.Operations() {
			if operation != nil && operation.OperationID == operationID {
				return operation
			}
		}
	}
	return nil
}

func requestSchema(operation *openapi3.Operation) *openapi3.Schema {
	if operation.RequestBody == nil || operation.RequestBody.Value == nil {
		return nil
	}
	mt, ok := operation.RequestBody.Value.Content["application/json"]
	if !ok || mt.Schema == nil {
		return nil
	}
	return mt.Schema.Value
}

func propertyOrder(schema *openapi3.Schema) []string {
	ordered := make([]string, 0, len(schema.Properties))
	seen := make(map[string]struct{}, len(schema.Properties))
	for _, name := range schema.Required {
		if _, ok := schema.Properties[name]; !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		ordered = append(ordered, name)
	}

	rest := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		if _, ok := seen[name]; !ok {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(ordered, rest...)
}

func questionFromSchema(name string, schema *openapi3.Schema) form.Question {
	q := form.Question{
		ID:          name,
		Title:       schema.Title,
		Description: schema.Description,
		Kind:        form.KindText,
	}
	if q.Title == "" {
		q.Title = humanize(name)
	}

	switch {
	case len(schema.Enum) > 0:
		q.Kind = form.KindSingleChoice
		q.Options = optionsFromEnum(schema.Enum)
	case schema.Type != nil && schema.Type.Is(openapi3.TypeArray):
		q.Kind = form.KindMultiChoice
		if schema.Items != nil && schema.Items.Value != nil {
			q.Options = optionsFromEnum(schema.Items.Value.Enum)
		}
	default:
		switch strings.ToLower(schema.Format) {
		case "email":
			q.Kind = form.KindEmail
		case "tel", "phone":
			q.Kind = form.KindPhone
		}
	}
	return q
}

func optionsFromEnum(enum []any) []form.Option {
	options := make([]form.Option, 0, len(enum))
	for _, entry := range enum {
		value, ok := entry.(string)
		if !ok || value == "" {
			continue
		}
		options = append(options, form.Option{Value: value, Label: humanize(value)})
	}
	return options
}

func humanize(raw string) string {
	replaced := strings.NewReplacer("-", " ", "_", " ").Replace(raw)
	words := strings.Fields(replaced)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
