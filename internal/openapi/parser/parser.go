package parser

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	pkgopenapi "github.com/goliatone/go-heartform/pkg/openapi"
)

const jsonMediaType = "application/json"

// Parser implements pkgopenapi.Parser using kin-openapi.
type Parser struct {
	options pkgopenapi.ParserOptions
}

var _ pkgopenapi.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkgopenapi.ParserOptions) pkgopenapi.Parser {
	return &Parser{options: options}
}

// Operations converts a Document into a map keyed by operationId. Operations
// without an id are keyed as "<method>:<path>" in lower case method.
func (p *Parser) Operations(ctx context.Context, doc pkgopenapi.Document) (map[string]pkgopenapi.Operation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("openapi parser: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi parser: load document: %w", err)
	}
	if p.options.ResolveReferences {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi parser: validate: %w", err)
		}
	}

	operations := make(map[string]pkgopenapi.Operation)
	if spec.Paths != nil {
		for path, item := range spec.Paths.Map() {
			if item == nil {
				continue
			}
			for method, operation := range item.Operations() {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				op, err := convertOperation(method, path, operation)
				if err != nil {
					return nil, err
				}
				operations[op.ID] = op
			}
		}
	}

	if len(operations) == 0 && !p.options.AllowPartialDocuments {
		return nil, errors.New("openapi parser: no operations extracted")
	}
	return operations, nil
}

func convertOperation(method, path string, operation *openapi3.Operation) (pkgopenapi.Operation, error) {
	method = strings.ToUpper(method)
	id := operation.OperationID
	if id == "" {
		id = strings.ToLower(method) + ":" + path
	}

	var request pkgopenapi.Schema
	if body := operation.RequestBody; body != nil {
		if body.Value == nil {
			request = pkgopenapi.Schema{Ref: body.Ref}
		} else {
			request = mediaSchema(body.Value.Content)
		}
	}

	op, err := pkgopenapi.NewOperation(id, method, path, request, responseSchemas(operation.Responses))
	if err != nil {
		return pkgopenapi.Operation{}, fmt.Errorf("openapi parser: %s %s: %w", method, path, err)
	}
	op.Summary = operation.Summary
	op.Description = operation.Description
	op.Extensions = extractExtensions(operation.Extensions)
	return op, nil
}

// responseSchemas keeps only responses that declare a body.
func responseSchemas(responses *openapi3.Responses) map[string]pkgopenapi.Schema {
	if responses == nil || responses.Len() == 0 {
		return nil
	}
	out := make(map[string]pkgopenapi.Schema)
	for status, ref := range responses.Map() {
		switch {
		case ref == nil:
			continue
		case ref.Value == nil:
			out[status] = pkgopenapi.Schema{Ref: ref.Ref}
		case len(ref.Value.Content) > 0:
			schema := mediaSchema(ref.Value.Content)
			if schema.Description == "" && ref.Value.Description != nil {
				schema.Description = *ref.Value.Description
			}
			out[status] = schema
		}
	}
	return out
}

// mediaSchema prefers the JSON representation and otherwise takes whichever
// media type the content map yields first.
func mediaSchema(content openapi3.Content) pkgopenapi.Schema {
	if mt := content.Get(jsonMediaType); mt != nil {
		return convertSchema(mt.Schema)
	}
	for _, mt := range content {
		if mt != nil {
			return convertSchema(mt.Schema)
		}
	}
	return pkgopenapi.Schema{}
}

func convertSchema(ref *openapi3.SchemaRef) pkgopenapi.Schema {
	if ref == nil {
		return pkgopenapi.Schema{}
	}
	src := ref.Value
	if src == nil {
		return pkgopenapi.Schema{Ref: ref.Ref}
	}

	schema := pkgopenapi.Schema{
		Ref:         ref.Ref,
		Type:        schemaType(src.Type),
		Format:      src.Format,
		Description: src.Description,
		Default:     src.Default,
		Required:    append([]string(nil), src.Required...),
		Enum:        append([]any(nil), src.Enum...),
		Minimum:     copyFloat(src.Min),
		Maximum:     copyFloat(src.Max),
		Extensions:  extractExtensions(src.Extensions),
	}
	if len(src.Properties) > 0 {
		schema.Properties = make(map[string]pkgopenapi.Schema, len(src.Properties))
		for name, property := range src.Properties {
			schema.Properties[name] = convertSchema(property)
		}
	}
	if src.Items != nil {
		items := convertSchema(src.Items)
		schema.Items = &items
	}
	return schema
}

// schemaType joins OpenAPI 3.1 type arrays with commas.
func schemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	return strings.Join(types.Slice(), ",")
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
