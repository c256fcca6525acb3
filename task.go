// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/blossomdoc

package blossomdoc

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/gorilla/schema"
)

const (
	// DocumentationGroup is the blossom group of the documentation task.
	DocumentationGroup = "-"
	// DocumentationBlossom is the blossom name of the documentation task.
	DocumentationBlossom = "get_api_documentation"
	// DocumentationPath is the endpoint path serving generated documentation.
	DocumentationPath = "v1/documentation/api"
	// DocumentationOutputField is the output field carrying the base64 document.
	DocumentationOutputField = "documentation"
	// DocumentationTypeField is the input field selecting the output type.
	DocumentationTypeField = "type"
)

var taskInputDecoder = schema.NewDecoder()

func init() {
	taskInputDecoder.IgnoreUnknownKeys(true)
}

// documentationRequest is the decoded task input.
type documentationRequest struct {
	Type string `schema:"type"`
}

// DocumentationTask generates the API documentation of the running component.
//
// The task holds no mutable state; Run is safe for concurrent use while the
// registry and resolver are not modified.
type DocumentationTask struct {
	registry  *EndpointRegistry
	resolver  HandlerResolver
	component string
	opt       Options
}

// NewDocumentationTask creates a task documenting registry for component.
func NewDocumentationTask(component string, registry *EndpointRegistry, resolver HandlerResolver, opt Options) *DocumentationTask {
	return &DocumentationTask{
		component: component,
		registry:  registry,
		resolver:  resolver,
		opt:       opt,
	}
}

// Descriptor returns the declared input and output fields of the task.
func (t *DocumentationTask) Descriptor() HandlerDescriptor {
	return HandlerDescriptor{
		Comment: "Generate a user-specific documentation for the API of the current component.",
		Input: FieldMap{
			DocumentationTypeField: {
				Name:    DocumentationTypeField,
				Type:    FieldTypeString,
				Comment: "Output-type of the document (rst, pdf or md).",
				Default: string(DefaultOutputType),
			},
		},
		Output: FieldMap{
			DocumentationOutputField: {
				Name:    DocumentationOutputField,
				Type:    FieldTypeString,
				Comment: "API-documentation as base64 converted string.",
			},
		},
	}
}

// Run decodes task input and returns the output map with the encoded document.
func (t *DocumentationTask) Run(input url.Values) (map[string]any, error) {
	var req documentationRequest
	if err := taskInputDecoder.Decode(&req, input); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeTaskInput, err)
	}

	outputType := OutputType(strings.TrimSpace(req.Type))
	if outputType == "" {
		outputType = DefaultOutputType
	}

	t.opt.logger().Debug("generating api documentation",
		slog.String("component", t.component),
		slog.String("type", string(outputType)),
		slog.Int("endpoints", t.registry.Len()),
	)

	return map[string]any{
		DocumentationOutputField: GenerateBase64(t.component, t.registry, t.resolver, outputType, t.opt),
	}, nil
}

// Install registers the documentation task in catalog and binds it to GET DocumentationPath.
func Install(registry *EndpointRegistry, catalog *Catalog, task *DocumentationTask) error {
	if err := catalog.AddBlossom(DocumentationGroup, DocumentationBlossom, task.Descriptor()); err != nil {
		return err
	}

	return registry.AddEndpoint(DocumentationPath, MethodGet, DirectHandler{
		Group: DocumentationGroup,
		Name:  DocumentationBlossom,
	})
}
