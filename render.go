// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/blossomdoc

package blossomdoc

import (
	"encoding/base64"
	"io"
	"log/slog"
	"strings"
)

const (
	// OutputTypeRST renders reStructuredText.
	OutputTypeRST OutputType = "rst"
	// OutputTypePDF renders reStructuredText for a downstream PDF converter.
	OutputTypePDF OutputType = "pdf"
	// OutputTypeMarkdown is accepted but not implemented and renders nothing.
	OutputTypeMarkdown OutputType = "md"
)

// DefaultOutputType is used by the documentation task when no type is requested.
const DefaultOutputType = OutputTypePDF

// OutputType selects the generated document format.
type OutputType string

// Supported reports whether the type produces a non-empty document.
func (t OutputType) Supported() bool {
	switch normalizeOutputType(t) {
	case OutputTypeRST, OutputTypePDF:
		return true
	default:
		return false
	}
}

// normalizeOutputType lower-cases and trims output type identifiers.
func normalizeOutputType(t OutputType) OutputType {
	return OutputType(strings.ToLower(strings.TrimSpace(string(t))))
}

const (
	requestSectionTitle  = "Request-Parameter"
	responseSectionTitle = "Response-Parameter"
)

// Options configures documentation rendering.
type Options struct {
	// Logger receives diagnostics about unresolved handlers; slog.Default when nil.
	Logger *slog.Logger
}

func (opt Options) logger() *slog.Logger {
	if opt.Logger == nil {
		return slog.Default()
	}

	return opt.Logger
}

// Render produces the reStructuredText API reference for every registered endpoint.
//
// Rendering never fails. A rule whose handler cannot be resolved keeps its
// method heading and drops the field sections, and generation continues.
func Render(componentName string, registry *EndpointRegistry, resolver HandlerResolver, opt Options) string {
	logger := opt.logger()

	var doc strings.Builder
	writeTitle(&doc, componentName)
	writeText(&doc, "\n")

	for _, path := range registry.Paths() {
		writeHeading(&doc, path, '-')

		for _, rule := range registry.Rules(path) {
			writeText(&doc, "\n")
			writeHeading(&doc, rule.Method.String(), '^')
			writeText(&doc, "\n")

			desc, ok := resolveHandler(resolver, rule.Handler)
			if !ok {
				logger.Warn("handler not found, skipping field documentation",
					slog.String("path", rule.Path),
					slog.String("method", rule.Method.String()),
					slog.Any("handler", rule.Handler),
				)

				continue
			}

			writeHandler(&doc, desc)
		}
	}

	return doc.String()
}

// RenderField appends the documentation block of one field to w.
//
// Response-side fields only carry description and type; constraint attributes
// are rendered for request-side fields only.
func RenderField(w io.StringWriter, field FieldDefinition, requestSide bool) {
	writeText(w, "\n", inlineLiteral(field.Name), "\n")

	if field.Comment != "" {
		writeAttribute(w, "Description", field.Comment)
	}

	writeAttribute(w, "Type", field.Type.String())

	if !requestSide {
		return
	}

	writeAttribute(w, "Required", boolText(field.Required))

	if field.Default != nil && !field.Required {
		writeAttribute(w, "Default", formatValue(field.Default))
	}

	if field.Match != nil {
		writeAttribute(w, "Does have the value", formatValue(field.Match))
	}

	if field.Regex != "" {
		writeAttribute(w, "Must match the regex", field.Regex)
	}

	if !field.hasBounds() {
		return
	}

	switch field.Type {
	case FieldTypeInt:
		writeAttribute(w, "Lower border of value", formatInt(field.LowerBound))
		writeAttribute(w, "Upper border of value", formatInt(field.UpperBound))
	case FieldTypeString:
		writeAttribute(w, "Minimum string-length", formatInt(field.LowerBound))
		writeAttribute(w, "Maximum string-length", formatInt(field.UpperBound))
	default:
	}
}

// Generate renders documentation in the requested format.
//
// rst and pdf share the reStructuredText output; pdf conversion happens
// downstream. Unsupported types yield an empty document.
func Generate(componentName string, registry *EndpointRegistry, resolver HandlerResolver, outputType OutputType, opt Options) string {
	if !outputType.Supported() {
		opt.logger().Debug("unsupported documentation type, returning empty document",
			slog.String("type", string(outputType)),
		)

		return ""
	}

	return Render(componentName, registry, resolver, opt)
}

// GenerateBase64 renders documentation and encodes it with standard base64.
func GenerateBase64(componentName string, registry *EndpointRegistry, resolver HandlerResolver, outputType OutputType, opt Options) string {
	doc := Generate(componentName, registry, resolver, outputType, opt)
	return base64.StdEncoding.EncodeToString([]byte(doc))
}

// writeHandler renders comment and both field sections of a resolved handler.
func writeHandler(w io.StringWriter, desc HandlerDescriptor) {
	writeText(w, desc.Comment, "\n")

	writeText(w, "\n")
	writeHeading(w, requestSectionTitle, '~')
	writeFields(w, desc.Input, true)

	writeText(w, "\n")
	writeHeading(w, responseSectionTitle, '~')
	writeFields(w, desc.Output, false)
}

// writeFields renders fields sorted by name.
func writeFields(w io.StringWriter, fields FieldMap, requestSide bool) {
	for _, name := range fields.Names() {
		field := fields[name]
		field.Name = name
		RenderField(w, field, requestSide)
	}
}
