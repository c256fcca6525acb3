// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/blossomdoc

package blossomdoc

import (
	"encoding/base64"
	"errors"
	"net/url"
	"testing"
)

func TestDocumentationTaskDescriptor(t *testing.T) {
	t.Parallel()

	desc := NewDocumentationTask("misaka", NewEndpointRegistry(), NewCatalog(), Options{}).Descriptor()

	input, ok := desc.Input[DocumentationTypeField]
	if !ok {
		t.Fatal("missing type input field")
	}

	if input.Type != FieldTypeString || input.Required || input.Default != "pdf" {
		t.Fatalf("type field = %+v", input)
	}

	output, ok := desc.Output[DocumentationOutputField]
	if !ok || output.Type != FieldTypeString {
		t.Fatalf("documentation field = %+v, %v", output, ok)
	}
}

func TestDocumentationTaskRun(t *testing.T) {
	t.Parallel()

	registry, catalog := userFixture(t)
	task := NewDocumentationTask("misaka", registry, catalog, Options{Logger: discardLogger()})
	rst := Render("misaka", registry, catalog, Options{Logger: discardLogger()})

	cases := []struct {
		name  string
		input url.Values
		want  string
	}{
		{name: "default type", input: url.Values{}, want: rst},
		{name: "nil input", input: nil, want: rst},
		{name: "blank type", input: url.Values{"type": {" "}}, want: rst},
		{name: "rst", input: url.Values{"type": {"rst"}}, want: rst},
		{name: "pdf", input: url.Values{"type": {"pdf"}}, want: rst},
		{name: "md", input: url.Values{"type": {"md"}}, want: ""},
		{name: "unknown key ignored", input: url.Values{"type": {"rst"}, "extra": {"1"}}, want: rst},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			output, err := task.Run(tc.input)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}

			encoded, ok := output[DocumentationOutputField].(string)
			if !ok {
				t.Fatalf("documentation output = %#v", output[DocumentationOutputField])
			}

			decoded, err := base64.StdEncoding.DecodeString(encoded)
			if err != nil {
				t.Fatalf("decode base64: %v", err)
			}

			if string(decoded) != tc.want {
				t.Fatalf("decoded = %q, want %q", decoded, tc.want)
			}
		})
	}
}

func TestInstallDocumentsItself(t *testing.T) {
	t.Parallel()

	registry := NewEndpointRegistry()
	catalog := NewCatalog()
	task := NewDocumentationTask("misaka", registry, catalog, Options{Logger: discardLogger()})
	if err := Install(registry, catalog, task); err != nil {
		t.Fatalf("Install: %v", err)
	}

	rules := registry.Rules(DocumentationPath)
	if len(rules) != 1 || rules[0].Method != MethodGet {
		t.Fatalf("rules = %+v", rules)
	}

	output, err := task.Run(url.Values{"type": {"rst"}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	decoded, err := base64.StdEncoding.DecodeString(output[DocumentationOutputField].(string))
	if err != nil {
		t.Fatalf("decode base64: %v", err)
	}

	doc := string(decoded)
	assertOrdered(t, doc,
		"v1/documentation/api\n--------------------\n\nGET\n^^^\n\n",
		"Generate a user-specific documentation for the API of the current component.\n",
		"``type``\n    **Description:**\n        ``Output-type of the document (rst, pdf or md).``\n",
		"    **Default:**\n        ``pdf``\n",
		"Response-Parameter",
		"``documentation``\n    **Description:**\n        ``API-documentation as base64 converted string.``\n",
	)

	if err := Install(registry, catalog, task); !errors.Is(err, ErrHandlerExists) {
		t.Fatalf("second Install error = %v, want %v", err, ErrHandlerExists)
	}
}
