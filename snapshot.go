// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/blossomdoc

package blossomdoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	handlerKindBlossom = "blossom"
	handlerKindTree    = "tree"
)

var catalogValidator = validator.New()

// Snapshot is a point-in-time copy of endpoints and handler contracts.
type Snapshot struct {
	Registry  *EndpointRegistry
	Catalog   *Catalog
	Component string
}

// catalogFile is the YAML layout of a snapshot file.
type catalogFile struct {
	Component string         `yaml:"component" validate:"required"`
	Endpoints []endpointSpec `yaml:"endpoints" validate:"dive"`
	Blossoms  []blossomSpec  `yaml:"blossoms" validate:"dive"`
	Trees     []treeSpec     `yaml:"trees" validate:"dive"`
}

// endpointSpec is one endpoint rule entry.
type endpointSpec struct {
	Path   string `yaml:"path" validate:"required"`
	Method string `yaml:"method" validate:"required,oneof=GET POST PUT DELETE"`
	Kind   string `yaml:"kind" validate:"required,oneof=blossom tree"`
	Group  string `yaml:"group"`
	Name   string `yaml:"name" validate:"required"`
}

// blossomSpec is one direct handler entry.
type blossomSpec struct {
	Input   map[string]fieldSpec `yaml:"input" validate:"dive"`
	Output  map[string]fieldSpec `yaml:"output" validate:"dive"`
	Group   string               `yaml:"group"`
	Name    string               `yaml:"name" validate:"required"`
	Comment string               `yaml:"comment"`
}

// treeSpec is one composite handler entry.
type treeSpec struct {
	Fields  map[string]fieldSpec `yaml:"fields" validate:"dive"`
	Name    string               `yaml:"name" validate:"required"`
	Comment string               `yaml:"comment"`
}

// fieldSpec is one field definition entry.
type fieldSpec struct {
	Default  any    `yaml:"default"`
	Match    any    `yaml:"match"`
	Type     string `yaml:"type" validate:"required,oneof=map array bool int float string"`
	Comment  string `yaml:"comment"`
	Regex    string `yaml:"regex"`
	Lower    int64  `yaml:"lower"`
	Upper    int64  `yaml:"upper"`
	Required bool   `yaml:"required"`
}

// LoadCatalogFile reads a snapshot from a YAML file.
func LoadCatalogFile(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", ErrReadCatalogFile, err)
	}

	return LoadCatalog(data)
}

// LoadCatalog decodes, validates and indexes a YAML snapshot.
//
// Endpoints may reference handlers the file does not define; those render
// as unresolved entries.
func LoadCatalog(data []byte) (Snapshot, error) {
	file, err := decodeCatalogFile(data)
	if err != nil {
		return Snapshot{}, err
	}

	if err := catalogValidator.Struct(file); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", ErrValidateCatalog, err)
	}

	return buildSnapshot(file)
}

// decodeCatalogFile strictly decodes YAML and rejects unknown keys.
func decodeCatalogFile(data []byte) (catalogFile, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var file catalogFile
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return catalogFile{}, fmt.Errorf("%w: empty document", ErrDecodeCatalog)
		}

		return catalogFile{}, fmt.Errorf("%w: %w", ErrDecodeCatalog, err)
	}

	return file, nil
}

// buildSnapshot converts validated catalog entries into registry and catalog.
func buildSnapshot(file catalogFile) (Snapshot, error) {
	snapshot := Snapshot{
		Component: file.Component,
		Registry:  NewEndpointRegistry(),
		Catalog:   NewCatalog(),
	}

	for _, blossom := range file.Blossoms {
		input, err := buildFieldMap(blossom.Input)
		if err != nil {
			return Snapshot{}, fmt.Errorf("blossom %s/%s input: %w", blossom.Group, blossom.Name, err)
		}

		output, err := buildFieldMap(blossom.Output)
		if err != nil {
			return Snapshot{}, fmt.Errorf("blossom %s/%s output: %w", blossom.Group, blossom.Name, err)
		}

		desc := HandlerDescriptor{
			Comment: blossom.Comment,
			Input:   input,
			Output:  output,
		}

		if err := snapshot.Catalog.AddBlossom(blossom.Group, blossom.Name, desc); err != nil {
			return Snapshot{}, err
		}
	}

	for _, tree := range file.Trees {
		fields, err := buildFieldMap(tree.Fields)
		if err != nil {
			return Snapshot{}, fmt.Errorf("tree %s: %w", tree.Name, err)
		}

		if err := snapshot.Catalog.AddTree(tree.Name, tree.Comment, fields); err != nil {
			return Snapshot{}, err
		}
	}

	for _, endpoint := range file.Endpoints {
		method, err := ParseHTTPMethod(endpoint.Method)
		if err != nil {
			return Snapshot{}, err
		}

		if err := snapshot.Registry.AddEndpoint(endpoint.Path, method, endpoint.handlerRef()); err != nil {
			return Snapshot{}, err
		}
	}

	return snapshot, nil
}

// handlerRef converts the endpoint kind into a handler reference.
func (spec endpointSpec) handlerRef() HandlerRef {
	switch spec.Kind {
	case handlerKindTree:
		return CompositeHandler{Name: spec.Name}
	case handlerKindBlossom:
		return DirectHandler{Group: spec.Group, Name: spec.Name}
	default:
		return nil
	}
}

// buildFieldMap converts field entries into definitions keyed by name.
func buildFieldMap(specs map[string]fieldSpec) (FieldMap, error) {
	fields := make(FieldMap, len(specs))
	for name, spec := range specs {
		fieldType, err := ParseFieldType(spec.Type)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}

		fields[name] = FieldDefinition{
			Name:       name,
			Type:       fieldType,
			Comment:    spec.Comment,
			Required:   spec.Required,
			Default:    spec.Default,
			Match:      spec.Match,
			Regex:      spec.Regex,
			LowerBound: spec.Lower,
			UpperBound: spec.Upper,
		}
	}

	return fields, nil
}
