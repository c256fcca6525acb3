// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/blossomdoc

package blossomdoc

import (
	"fmt"
	"sort"
	"strings"
)

// FieldType is the value type declared for one handler field.
type FieldType int

const (
	// FieldTypeMap declares an object value.
	FieldTypeMap FieldType = iota
	// FieldTypeArray declares a list value.
	FieldTypeArray
	// FieldTypeBool declares a boolean value.
	FieldTypeBool
	// FieldTypeInt declares an integer value; bounds limit the value range.
	FieldTypeInt
	// FieldTypeFloat declares a floating point value.
	FieldTypeFloat
	// FieldTypeString declares a text value; bounds limit the string length.
	FieldTypeString
)

// fieldTypeNames maps field types to their documented display names.
var fieldTypeNames = map[FieldType]string{
	FieldTypeMap:    "Map",
	FieldTypeArray:  "Array",
	FieldTypeBool:   "Bool",
	FieldTypeInt:    "Int",
	FieldTypeFloat:  "Float",
	FieldTypeString: "String",
}

// String returns the display name used in rendered documentation.
func (t FieldType) String() string {
	if name, ok := fieldTypeNames[t]; ok {
		return name
	}

	return fmt.Sprintf("FieldType(%d)", int(t))
}

// ParseFieldType resolves a case-insensitive field type name.
func ParseFieldType(name string) (FieldType, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for fieldType, display := range fieldTypeNames {
		if strings.ToLower(display) == normalized {
			return fieldType, nil
		}
	}

	return 0, fmt.Errorf("%w %q", ErrUnknownFieldType, name)
}

// FieldDefinition describes one named request or response value.
//
// Default and Match are nil when absent. LowerBound and UpperBound are only
// meaningful when at least one of them is non-zero, and only for Int (value
// range) and String (length range) fields.
type FieldDefinition struct {
	Default    any
	Match      any
	Name       string
	Comment    string
	Regex      string
	LowerBound int64
	UpperBound int64
	Type       FieldType
	Required   bool
}

// hasBounds reports whether any border value is set.
func (f FieldDefinition) hasBounds() bool {
	return f.LowerBound != 0 || f.UpperBound != 0
}

// FieldMap holds field definitions keyed by field name.
type FieldMap map[string]FieldDefinition

// Names returns field names in ascending order.
func (m FieldMap) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// HTTPMethod is the request type an endpoint rule is bound to.
type HTTPMethod int

const (
	// MethodGet binds GET requests.
	MethodGet HTTPMethod = iota
	// MethodPost binds POST requests.
	MethodPost
	// MethodPut binds PUT requests.
	MethodPut
	// MethodDelete binds DELETE requests.
	MethodDelete
)

// httpMethods lists supported methods in documentation order.
var httpMethods = []HTTPMethod{MethodGet, MethodPost, MethodPut, MethodDelete}

// String returns the upper-case method name.
func (m HTTPMethod) String() string {
	switch m {
	case MethodGet:
		return "GET"
	case MethodPost:
		return "POST"
	case MethodPut:
		return "PUT"
	case MethodDelete:
		return "DELETE"
	default:
		return fmt.Sprintf("HTTPMethod(%d)", int(m))
	}
}

// ParseHTTPMethod resolves a case-insensitive method name.
func ParseHTTPMethod(name string) (HTTPMethod, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	for _, method := range httpMethods {
		if method.String() == normalized {
			return method, nil
		}
	}

	return 0, fmt.Errorf("%w %q", ErrUnknownHTTPMethod, name)
}

// HandlerRef points an endpoint rule at either a DirectHandler or a CompositeHandler.
type HandlerRef interface {
	handlerRef()
	fmt.Stringer
}

// DirectHandler references a single blossom registered under group and name.
type DirectHandler struct {
	Group string
	Name  string
}

func (DirectHandler) handlerRef() {}

// String returns "group/name".
func (h DirectHandler) String() string {
	return h.Group + "/" + h.Name
}

// CompositeHandler references a tree of blossoms by its name.
type CompositeHandler struct {
	Name string
}

func (CompositeHandler) handlerRef() {}

// String returns "tree:name".
func (h CompositeHandler) String() string {
	return "tree:" + h.Name
}

// EndpointRule binds one path and method to a handler.
type EndpointRule struct {
	Handler HandlerRef
	Path    string
	Method  HTTPMethod
}

// HandlerDescriptor is the documented contract of a resolved handler.
type HandlerDescriptor struct {
	Input   FieldMap
	Output  FieldMap
	Comment string
}

// HandlerResolver looks up handler contracts owned by the host framework.
//
// ResolveComposite returns a descriptor whose Input and Output are the same
// merged field map, since trees do not separate directions.
type HandlerResolver interface {
	ResolveDirect(group, name string) (HandlerDescriptor, bool)
	ResolveComposite(name string) (HandlerDescriptor, bool)
}

// resolveHandler dispatches a handler reference to the matching resolver lookup.
func resolveHandler(resolver HandlerResolver, ref HandlerRef) (HandlerDescriptor, bool) {
	if resolver == nil {
		return HandlerDescriptor{}, false
	}

	switch handler := ref.(type) {
	case DirectHandler:
		return resolver.ResolveDirect(handler.Group, handler.Name)
	case CompositeHandler:
		return resolver.ResolveComposite(handler.Name)
	default:
		return HandlerDescriptor{}, false
	}
}
