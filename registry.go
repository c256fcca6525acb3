// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/blossomdoc

package blossomdoc

import (
	"fmt"
	"sort"
	"strings"
)

// EndpointRegistry maps endpoint paths to method-bound handler rules.
//
// Rendering only reads the registry, so a fully populated registry is safe
// for concurrent readers. Writers must not run alongside readers.
type EndpointRegistry struct {
	rules map[string]map[HTTPMethod]EndpointRule
}

// NewEndpointRegistry returns an empty registry.
func NewEndpointRegistry() *EndpointRegistry {
	return &EndpointRegistry{
		rules: make(map[string]map[HTTPMethod]EndpointRule),
	}
}

// AddEndpoint binds path and method to a handler reference.
func (r *EndpointRegistry) AddEndpoint(path string, method HTTPMethod, ref HandlerRef) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidEndpoint)
	}

	if ref == nil {
		return fmt.Errorf("%w: %s %s has no handler", ErrInvalidEndpoint, method, path)
	}

	methods, ok := r.rules[path]
	if !ok {
		methods = make(map[HTTPMethod]EndpointRule)
		r.rules[path] = methods
	}

	if _, exists := methods[method]; exists {
		return fmt.Errorf("%w: %s %s", ErrEndpointExists, method, path)
	}

	methods[method] = EndpointRule{
		Path:    path,
		Method:  method,
		Handler: ref,
	}

	return nil
}

// Paths returns all registered paths in ascending order.
func (r *EndpointRegistry) Paths() []string {
	if r == nil {
		return nil
	}

	paths := make([]string, 0, len(r.rules))
	for path := range r.rules {
		paths = append(paths, path)
	}

	sort.Strings(paths)
	return paths
}

// Rules returns rules bound to path ordered GET, POST, PUT, DELETE.
func (r *EndpointRegistry) Rules(path string) []EndpointRule {
	if r == nil {
		return nil
	}

	methods := r.rules[path]
	if len(methods) == 0 {
		return nil
	}

	out := make([]EndpointRule, 0, len(methods))
	for _, rule := range methods {
		out = append(out, rule)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Method < out[j].Method
	})

	return out
}

// Len returns the total number of rules.
func (r *EndpointRegistry) Len() int {
	if r == nil {
		return 0
	}

	total := 0
	for _, methods := range r.rules {
		total += len(methods)
	}

	return total
}
