// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/blossomdoc

package blossomdoc

import (
	"fmt"
	"strings"
)

// Catalog is an in-memory HandlerResolver holding blossoms and trees.
type Catalog struct {
	blossoms map[blossomKey]HandlerDescriptor
	trees    map[string]HandlerDescriptor
}

// blossomKey identifies a blossom by group and name.
type blossomKey struct {
	group string
	name  string
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		blossoms: make(map[blossomKey]HandlerDescriptor),
		trees:    make(map[string]HandlerDescriptor),
	}
}

// AddBlossom registers a direct handler contract under group and name.
func (c *Catalog) AddBlossom(group, name string, desc HandlerDescriptor) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: blossom in group %q has no name", ErrInvalidHandler, group)
	}

	key := blossomKey{group: group, name: name}
	if _, exists := c.blossoms[key]; exists {
		return fmt.Errorf("%w: blossom %s/%s", ErrHandlerExists, group, name)
	}

	c.blossoms[key] = desc
	return nil
}

// AddTree registers a composite handler with one merged field map.
func (c *Catalog) AddTree(name, comment string, fields FieldMap) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: tree has no name", ErrInvalidHandler)
	}

	if _, exists := c.trees[name]; exists {
		return fmt.Errorf("%w: tree %s", ErrHandlerExists, name)
	}

	c.trees[name] = HandlerDescriptor{
		Comment: comment,
		Input:   fields,
		Output:  fields,
	}

	return nil
}

// ResolveDirect implements HandlerResolver.
func (c *Catalog) ResolveDirect(group, name string) (HandlerDescriptor, bool) {
	if c == nil {
		return HandlerDescriptor{}, false
	}

	desc, ok := c.blossoms[blossomKey{group: group, name: name}]
	return desc, ok
}

// ResolveComposite implements HandlerResolver.
func (c *Catalog) ResolveComposite(name string) (HandlerDescriptor, bool) {
	if c == nil {
		return HandlerDescriptor{}, false
	}

	desc, ok := c.trees[name]
	return desc, ok
}
