// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/blossomdoc

package blossomdoc

import "errors"

var (
	// ErrUnknownFieldType is returned when a field type name is not supported.
	ErrUnknownFieldType = errors.New("unknown field type")
	// ErrUnknownHTTPMethod is returned when a method name is not supported.
	ErrUnknownHTTPMethod = errors.New("unknown http method")
	// ErrInvalidEndpoint is returned when an endpoint rule has no path or handler.
	ErrInvalidEndpoint = errors.New("invalid endpoint")
	// ErrEndpointExists is returned when path and method are already bound.
	ErrEndpointExists = errors.New("endpoint already exists")
	// ErrInvalidHandler is returned when a handler is registered without a name.
	ErrInvalidHandler = errors.New("invalid handler")
	// ErrHandlerExists is returned when a blossom or tree name is already registered.
	ErrHandlerExists = errors.New("handler already exists")
	// ErrReadCatalogFile is returned when catalog file loading fails.
	ErrReadCatalogFile = errors.New("read catalog file")
	// ErrDecodeCatalog is returned when catalog YAML decoding fails.
	ErrDecodeCatalog = errors.New("decode catalog")
	// ErrValidateCatalog is returned when catalog content fails validation.
	ErrValidateCatalog = errors.New("validate catalog")
	// ErrDecodeTaskInput is returned when documentation task input cannot be decoded.
	ErrDecodeTaskInput = errors.New("decode task input")
)
