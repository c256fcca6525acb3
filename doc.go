// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/blossomdoc

/*
Package blossomdoc renders reStructuredText API references from an endpoint
registry and the field contracts of the handlers bound to it.

Output is deterministic: paths, methods (GET, POST, PUT, DELETE) and fields
are always emitted in sorted order, so two renders of the same snapshot are
byte-identical.

Render from an in-memory registry:

	registry := blossomdoc.NewEndpointRegistry()
	catalog := blossomdoc.NewCatalog()

	err := catalog.AddBlossom("cluster", "create", blossomdoc.HandlerDescriptor{
		Comment: "Create a new cluster.",
		Input: blossomdoc.FieldMap{
			"name": {Type: blossomdoc.FieldTypeString, Required: true, LowerBound: 4, UpperBound: 256},
		},
	})
	if err != nil {
		return err
	}

	err = registry.AddEndpoint("v1/cluster", blossomdoc.MethodPost, blossomdoc.DirectHandler{
		Group: "cluster",
		Name:  "create",
	})
	if err != nil {
		return err
	}

	rst := blossomdoc.Render("kyouko", registry, catalog, blossomdoc.Options{})
	fmt.Println(rst)

Load a snapshot from YAML and produce the base64 payload of the
documentation task:

	snapshot, err := blossomdoc.LoadCatalogFile("catalog.yaml")
	if err != nil {
		return err
	}

	task := blossomdoc.NewDocumentationTask(snapshot.Component, snapshot.Registry, snapshot.Catalog, blossomdoc.Options{})
	if err := blossomdoc.Install(snapshot.Registry, snapshot.Catalog, task); err != nil {
		return err
	}

	output, err := task.Run(url.Values{"type": {"rst"}})
	if err != nil {
		return err
	}

	fmt.Println(output["documentation"])
*/
package blossomdoc
