// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/blossomdoc

package blossomdoc

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestLoadCatalogFileFixture(t *testing.T) {
	t.Parallel()

	snapshot, err := LoadCatalogFile(filepath.Join("testdata", "catalog.fixture.yaml"))
	if err != nil {
		t.Fatalf("LoadCatalogFile: %v", err)
	}

	if snapshot.Component != "misaka" {
		t.Fatalf("component = %q", snapshot.Component)
	}

	if got := strings.Join(snapshot.Registry.Paths(), ","); got != "v1/cluster,v1/ghost,v1/user" {
		t.Fatalf("paths = %q", got)
	}

	if snapshot.Registry.Len() != 4 {
		t.Fatalf("rules = %d, want 4", snapshot.Registry.Len())
	}

	create, ok := snapshot.Catalog.ResolveDirect("user", "create")
	if !ok {
		t.Fatal("user/create not resolved")
	}

	name := create.Input["name"]
	if name.Name != "name" || name.Type != FieldTypeString || !name.Required || name.LowerBound != 4 || name.UpperBound != 256 {
		t.Fatalf("name field = %+v", name)
	}

	if isAdmin := create.Input["is_admin"]; isAdmin.Default != false {
		t.Fatalf("is_admin default = %#v, want false", isAdmin.Default)
	}

	tree, ok := snapshot.Catalog.ResolveComposite("delete_cluster")
	if !ok || tree.Input["uuid"].Match != "cluster" {
		t.Fatalf("delete_cluster = %+v, %v", tree, ok)
	}
}

func TestRenderCatalogFixture(t *testing.T) {
	t.Parallel()

	snapshot, err := LoadCatalogFile(filepath.Join("testdata", "catalog.fixture.yaml"))
	if err != nil {
		t.Fatalf("LoadCatalogFile: %v", err)
	}

	rendered := Render(snapshot.Component, snapshot.Registry, snapshot.Catalog, Options{Logger: discardLogger()})

	assertOrdered(t, rendered,
		"MISAKA\n======\n",
		"v1/cluster\n----------\n\nDELETE\n^^^^^^\n\nDelete a cluster.\n",
		"v1/ghost\n--------\n\nPUT\n^^^\n\nv1/user\n",
		"GET\n^^^\n\nShow information of a specific user.\n",
		"POST\n^^^^\n\nCreate new user.\n",
	)

	assertContains(t, rendered, "``is_admin``\n    **Description:**\n        ``Set this to true to register the new user as admin.``\n"+
		"    **Type:**\n        ``Bool``\n    **Required:**\n        ``False``\n    **Default:**\n        ``false``\n")
	assertContains(t, rendered, "    **Must match the regex:**\n        ``[a-zA-Z][a-zA-Z_0-9]*``\n")
	assertContains(t, rendered, "``roles``\n    **Type:**\n        ``Array``\n")
}

func TestLoadCatalogRejectsInvalidContent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		data string
		want error
	}{
		{
			name: "empty",
			data: "",
			want: ErrDecodeCatalog,
		},
		{
			name: "unknown key",
			data: "component: x\nendpionts: []\n",
			want: ErrDecodeCatalog,
		},
		{
			name: "missing component",
			data: "endpoints: []\n",
			want: ErrValidateCatalog,
		},
		{
			name: "bad method",
			data: "component: x\nendpoints:\n  - {path: v1/a, method: PATCH, kind: blossom, name: a}\n",
			want: ErrValidateCatalog,
		},
		{
			name: "bad kind",
			data: "component: x\nendpoints:\n  - {path: v1/a, method: GET, kind: leaf, name: a}\n",
			want: ErrValidateCatalog,
		},
		{
			name: "bad field type",
			data: "component: x\nblossoms:\n  - name: a\n    input:\n      f: {type: decimal}\n",
			want: ErrValidateCatalog,
		},
		{
			name: "duplicate endpoint",
			data: "component: x\nendpoints:\n" +
				"  - {path: v1/a, method: GET, kind: tree, name: a}\n" +
				"  - {path: v1/a, method: GET, kind: tree, name: b}\n",
			want: ErrEndpointExists,
		},
		{
			name: "duplicate tree",
			data: "component: x\ntrees:\n  - {name: a}\n  - {name: a}\n",
			want: ErrHandlerExists,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadCatalog([]byte(tc.data))
			if !errors.Is(err, tc.want) {
				t.Fatalf("LoadCatalog error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestLoadCatalogValidationDetails(t *testing.T) {
	t.Parallel()

	_, err := LoadCatalog([]byte("component: x\nendpoints:\n  - {method: GET, kind: tree, name: a}\n"))

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		t.Fatalf("expected validator errors, got %v", err)
	}

	if validationErrs[0].Field() != "Path" || validationErrs[0].Tag() != "required" {
		t.Fatalf("validation error = %s/%s", validationErrs[0].Field(), validationErrs[0].Tag())
	}
}

func TestLoadCatalogFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadCatalogFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrReadCatalogFile) {
		t.Fatalf("LoadCatalogFile error = %v, want %v", err, ErrReadCatalogFile)
	}
}
