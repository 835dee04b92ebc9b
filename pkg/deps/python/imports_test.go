package python

import (
	"reflect"
	"testing"
)

func importNames(imps []RawImport) []string {
	var out []string
	for _, i := range imps {
		if i.Relative {
			out = append(out, "."+i.Name)
			continue
		}
		out = append(out, i.Name)
	}
	return out
}

func TestExtractImports(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"plain", "import os\nimport requests\n", []string{"os", "requests"}},
		{"dotted", "import google.cloud.storage\n", []string{"google"}},
		{"aliases and lists", "import numpy as np, pandas as pd, sys\n", []string{"numpy", "pandas", "sys"}},
		{"from", "from django.db import models\n", []string{"django"}},
		{"from star", "from yaml import *\n", []string{"yaml"}},
		{
			"parenthesized multi-line",
			"from rest_framework import (\n    serializers,\n    viewsets,\n)\nimport attr\n",
			[]string{"rest_framework", "attr"},
		},
		{"backslash continuation", "import flask, \\\n    click\n", []string{"flask", "click"}},
		{"semicolons", "import a; import b; x = 1; from c import d\n", []string{"a", "b", "c"}},
		{"one-line compound", "try: import ujson as json\nexcept ImportError: import json\n", []string{"ujson", "json"}},
		{
			"nested blocks",
			"if TYPE_CHECKING:\n    from mypy_extensions import TypedDict\n\ndef f():\n    import lxml.etree\n",
			[]string{"mypy_extensions", "lxml"},
		},
		{"relative", "from . import sibling\nfrom ..pkg import thing\nfrom .mod import x\n", []string{".", ".pkg", ".mod"}},
		{"comment", "# import hidden\nimport shown  # import also_hidden\n", []string{"shown"}},
		{"string", "s = 'import hidden'\nt = \"from hidden import x\"\n", nil},
		{"docstring", "\"\"\"\nimport hidden\n\"\"\"\nimport shown\n", []string{"shown"}},
		{"f-string nested quotes", "x = f\"{d[\"import\"]}\"\nimport shown\n", []string{"shown"}},
		{"f-string braces", "x = f'{{import}} {y:{w}}'\nimport shown\n", []string{"shown"}},
		{"raw bytes prefixes", "x = rb'\\d'\nimport shown\n", []string{"shown"}},
		{"attribute named import", "obj.import_thing()\nx.from_ = 1\n", nil},
		{"yield from", "def g():\n    yield from gen()\n", nil},
		{"raise from", "raise ValueError() from err\n", nil},
		{"crlf", "import a\r\nimport b\r\n", []string{"a", "b"}},
		{"bom", "\ufeffimport a\n", []string{"a"}},
		{"no trailing newline", "import last", []string{"last"}},
		{"unicode identifier", "import café\n", []string{"café"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractImports([]byte(tt.src))
			if err != nil {
				t.Fatalf("ExtractImports() error = %v", err)
			}
			if names := importNames(got); !reflect.DeepEqual(names, tt.want) {
				t.Errorf("imports = %q, want %q", names, tt.want)
			}
		})
	}
}

func TestExtractImports_Lines(t *testing.T) {
	src := "\"\"\"doc\nstring\"\"\"\nimport a\nfrom b import (\n  c,\n)\nimport d\n"
	got, err := ExtractImports([]byte(src))
	if err != nil {
		t.Fatalf("ExtractImports() error = %v", err)
	}
	want := map[string]int{"a": 3, "b": 4, "d": 7}
	for _, imp := range got {
		if want[imp.Name] != imp.Line {
			t.Errorf("%s at line %d, want %d", imp.Name, imp.Line, want[imp.Name])
		}
	}
	if len(got) != len(want) {
		t.Errorf("got %d imports, want %d", len(got), len(want))
	}
}

func TestExtractImports_PathsAndMembers(t *testing.T) {
	src := "import google.cloud.storage as gcs, os\n" +
		"from google.cloud import (\n    bigquery,\n    pubsub_v1 as pubsub,\n)\n" +
		"from azure.storage.blob import BlobClient; import yaml\n" +
		"from numpy import *\n" +
		"from .local import thing\n"
	got, err := ExtractImports([]byte(src))
	if err != nil {
		t.Fatalf("ExtractImports() error = %v", err)
	}

	type shape struct {
		Name    string
		Path    string
		Members []string
	}
	var shapes []shape
	for _, imp := range got {
		shapes = append(shapes, shape{imp.Name, imp.Path, imp.Members})
	}
	want := []shape{
		{"google", "google.cloud.storage", nil},
		{"os", "os", nil},
		{"google", "google.cloud", []string{"bigquery", "pubsub_v1"}},
		{"azure", "azure.storage.blob", []string{"BlobClient"}},
		{"yaml", "yaml", nil},
		{"numpy", "numpy", nil},
		{"local", "", nil},
	}
	if !reflect.DeepEqual(shapes, want) {
		t.Errorf("imports =\n%+v\nwant\n%+v", shapes, want)
	}
}

func TestExtractImports_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
	}{
		{"invalid utf-8", []byte("import a\n\xff\xfe\n")},
		{"unterminated string", []byte("import a\nx = 'oops\n")},
		{"unterminated triple string", []byte("import a\nx = \"\"\"never closed\n")},
		{"unclosed bracket", []byte("import a\nx = (1,\n")},
		{"stray closing bracket", []byte("import a\n)\n")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractImports(tt.src)
			if err == nil {
				t.Fatalf("ExtractImports() = %v, want error", got)
			}
			if got != nil {
				t.Errorf("imports = %v, want none on error", got)
			}
		})
	}
}
