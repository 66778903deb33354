package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const catalog = `package: methods
imports:
  types: github.com/reoring/botschema/types
methods:
  - name: getFile
    returns: types.File
    required:
      - name: FileID
        type: string
`

func writeCatalog(t *testing.T, body string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir, path
}

func TestRun_WritesFilesThenChecksClean(t *testing.T) {
	dir, schema := writeCatalog(t, catalog)
	var stderr bytes.Buffer
	if code := run([]string{"-schema", schema, "-o", dir}, &stderr); code != 0 {
		t.Fatalf("exit %d: %s", code, stderr.String())
	}
	for _, name := range []string{"get_file_gen.go", "catalog_gen.go"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("%s not written: %v", name, err)
		}
	}
	if code := run([]string{"-schema", schema, "-o", dir, "-check"}, &stderr); code != 0 {
		t.Fatalf("freshly generated files must pass -check: %s", stderr.String())
	}
}

func TestRun_CheckReportsStaleFiles(t *testing.T) {
	dir, schema := writeCatalog(t, catalog)
	var stderr bytes.Buffer
	if code := run([]string{"-schema", schema, "-o", dir, "-check"}, &stderr); code != 1 {
		t.Fatalf("missing files must fail -check, exit %d", code)
	}
	if !strings.Contains(stderr.String(), "generated file is stale") {
		t.Fatalf("stderr: %s", stderr.String())
	}
}

func TestRun_SchemaErrorWritesNothing(t *testing.T) {
	dir, schema := writeCatalog(t, catalog+`      - name: FileRef
        wire: file_id
        type: string
`)
	var stderr bytes.Buffer
	if code := run([]string{"-schema", schema, "-o", dir}, &stderr); code != 1 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(stderr.String(), "duplicate_field") {
		t.Fatalf("stderr: %s", stderr.String())
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Fatalf("nothing but the catalog may exist, found %d entries", len(entries))
	}
}

func TestRun_BadFlags(t *testing.T) {
	var stderr bytes.Buffer
	if code := run([]string{"-nope"}, &stderr); code != 2 {
		t.Fatalf("exit %d", code)
	}
}
