package store

import (
	"context"
	"strings"
	"testing"
)

// TestEnsureSchemaIdempotent verifies Init and EnsureSchema share one DDL
// path and can be applied repeatedly.
func TestEnsureSchemaIdempotent(t *testing.T) {
	s := openStore(t)
	if err := EnsureSchema(s.DB()); err != nil {
		t.Fatalf("re-apply schema: %v", err)
	}
	if err := s.Init(context.Background()); err != nil {
		t.Fatalf("re-init: %v", err)
	}
}

func TestEnsureSchemaNilDB(t *testing.T) {
	if err := EnsureSchema(nil); err == nil {
		t.Fatalf("expected an error for a nil connection")
	}
}

func TestSchemaDDLNamesAllTables(t *testing.T) {
	ddl := SchemaDDL()
	for _, table := range []string{"runs", "section_scores", "item_scores"} {
		if !strings.Contains(ddl, table) {
			t.Fatalf("schema DDL is missing table %s", table)
		}
	}
}
