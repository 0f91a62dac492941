// ABOUTME: Tests for schema validation, versioned migration, and backfill.
// ABOUTME: Reopens a file-backed store to exercise version persistence.
package store

import (
	"errors"
	"testing"
	"time"
)

func twoVersions() []Version {
	return []Version{
		{Tables: []TableDef{itemDef("name")}},
		{Tables: []TableDef{itemDef("name", "qty")}},
	}
}

func TestMigrationBackfillsNewIndexes(t *testing.T) {
	dir := t.TempDir()

	// Open at v1 and write rows while only name is indexed.
	eng, err := Open(Options{Path: dir, Schema: twoVersions()[:1]})
	if err != nil {
		t.Fatalf("Open v1 failed: %v", err)
	}
	items := NewTable[item](eng, "items")
	for qty := 1; qty <= 3; qty++ {
		if _, err := items.Insert(&item{Name: "row", Qty: qty, At: time.Now()}); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}
	if eng.Version() != 1 {
		t.Errorf("version mismatch: got %d, want 1", eng.Version())
	}
	if err := eng.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Reopen at v2; the qty index must be backfilled over existing rows.
	eng, err = Open(Options{Path: dir, Schema: twoVersions()})
	if err != nil {
		t.Fatalf("Open v2 failed: %v", err)
	}
	defer eng.Close()

	if eng.Version() != 2 {
		t.Errorf("version mismatch: got %d, want 2", eng.Version())
	}

	items = NewTable[item](eng, "items")
	got, err := items.Where("qty").Equals(Int(2)).All()
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(got) != 1 || got[0].Qty != 2 {
		t.Errorf("backfilled index query mismatch: got %+v", got)
	}
}

func TestMigrationIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	for i := 0; i < 2; i++ {
		eng, err := Open(Options{Path: dir, Schema: twoVersions()})
		if err != nil {
			t.Fatalf("Open %d failed: %v", i, err)
		}
		if eng.Version() != 2 {
			t.Errorf("version mismatch on open %d: got %d", i, eng.Version())
		}
		if err := eng.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
	}
}

func TestDowngradeFailsWithErrSchemaAhead(t *testing.T) {
	dir := t.TempDir()

	eng, err := Open(Options{Path: dir, Schema: twoVersions()})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := eng.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if _, err := Open(Options{Path: dir, Schema: twoVersions()[:1]}); !errors.Is(err, ErrSchemaAhead) {
		t.Errorf("error mismatch: got %v, want ErrSchemaAhead", err)
	}
}

func TestIDsSurviveReopen(t *testing.T) {
	dir := t.TempDir()

	eng, err := Open(Options{Path: dir, Schema: testVersions()})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	items := NewTable[item](eng, "items")
	last, err := items.Insert(&item{Name: "first", At: time.Now()})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if err := eng.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	eng, err = Open(Options{Path: dir, Schema: testVersions()})
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer eng.Close()

	items = NewTable[item](eng, "items")
	next, err := items.Insert(&item{Name: "second", At: time.Now()})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if next <= last {
		t.Errorf("id reused across reopen: got %d after %d", next, last)
	}
}

func TestValidateSchemaRejectsBadDeclarations(t *testing.T) {
	decoder := func(row []byte) (map[string][]byte, error) { return nil, nil }

	cases := []struct {
		name     string
		versions []Version
	}{
		{"empty version", []Version{{}}},
		{"colon in table name", []Version{{Tables: []TableDef{{Name: "a:b", Index: decoder}}}}},
		{"missing decoder", []Version{{Tables: []TableDef{{Name: "ok"}}}}},
		{"colon in field name", []Version{{Tables: []TableDef{
			{Name: "ok", Indexed: []string{"a:b"}, Index: decoder}}}}},
		{"dropped indexed field", []Version{
			{Tables: []TableDef{{Name: "ok", Indexed: []string{"a", "b"}, Index: decoder}}},
			{Tables: []TableDef{{Name: "ok", Indexed: []string{"a"}, Index: decoder}}},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Open(Options{Schema: tc.versions, InMemory: true}); err == nil {
				t.Error("Open accepted an invalid schema")
			}
		})
	}
}
