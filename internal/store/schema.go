// ABOUTME: Schema version declarations for the indexed-table engine.
// ABOUTME: Versions are append-only; each adds tables or widens index sets.
package store

import (
	"fmt"
	"strings"
)

// TableDef declares one table within a schema version: its name, the
// fields that get secondary indexes, and a decoder used to extract index
// values from stored rows when a later version adds indexes to a table
// that already holds data.
type TableDef struct {
	Name    string
	Indexed []string
	Index   func(row []byte) (map[string][]byte, error)
}

// Version is one step in the schema history. Opening a database applies
// every version after the persisted one, in order.
type Version struct {
	Tables []TableDef
}

// validateSchema enforces the append-only contract: table names are
// well-formed, and a re-declared table may only widen its index set.
func validateSchema(versions []Version) error {
	seen := map[string]map[string]bool{}
	for vi, v := range versions {
		if len(v.Tables) == 0 {
			return fmt.Errorf("schema version %d declares no tables", vi+1)
		}
		for _, def := range v.Tables {
			if def.Name == "" || strings.ContainsAny(def.Name, ":\x00") {
				return fmt.Errorf("schema version %d: invalid table name %q", vi+1, def.Name)
			}
			if def.Index == nil {
				return fmt.Errorf("schema version %d: table %s has no index decoder", vi+1, def.Name)
			}
			for _, f := range def.Indexed {
				if f == "" || strings.ContainsAny(f, ":\x00") {
					return fmt.Errorf("schema version %d: table %s has invalid field name %q", vi+1, def.Name, f)
				}
			}
			prior, exists := seen[def.Name]
			if exists {
				for f := range prior {
					if !containsField(def.Indexed, f) {
						return fmt.Errorf("schema version %d: table %s drops indexed field %q", vi+1, def.Name, f)
					}
				}
			}
			fields := map[string]bool{}
			for _, f := range def.Indexed {
				fields[f] = true
			}
			seen[def.Name] = fields
		}
	}
	return nil
}

func containsField(fields []string, name string) bool {
	for _, f := range fields {
		if f == name {
			return true
		}
	}
	return false
}
