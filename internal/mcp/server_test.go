// ABOUTME: Construction smoke test for the MCP server.
package mcp

import (
	"testing"

	"github.com/harperreed/vael/internal/schema"
	"github.com/harperreed/vael/internal/seed"
	"github.com/harperreed/vael/internal/store"
)

func TestNewServerWiresAllServices(t *testing.T) {
	eng, err := store.Open(store.Options{Schema: schema.Versions(), InMemory: true})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { eng.Close() })
	if _, err := seed.EnsureCatalog(eng); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	srv, err := NewServer(eng)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	if srv.mcpServer == nil {
		t.Fatal("mcp server not constructed")
	}
	if srv.training == nil || srv.life == nil || srv.journal == nil || srv.body == nil || srv.fuel == nil {
		t.Error("feature service missing")
	}
}
