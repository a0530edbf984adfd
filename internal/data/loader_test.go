package data

import (
	"os"
	"testing"
)

// All registries are loaded once for the whole package.
func TestMain(m *testing.M) {
	if err := LoadAll(); err != nil {
		panic("loading static tables: " + err.Error())
	}
	os.Exit(m.Run())
}

func TestLoadAllIdempotent(t *testing.T) {
	t.Parallel()

	before := len(LocationTable)
	if err := LoadAll(); err != nil {
		t.Fatalf("second LoadAll() = %v; want nil", err)
	}
	if len(LocationTable) != before {
		t.Errorf("LocationTable size changed across LoadAll calls: %d != %d", len(LocationTable), before)
	}
}
