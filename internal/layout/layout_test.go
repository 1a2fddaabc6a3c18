package layout

import "testing"

func testManifest() Manifest {
	return Manifest{
		ID:        "test-row",
		Name:      "Test Row",
		KeyWidth:  50,
		KeyHeight: 50,
		Rows: []Row{
			{Keys: []Key{{ID: "q"}, {ID: "w"}, {ID: "e"}}},
			{Offset: 25, Keys: []Key{{ID: "a"}, {ID: "s"}}},
		},
	}
}

func TestManifestBuild_ResolvesKeyRects(t *testing.T) {
	layout, err := testManifest().Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if len(layout.Keys) != 5 {
		t.Fatalf("key count = %d, want 5", len(layout.Keys))
	}

	w, ok := layout.Keys["w"]
	if !ok {
		t.Fatal("missing key w")
	}
	if w.Left != 50 || w.Top != 0 || w.Right != 100 || w.Bottom != 50 {
		t.Errorf("w rect = %+v, want {50 0 100 50}", w)
	}

	// Second row is staggered by the offset and one key height down
	a := layout.Keys["a"]
	if a.Left != 25 || a.Top != 50 {
		t.Errorf("a rect = %+v, want left=25 top=50", a)
	}
}

func TestManifestBuild_KeyWidthMultiplier(t *testing.T) {
	m := Manifest{
		Name:      "wide",
		KeyWidth:  40,
		KeyHeight: 40,
		Rows: []Row{
			{Keys: []Key{{ID: "a", Width: 1.5}, {ID: "b"}}},
		},
	}

	layout, err := m.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	a := layout.Keys["a"]
	if a.Right-a.Left != 60 {
		t.Errorf("a width = %f, want 60", a.Right-a.Left)
	}

	// b starts where the widened a ends
	b := layout.Keys["b"]
	if b.Left != 60 {
		t.Errorf("b left = %f, want 60", b.Left)
	}
}

func TestManifestBuild_Origin(t *testing.T) {
	m := testManifest()
	m.OriginX = 10
	m.OriginY = 20

	layout, err := m.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	q := layout.Keys["q"]
	if q.Left != 10 || q.Top != 20 {
		t.Errorf("q rect = %+v, want left=10 top=20", q)
	}
}

func TestManifestBuild_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Manifest)
	}{
		{"missing name", func(m *Manifest) { m.Name = "" }},
		{"zero key width", func(m *Manifest) { m.KeyWidth = 0 }},
		{"zero key height", func(m *Manifest) { m.KeyHeight = 0 }},
		{"no rows", func(m *Manifest) { m.Rows = nil }},
		{"empty key id", func(m *Manifest) { m.Rows[0].Keys[0].ID = "" }},
		{"duplicate key", func(m *Manifest) { m.Rows[1].Keys[0].ID = "q" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testManifest()
			tt.mutate(&m)
			if _, err := m.Build(); err == nil {
				t.Error("expected Build() to fail")
			}
		})
	}
}

func TestManifestBuild_DefaultsIDToName(t *testing.T) {
	m := testManifest()
	m.ID = ""

	layout, err := m.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if layout.ID != "Test Row" {
		t.Errorf("ID = %q, want the layout name", layout.ID)
	}
}
