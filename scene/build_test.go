package scene

import (
	"errors"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/drawkit/drawing"
)

func unmarshalSpec(t *testing.T, doc string) *Spec {
	t.Helper()
	var spec Spec
	if err := yaml.Unmarshal([]byte(doc), &spec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return &spec
}

func TestBuildScene(t *testing.T) {
	spec := unmarshalSpec(t, `
name: test
containers:
  - kind: row
    width: 200
    height: 60
    x: 10
    y: 10
    fill: topright
    overflow: hidden
    padding: 2
    spacing: 3
    items:
      - { kind: square, size: 20, color: "#ff0000" }
      - { kind: ellipse, size: 16, color: "blue" }
  - kind: grid
    width: 150
    height: 150
    x: 0
    y: 90
    fill: left
    items:
      - { kind: square, size: 25 }
`)

	roots, err := Build(drawing.NewIDSource(), spec)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(roots) != 2 {
		t.Fatalf("built %d containers, want 2", len(roots))
	}

	row, ok := roots[0].(*drawing.Row)
	if !ok {
		t.Fatalf("first container is %T, want *drawing.Row", roots[0])
	}
	if row.Len() != 2 {
		t.Fatalf("row has %d members, want 2", row.Len())
	}
	if row.FillDirection() != drawing.FillRight {
		t.Fatalf("row fill = %v, want collapsed %v", row.FillDirection(), drawing.FillRight)
	}
	if row.Overflow() != drawing.OverflowHidden {
		t.Fatalf("row overflow = %v", row.Overflow())
	}
	if row.Padding() != 2 || row.Spacing() != 3 {
		t.Fatalf("row padding/spacing = %d/%d", row.Padding(), row.Spacing())
	}

	grid, ok := roots[1].(*drawing.Grid)
	if !ok {
		t.Fatalf("second container is %T, want *drawing.Grid", roots[1])
	}
	if grid.FillDirection() != drawing.FillTopLeft {
		t.Fatalf("grid fill = %v, want collapsed %v", grid.FillDirection(), drawing.FillTopLeft)
	}
	// Omitted padding/spacing fall back to the container defaults.
	if grid.Padding() != 5 || grid.Spacing() != 5 {
		t.Fatalf("grid padding/spacing = %d/%d, want 5/5", grid.Padding(), grid.Spacing())
	}
}

func TestBuildColorParsing(t *testing.T) {
	spec := unmarshalSpec(t, `
containers:
  - kind: column
    width: 50
    height: 100
    items:
      - { kind: square, size: 10, color: "#102030" }
`)

	roots, err := Build(drawing.NewIDSource(), spec)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	col := roots[0].(*drawing.Column)
	if col.Len() != 1 {
		t.Fatalf("column has %d members", col.Len())
	}

	clr, err := parseColor("#102030")
	if err != nil {
		t.Fatalf("parseColor: %v", err)
	}
	if clr.R != 0x10 || clr.G != 0x20 || clr.B != 0x30 || clr.A != 0xff {
		t.Fatalf("parsed color = %+v", clr)
	}
}

func TestBuildErrors(t *testing.T) {
	cases := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			"unknown_container_kind",
			"containers:\n  - kind: stack\n    width: 10\n    height: 10\n",
			drawing.ErrInvalidValue,
		},
		{
			"unknown_fill",
			"containers:\n  - kind: row\n    width: 10\n    height: 10\n    fill: sideways\n",
			drawing.ErrInvalidValue,
		},
		{
			"unknown_overflow",
			"containers:\n  - kind: row\n    width: 10\n    height: 10\n    overflow: clip\n",
			drawing.ErrInvalidValue,
		},
		{
			"unknown_item_kind",
			"containers:\n  - kind: row\n    width: 10\n    height: 10\n    items:\n      - { kind: triangle, size: 5 }\n",
			drawing.ErrInvalidShape,
		},
		{
			"bad_color",
			"containers:\n  - kind: row\n    width: 10\n    height: 10\n    items:\n      - { kind: square, size: 5, color: \"nope!\" }\n",
			drawing.ErrInvalidValue,
		},
		{
			"zero_size_container",
			"containers:\n  - kind: grid\n    width: 0\n    height: 10\n",
			drawing.ErrInvalidValue,
		},
		{
			"negative_padding",
			"containers:\n  - kind: row\n    width: 10\n    height: 10\n    padding: -1\n",
			drawing.ErrInvalidValue,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Build(drawing.NewIDSource(), unmarshalSpec(t, c.doc))
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("Build error = %v, want %v", err, c.wantErr)
			}
		})
	}
}

func TestLoadEmbeddedDemo(t *testing.T) {
	for _, name := range []string{"demo", "demo.yaml", "scenes/demo.yaml"} {
		t.Run(name, func(t *testing.T) {
			spec, err := LoadScene(name)
			if err != nil {
				t.Fatalf("LoadScene(%q): %v", name, err)
			}
			if len(spec.Containers) == 0 {
				t.Fatalf("demo scene has no containers")
			}
			if _, err := Build(drawing.NewIDSource(), spec); err != nil {
				t.Fatalf("Build demo scene: %v", err)
			}
		})
	}
}

func TestLoadMissingScene(t *testing.T) {
	if _, err := LoadScene("does-not-exist"); err == nil {
		t.Fatalf("expected error for missing scene")
	}
}
