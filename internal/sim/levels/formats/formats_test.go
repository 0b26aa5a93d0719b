package formats

import (
	"strings"
	"testing"
)

const sampleYAML = `
id: "001"
name: First Steps
chips: 1
map:
  rows:
    - "#####"
    - "#...#"
    - "#####"
entities:
  - {kind: Player, pos: [1, 1]}
  - {kind: Bug, pos: [3, 1], face: left}
connections:
  - {src: [1, 1], dest: [3, 1]}
`

const sampleJSON = `{
  "id": "002",
  "name": "Legend",
  "map": {"width": 2, "height": 1, "data": [0, 1], "legend": ["Floor", "Exit"]},
  "entities": [{"kind": "Player", "pos": [0, 0]}]
}`

func TestParseYAML(t *testing.T) {
	l, err := Parse([]byte(sampleYAML), ".yaml")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if l.ID != "001" || l.Name != "First Steps" || l.Chips != 1 {
		t.Errorf("header = %q %q %d", l.ID, l.Name, l.Chips)
	}
	if len(l.Map.Rows) != 3 {
		t.Errorf("rows = %d, expected 3", len(l.Map.Rows))
	}
	if len(l.Entities) != 2 || l.Entities[1].Face != "left" || l.Entities[1].Pos != [2]int{3, 1} {
		t.Errorf("entities = %+v", l.Entities)
	}
	if len(l.Connections) != 1 || l.Connections[0].Dest != [2]int{3, 1} {
		t.Errorf("connections = %+v", l.Connections)
	}
}

func TestParseJSON(t *testing.T) {
	l, err := Parse([]byte(sampleJSON), ".JSON")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if l.Map.Width != 2 || len(l.Map.Data) != 2 || l.Map.Legend[1] != "Exit" {
		t.Errorf("map = %+v", l.Map)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]byte(sampleYAML), ".txt"); err == nil {
		t.Error("unsupported extension should fail")
	}
	_, err := Parse([]byte("{not json"), ".json")
	if err == nil || !strings.Contains(err.Error(), "json unmarshal") {
		t.Errorf("Parse() error = %v, expected a json unmarshal error", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	l, err := Parse([]byte(sampleJSON), ".json")
	if err != nil {
		t.Fatal(err)
	}
	for _, ext := range []string{".yaml", ".json"} {
		data, err := Encode(l, ext)
		if err != nil {
			t.Fatalf("Encode(%s) error = %v", ext, err)
		}
		back, err := Parse(data, ext)
		if err != nil {
			t.Fatalf("Parse(%s) error = %v", ext, err)
		}
		if back.ID != l.ID || back.Map.Width != l.Map.Width || len(back.Entities) != 1 {
			t.Errorf("%s round trip changed the level: %+v", ext, back)
		}
	}
}

func TestFormatExtensions(t *testing.T) {
	exts := strings.Join(FormatExtensions(), " ")
	for _, want := range []string{".json", ".yaml", ".yml"} {
		if !strings.Contains(exts, want) {
			t.Errorf("FormatExtensions() = %q, missing %s", exts, want)
		}
	}
}
