package widgets

import (
	"encoding/json"
	stderrors "errors"
	"reflect"
	"testing"
)

func TestGravityCenterNames(t *testing.T) {
	got := GravityCenter.Names()
	want := []string{"center_horizontal", "center_vertical"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GravityCenter.Names() = %v, want %v", got, want)
	}
	if !GravityCenter.Has(GravityCenterHorizontal) || !GravityCenter.Has(GravityCenterVertical) {
		t.Error("GravityCenter should include both center flags")
	}
	if GravityCenter.Has(GravityTop) {
		t.Error("GravityCenter should not include top")
	}
	if Gravity(0).String() != "none" {
		t.Errorf("zero gravity = %q", Gravity(0).String())
	}
}

func TestDimensionString(t *testing.T) {
	tests := []struct {
		d    Dimension
		want string
	}{
		{Wrap, "wrap_content"},
		{Match, "match_parent"},
		{Exact(48), "48"},
		{Exact(12.5), "12.5"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestEncodeColumn(t *testing.T) {
	tree := Column(GravityCenter, Child{Widget: Button{Label: "Button!"}, Params: WrapContent()})

	data, err := json.Marshal(Encode(tree))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"axis":"vertical","children":[{"height":"wrap_content","widget":{"label":"Button!","type":"button"},"width":"wrap_content"}],"gravity":["center_horizontal","center_vertical"],"type":"flex"}`
	if string(data) != want {
		t.Errorf("encoded =\n%s\nwant\n%s", data, want)
	}
}

func TestDecodeAfterJSON(t *testing.T) {
	tree := Row(GravityTop|GravityRight,
		Child{Widget: Button{Label: "a"}, Params: LayoutParams{Width: Match, Height: Exact(40)}},
		Child{Widget: Column(GravityCenter), Params: WrapContent()},
	)
	data, err := json.Marshal(Encode(tree))
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}

	got, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	f, ok := got.(Flex)
	if !ok {
		t.Fatalf("decoded %T, want Flex", got)
	}
	if f.Axis != AxisHorizontal || f.Gravity != GravityTop|GravityRight {
		t.Errorf("flex = %v %v", f.Axis, f.Gravity)
	}
	if len(f.Children) != 2 {
		t.Fatalf("children = %d", len(f.Children))
	}
	if f.Children[0].Params.Height != Exact(40) || f.Children[0].Params.Width != Match {
		t.Errorf("params = %+v", f.Children[0].Params)
	}
	if b, _ := f.Children[0].Widget.(Button); b.Label != "a" {
		t.Errorf("child 0 = %#v", f.Children[0].Widget)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]any
	}{
		{"unknown kind", map[string]any{"type": "slider"}},
		{"bad axis", map[string]any{"type": "flex", "axis": "diagonal"}},
		{"bad gravity", map[string]any{"type": "flex", "gravity": []any{"middle"}}},
		{"bad child", map[string]any{"type": "flex", "children": []any{"x"}}},
		{"bad dimension", map[string]any{"type": "flex", "children": []any{
			map[string]any{"widget": map[string]any{"type": "button"}, "width": "huge"},
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.in); err == nil {
				t.Error("expected an error")
			}
		})
	}

	_, err := Decode(map[string]any{"type": "slider"})
	if !stderrors.Is(err, ErrUnknownKind) {
		t.Errorf("err = %v, want ErrUnknownKind", err)
	}
}

func TestEncodeTappable(t *testing.T) {
	if _, ok := Encode(Button{Label: "x"})["tappable"]; ok {
		t.Error("a button without a handler should not be tappable")
	}
	if Encode(ButtonOf("x", func() {}))["tappable"] != true {
		t.Error("a button with a handler should be tappable")
	}
}

func TestFindButtons(t *testing.T) {
	tree := Column(0,
		Child{Widget: Button{Label: "one"}},
		Child{Widget: Row(0, Child{Widget: Button{Label: "two"}})},
	)
	buttons := FindButtons(tree)
	if len(buttons) != 2 || buttons[0].Label != "one" || buttons[1].Label != "two" {
		t.Errorf("FindButtons = %+v", buttons)
	}

	var depths []int
	Walk(tree, func(_ Widget, depth int) bool {
		depths = append(depths, depth)
		return true
	})
	if !reflect.DeepEqual(depths, []int{0, 1, 1, 2}) {
		t.Errorf("depths = %v", depths)
	}
}
