package vui

import "testing"

func TestElLiftsKeyAttribute(t *testing.T) {
	n := El("li", []Attribute{Attr("class", "row"), KeyAttr("row-1")}, Text("hi"))

	if n.Key != "row-1" {
		t.Errorf("Key = %q, want row-1", n.Key)
	}
	if len(n.Attributes) != 1 {
		t.Fatalf("expected KeyAttribute stripped from Attributes, got %d entries", len(n.Attributes))
	}
	if n.Attributes[0] != (Attribute)(StaticAttribute{Name: "class", Value: "row"}) {
		t.Errorf("unexpected remaining attribute: %#v", n.Attributes[0])
	}
}

func TestKeyNodeOption(t *testing.T) {
	n := El("div", nil, Text("x"))
	n = applyKey(n, Key("k1"))
	if n.Key != "k1" {
		t.Errorf("Key = %q, want k1", n.Key)
	}
}

func applyKey(n ElementNode, opt NodeOption) ElementNode {
	opt.applyElement(&n)
	return n
}

func TestComponentAssignsStableComponentID(t *testing.T) {
	type props struct{ N int }
	Counter := Component(func(ctx *Context, p props) (*Context, []Element) {
		return ctx, nil
	})

	a := Counter(props{N: 1})
	b := Counter(props{N: 2})

	if a.ComponentID() == "" {
		t.Fatal("expected non-empty component id")
	}
	if a.ComponentID() != b.ComponentID() {
		t.Errorf("two nodes from the same Component constructor should share an id: %s != %s",
			a.ComponentID(), b.ComponentID())
	}
}

func TestComponentDistinctConstructorsGetDistinctIDs(t *testing.T) {
	type props struct{}
	A := Component(func(ctx *Context, p props) (*Context, []Element) { return ctx, nil })
	B := Component(func(ctx *Context, p props) (*Context, []Element) { return ctx, nil })

	if A(props{}).ComponentID() == B(props{}).ComponentID() {
		t.Error("distinct Component constructors must not share an id")
	}
}

func TestClasses(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{"empty", nil, ""},
		{"single", []string{"a"}, "a"},
		{"multiple", []string{"a", "b"}, "a b"},
		{"drops empty", []string{"a", "", "b"}, "a b"},
		{"all empty", []string{"", ""}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classes(tt.parts...); got != tt.want {
				t.Errorf("Classes(%v) = %q, want %q", tt.parts, got, tt.want)
			}
		})
	}
}

func TestClassIf(t *testing.T) {
	if got := ClassIf("active", true); got != "active" {
		t.Errorf("ClassIf(true) = %q, want active", got)
	}
	if got := ClassIf("active", false); got != "" {
		t.Errorf("ClassIf(false) = %q, want empty", got)
	}
}

func TestFragmentAndProviderKey(t *testing.T) {
	f := Fragment([]Element{Text("a")}, Key("f1"))
	if f.Key != "f1" {
		t.Errorf("Fragment Key = %q, want f1", f.Key)
	}

	p := Provider("theme", "dark", Text("child"))
	if p.ProviderKey != "theme" || p.Value != "dark" {
		t.Errorf("Provider = %+v, want key=theme value=dark", p)
	}
}
