package htmljson

import (
	"reflect"
	"testing"

	"github.com/vango-go/reactui/patch"
	"github.com/vango-go/reactui/vui"
	"github.com/vango-go/reactui/wire"
)

func TestRenderText(t *testing.T) {
	if got := Render(vui.ReconciledText{Text: "hi"}); got != "hi" {
		t.Errorf("Render(text) = %v, want hi", got)
	}
}

func TestRenderNil(t *testing.T) {
	if got := Render(nil); got != nil {
		t.Errorf("Render(nil) = %v, want nil", got)
	}
}

func TestRenderElementWithAttrsAndChildren(t *testing.T) {
	el := vui.ReconciledElement{
		Tag: "div",
		Key: "k1",
		Attrs: []vui.ReconciledAttribute{
			vui.ReconciledStaticAttribute{Name: "class", Value: "a"},
			vui.ReconciledEventHandler{Kind: "click", ID: "h1"},
			vui.ReconciledClientHook{Name: "tooltip", ID: "c1"},
		},
		Children: []vui.ReconciledNode{vui.ReconciledText{Text: "x"}},
	}

	got := Render(el).(map[string]any)
	want := map[string]any{
		wire.TypeKey: "div",
		wire.KeyAttr: "k1",
		"class":      "a",
		"on-click":   "h1",
		"hook":       "tooltip",
		"hook-id":    "c1",
		"0":          "x",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Render(el) = %#v, want %#v", got, want)
	}
}

func TestRenderVoidElementOmitsChildren(t *testing.T) {
	el := vui.ReconciledElement{
		Tag:      "img",
		Attrs:    []vui.ReconciledAttribute{vui.ReconciledStaticAttribute{Name: "src", Value: "x.png"}},
		Children: []vui.ReconciledNode{vui.ReconciledText{Text: "should not appear"}},
	}

	got := Render(el).(map[string]any)
	if _, ok := got["0"]; ok {
		t.Error("void element must not emit indexed child fields")
	}
	if got["src"] != "x.png" {
		t.Errorf("src = %v, want x.png", got["src"])
	}
}

func TestIsVoidElement(t *testing.T) {
	if !IsVoidElement("br") {
		t.Error("br should be a void element")
	}
	if IsVoidElement("div") {
		t.Error("div should not be a void element")
	}
}

func TestRenderFragment(t *testing.T) {
	f := vui.ReconciledFragment{
		Key:      "f1",
		Children: []vui.ReconciledNode{vui.ReconciledText{Text: "a"}, vui.ReconciledText{Text: "b"}},
	}
	got := Render(f).(map[string]any)
	want := map[string]any{wire.TypeKey: "fragment", wire.KeyAttr: "f1", "0": "a", "1": "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Render(fragment) = %#v, want %#v", got, want)
	}
}

func TestRenderComponentDescendsIntoChild(t *testing.T) {
	c := vui.ReconciledComponent{
		ComponentID: "c1",
		Child:       vui.ReconciledText{Text: "inner"},
	}
	got := Render(c).(map[string]any)
	want := map[string]any{wire.TypeKey: wire.ComponentType, "0": "inner"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Render(component) = %#v, want %#v", got, want)
	}
}

func TestRenderPatchReplace(t *testing.T) {
	p := patch.Patch{Kind: patch.Replace, Node: vui.ReconciledText{Text: "new"}}
	got := RenderPatch(p)
	if got["kind"] != patch.Replace.String() {
		t.Errorf("kind = %v, want %v", got["kind"], patch.Replace.String())
	}
	if got["node"] != "new" {
		t.Errorf("node = %v, want new", got["node"])
	}
}

func TestRenderPatchUpdateWithAttrsAndChildren(t *testing.T) {
	sub := patch.Create(vui.ReconciledText{Text: "a"}, vui.ReconciledText{Text: "b"})
	p := patch.Patch{
		Kind: patch.Update,
		Attrs: []patch.AttrPatch{
			{Op: patch.AttrSet, Slot: "static:class", Attr: vui.ReconciledStaticAttribute{Name: "class", Value: "x"}},
			{Op: patch.AttrRemove, Slot: "static:title"},
		},
		Children: []patch.ChildPatch{
			{Op: patch.ChildKeep, Index: 0, Sub: &sub},
		},
	}

	got := RenderPatch(p)
	if got["kind"] != patch.Update.String() {
		t.Fatalf("kind = %v, want %v", got["kind"], patch.Update.String())
	}

	attrs, ok := got["attrs"].([]map[string]any)
	if !ok || len(attrs) != 2 {
		t.Fatalf("attrs = %#v, want 2 entries", got["attrs"])
	}
	if attrs[0]["op"] != patch.AttrSet.String() || attrs[0]["value"] == nil {
		t.Errorf("attrs[0] = %#v, want AttrSet with a value", attrs[0])
	}
	if attrs[1]["op"] != patch.AttrRemove.String() {
		t.Errorf("attrs[1] op = %v, want %v", attrs[1]["op"], patch.AttrRemove.String())
	}

	children, ok := got["children"].([]map[string]any)
	if !ok || len(children) != 1 {
		t.Fatalf("children = %#v, want 1 entry", got["children"])
	}
	if children[0]["patch"] == nil {
		t.Error("expected a nested patch under a ChildKeep entry's Sub")
	}
}

func TestRenderPatchMoveIncludesFrom(t *testing.T) {
	p := patch.Patch{
		Kind:     patch.Update,
		Children: []patch.ChildPatch{{Op: patch.ChildMove, Index: 2, From: 0}},
	}
	got := RenderPatch(p)
	children := got["children"].([]map[string]any)
	if children[0]["from"] != 0 {
		t.Errorf("from = %v, want 0", children[0]["from"])
	}
}

func TestRenderPatchInsertIncludesNode(t *testing.T) {
	p := patch.Patch{
		Kind: patch.Update,
		Children: []patch.ChildPatch{
			{Op: patch.ChildInsert, Index: 1, Node: vui.ReconciledText{Text: "new"}},
		},
	}
	got := RenderPatch(p)
	children := got["children"].([]map[string]any)
	if children[0]["node"] != "new" {
		t.Errorf("node = %v, want new", children[0]["node"])
	}
}
