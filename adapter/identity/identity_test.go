package identity

import (
	"reflect"
	"testing"

	"github.com/vango-go/reactui/vui"
)

func TestRenderReturnsInputUnchanged(t *testing.T) {
	tree := vui.ReconciledElement{
		Tag:      "div",
		Children: []vui.ReconciledNode{vui.ReconciledText{Text: "x"}},
	}
	if got := Render(tree); !reflect.DeepEqual(got, vui.ReconciledNode(tree)) {
		t.Errorf("Render(tree) = %#v, want unchanged input", got)
	}
}

func TestRenderReturnsSameTextValue(t *testing.T) {
	tree := vui.ReconciledText{Text: "hi"}
	if got := Render(tree); got != vui.ReconciledNode(tree) {
		t.Errorf("Render(tree) = %#v, want %#v", got, tree)
	}
}

func TestRenderNil(t *testing.T) {
	if got := Render(nil); got != nil {
		t.Errorf("Render(nil) = %#v, want nil", got)
	}
}
