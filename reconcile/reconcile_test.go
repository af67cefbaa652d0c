package reconcile

import (
	"testing"

	"github.com/vango-go/reactui/idgen"
	"github.com/vango-go/reactui/vui"
)

func newTestContext() *vui.Context {
	return vui.NewContext(nil, idgen.NewCounter("h"), func() {}, func(string, func(vui.Hook) vui.Hook) {})
}

func TestReconcileTextReplacesOnAnyChange(t *testing.T) {
	ctx := newTestContext()
	next, _ := Reconcile(ctx, vui.Text("hello"), nil)

	rt, ok := next.(vui.ReconciledText)
	if !ok || rt.Text != "hello" {
		t.Fatalf("Reconcile(Text) = %#v, want ReconciledText{hello}", next)
	}

	changed, _ := Reconcile(ctx, vui.Text("world"), next)
	if rt, ok := changed.(vui.ReconciledText); !ok || rt.Text != "world" {
		t.Errorf("Reconcile(Text) after change = %#v, want ReconciledText{world}", changed)
	}
}

func TestReconcileElementPreservesChildrenAcrossRenders(t *testing.T) {
	ctx := newTestContext()
	el := vui.El("div", []vui.Attribute{vui.Attr("class", "a")}, vui.Text("x"))
	first, _ := Reconcile(ctx, el, nil)

	el2 := vui.El("div", []vui.Attribute{vui.Attr("class", "b")}, vui.Text("y"))
	second, _ := Reconcile(ctx, el2, first)

	re, ok := second.(vui.ReconciledElement)
	if !ok {
		t.Fatalf("expected ReconciledElement, got %T", second)
	}
	if re.Tag != "div" {
		t.Errorf("Tag = %q, want div", re.Tag)
	}
	if len(re.Attrs) != 1 || re.Attrs[0].(vui.ReconciledStaticAttribute).Value != "b" {
		t.Errorf("Attrs = %+v, want class=b", re.Attrs)
	}
	if len(re.Children) != 1 {
		t.Fatalf("Children = %+v, want one text child", re.Children)
	}
	if txt, ok := re.Children[0].(vui.ReconciledText); !ok || txt.Text != "y" {
		t.Errorf("Children[0] = %#v, want ReconciledText{y}", re.Children[0])
	}
}

func TestReconcileMismatchedVariantReplaces(t *testing.T) {
	ctx := newTestContext()
	first, _ := Reconcile(ctx, vui.El("div", nil), nil)
	second, _ := Reconcile(ctx, vui.Text("now text"), first)

	if _, ok := second.(vui.ReconciledText); !ok {
		t.Fatalf("expected ReconciledText after variant change, got %T", second)
	}
}

func TestReconcileComponentPreservesHookStateAcrossRenders(t *testing.T) {
	ctx := newTestContext()
	var seenValues []int

	Counter := vui.Component(func(ctx *vui.Context, _ struct{}) (*vui.Context, []vui.Element) {
		v, _ := vui.State(ctx, 0)
		seenValues = append(seenValues, v)
		return ctx, []vui.Element{vui.Text("x")}
	})

	root := Counter(struct{}{})
	first, _ := Reconcile(ctx, root, nil)

	// Simulate the runtime applying a setter's UpdateHookState message
	// between renders, then reconcile again against the mutated tree.
	rc := first.(vui.ReconciledComponent)
	st := rc.Hooks[0].(vui.StateHook)
	rc.Hooks[0] = vui.StateHook{ID: st.ID, Value: st.Value.(int) + 1}

	Reconcile(ctx, root, rc)

	if len(seenValues) != 2 {
		t.Fatalf("component rendered %d times, want 2", len(seenValues))
	}
	if seenValues[0] != 0 || seenValues[1] != 1 {
		t.Errorf("seenValues = %v, want [0 1]", seenValues)
	}
}

func TestReconcileFragmentKeyMismatchReplaces(t *testing.T) {
	ctx := newTestContext()
	first, _ := Reconcile(ctx, vui.Fragment([]vui.Element{vui.Text("a")}, vui.Key("f1")), nil)

	rf, ok := first.(vui.ReconciledFragment)
	if !ok || rf.Key != "f1" {
		t.Fatalf("first = %#v, want ReconciledFragment{Key: f1}", first)
	}

	second, _ := Reconcile(ctx, vui.Fragment([]vui.Element{vui.Text("b")}, vui.Key("f2")), first)
	rf2 := second.(vui.ReconciledFragment)
	if rf2.Key != "f2" {
		t.Errorf("Key = %q, want f2", rf2.Key)
	}
}

func TestReconcileDisposesHooksOfRemovedComponent(t *testing.T) {
	ctx := newTestContext()
	var cleaned bool

	Leaf := vui.Component(func(ctx *vui.Context, _ struct{}) (*vui.Context, []vui.Element) {
		vui.Effect(ctx, func() func() {
			return func() { cleaned = true }
		}, vui.OnMount())
		return ctx, []vui.Element{vui.Text("leaf")}
	})

	root := vui.El("div", nil, Leaf(struct{}{}, vui.Key("leaf")))
	first, _ := Reconcile(ctx, root, nil)

	rootWithoutLeaf := vui.El("div", nil)
	_, disposed := Reconcile(ctx, rootWithoutLeaf, first)

	if !cleaned {
		t.Error("expected removed component's effect cleanup to run")
	}
	if len(disposed) == 0 {
		t.Error("expected Reconcile to report the disposed hook")
	}
}

func TestReconcileRunsPostReconciliationEffectPass(t *testing.T) {
	ctx := newTestContext()
	var runs int

	Widget := vui.Component(func(ctx *vui.Context, _ struct{}) (*vui.Context, []vui.Element) {
		vui.Effect(ctx, func() func() {
			runs++
			return nil
		}, vui.OnMount())
		return ctx, []vui.Element{vui.Text("x")}
	})

	root := Widget(struct{}{})
	first, _ := Reconcile(ctx, root, nil)
	if runs != 1 {
		t.Fatalf("runs after first render = %d, want 1", runs)
	}

	Reconcile(ctx, root, first)
	if runs != 1 {
		t.Errorf("runs after second render = %d, want still 1 (OnMount fires once)", runs)
	}
}

func TestReconcileKeyedChildrenPreserveIdentityAcrossReorder(t *testing.T) {
	ctx := newTestContext()

	list := func(order []string) vui.Element {
		children := make([]vui.Element, len(order))
		for i, k := range order {
			children[i] = vui.El("li", []vui.Attribute{vui.KeyAttr(k)}, vui.Text(k))
		}
		return vui.El("ul", nil, children...)
	}

	first, _ := Reconcile(ctx, list([]string{"a", "b", "c"}), nil)
	second, _ := Reconcile(ctx, list([]string{"c", "a", "b"}), first)

	re := second.(vui.ReconciledElement)
	if len(re.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(re.Children))
	}
	gotOrder := make([]string, 3)
	for i, c := range re.Children {
		gotOrder[i] = c.(vui.ReconciledElement).Key
	}
	want := []string{"c", "a", "b"}
	for i := range want {
		if gotOrder[i] != want[i] {
			t.Errorf("child[%d] key = %q, want %q", i, gotOrder[i], want[i])
		}
	}
}
