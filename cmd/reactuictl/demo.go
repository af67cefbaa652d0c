package main

import (
	"fmt"

	"github.com/vango-go/reactui/vui"
)

// demoCounter is a tiny root component used by `serve` when no other
// entry point is configured: a button that increments a counter on
// click, reconciled and pushed to whatever client connects.
var demoCounter = vui.Component(func(ctx *vui.Context, _ struct{}) (*vui.Context, []vui.Element) {
	count, setCount := vui.State(ctx, 0)

	increment := vui.Handler(ctx, func(any) {
		setCount(count + 1)
	})

	return ctx, []vui.Element{
		vui.El("div", []vui.Attribute{vui.Attr("class", "counter")},
			vui.El("p", nil, vui.Text(fmt.Sprintf("count: %d", count))),
			vui.El("button", []vui.Attribute{vui.On("click", increment)},
				vui.Text("increment"),
			),
		),
	}
})

func demoRoot() vui.Element {
	return demoCounter(struct{}{})
}
