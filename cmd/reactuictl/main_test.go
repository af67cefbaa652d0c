package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/vango-go/reactui/idgen"
	"github.com/vango-go/reactui/reconcile"
	"github.com/vango-go/reactui/vui"
)

func TestServeCmdDefaultFlags(t *testing.T) {
	cmd := serveCmd()

	port, err := cmd.Flags().GetInt("port")
	if err != nil || port != 8080 {
		t.Errorf("port = %v (err %v), want 8080", port, err)
	}
	host, err := cmd.Flags().GetString("host")
	if err != nil || host != "0.0.0.0" {
		t.Errorf("host = %v (err %v), want 0.0.0.0", host, err)
	}
	metricsPath, err := cmd.Flags().GetString("metrics-path")
	if err != nil || metricsPath != "/metrics" {
		t.Errorf("metrics-path = %v (err %v), want /metrics", metricsPath, err)
	}
	enableMetrics, err := cmd.Flags().GetBool("metrics")
	if err != nil || enableMetrics {
		t.Errorf("metrics = %v (err %v), want false", enableMetrics, err)
	}
}

func TestServeCmdParsesOverrides(t *testing.T) {
	cmd := serveCmd()
	if err := cmd.ParseFlags([]string{"--port=9090", "--host=127.0.0.1", "--metrics"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}

	port, _ := cmd.Flags().GetInt("port")
	if port != 9090 {
		t.Errorf("port = %d, want 9090", port)
	}
	enableMetrics, _ := cmd.Flags().GetBool("metrics")
	if !enableMetrics {
		t.Error("metrics flag should be true after --metrics")
	}
}

func TestVersionCmdRunsWithAndWithoutShort(t *testing.T) {
	cmd := versionCmd()
	cmd.Run(cmd, nil)

	if err := cmd.Flags().Set("short", "true"); err != nil {
		t.Fatalf("Set short: %v", err)
	}
	cmd.Run(cmd, nil)
}

func TestVersionCmdHasShortFlag(t *testing.T) {
	cmd := versionCmd()
	f := cmd.Flags().Lookup("short")
	if f == nil {
		t.Fatal("expected a --short flag")
	}
	if f.Shorthand != "s" {
		t.Errorf("shorthand = %q, want s", f.Shorthand)
	}
}

func TestDemoRootRendersCounter(t *testing.T) {
	el := demoRoot()
	node, ok := el.(vui.ComponentNode)
	if !ok {
		t.Fatalf("demoRoot() = %T, want vui.ComponentNode", el)
	}
	if node.ComponentID() == "" {
		t.Error("expected demoCounter to carry a stable component id")
	}

	ctx := vui.NewContext(nil, idgen.NewCounter("h"), func() {}, func(string, func(vui.Hook) vui.Hook) {})
	tree, _ := reconcile.Reconcile(ctx, el, nil)
	rc, ok := tree.(vui.ReconciledComponent)
	if !ok {
		t.Fatalf("Reconcile(demoRoot()) = %T, want vui.ReconciledComponent", tree)
	}
	div, ok := rc.Child.(vui.ReconciledElement)
	if !ok || len(div.Children) == 0 {
		t.Fatalf("component child = %#v, want a div with children", rc.Child)
	}
	p, ok := div.Children[0].(vui.ReconciledElement)
	if !ok || len(p.Children) != 1 {
		t.Fatalf("div.Children[0] = %#v, want a p with one child", div.Children[0])
	}
	if txt, ok := p.Children[0].(vui.ReconciledText); !ok || txt.Text != "count: 0" {
		t.Errorf("counter text = %#v, want \"count: 0\"", p.Children[0])
	}
}

func TestRootCommandWiresSubcommands(t *testing.T) {
	root := &cobra.Command{Use: "reactuictl"}
	root.AddCommand(serveCmd(), versionCmd())

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	if !names["serve"] || !names["version"] {
		t.Errorf("subcommands = %v, want serve and version", names)
	}
}

func TestBannerHelpersDoNotPanic(t *testing.T) {
	printBanner()
	success("ok %d", 1)
	info("note: %s", "hi")
}
