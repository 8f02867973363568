package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOutputName(t *testing.T) {
	cases := map[[2]string]string{
		{"basic", "svg"}:  "basic.svg",
		{"iris", "png"}:   "iris.png",
		{"iris", "jpeg"}:  "iris.jpg",
		{"multi", "tiff"}: "multi.tif",
	}
	for in, want := range cases {
		if got := outputName(in[0], in[1]); got != want {
			t.Fatalf("outputName(%q, %q) = %q, want %q", in[0], in[1], got, want)
		}
	}
}

func TestAppResolution(t *testing.T) {
	a := &app{}
	if got := a.outDir(""); got != "figures" {
		t.Fatalf("default out dir = %q", got)
	}
	if got := a.outDir("/x"); got != "/x" {
		t.Fatalf("flag out dir = %q", got)
	}
	a.cfg.OutDir = "/cfg"
	if got := a.outDir(""); got != "/cfg" {
		t.Fatalf("config out dir = %q", got)
	}
	if got := a.format(""); got != "svg" {
		t.Fatalf("default format = %q", got)
	}
	a.cfg.Format = "png"
	if got := a.format(""); got != "png" {
		t.Fatalf("config format = %q", got)
	}
	if got := a.format("pdf"); got != "pdf" {
		t.Fatalf("flag format = %q", got)
	}
	a.cfg.DPI = 300
	if got := a.dpi(0); got != 300 {
		t.Fatalf("config dpi = %v", got)
	}
	if got := a.dpi(150); got != 150 {
		t.Fatalf("flag dpi = %v", got)
	}
}

func TestListCommand(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"list"})
	if err := root.Execute(); err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{"multipanel", "nature_single", "iris"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("list output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	root := newRootCmd()
	root.SetArgs([]string{"render", "basic", "--out", dir, "--log-level", "error"})
	if err := root.Execute(); err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "basic.svg")); err != nil {
		t.Fatalf("output missing: %v", err)
	}
}

func TestRenderCommandWidthsExpansion(t *testing.T) {
	dir := t.TempDir()
	root := newRootCmd()
	root.SetArgs([]string{"render", "widths", "--out", dir, "--log-level", "error"})
	if err := root.Execute(); err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, name := range []string{"nature_single", "elsevier_single", "elsevier_full"} {
		p := filepath.Join(dir, "journal_width_"+name+".svg")
		if _, err := os.Stat(p); err != nil {
			t.Fatalf("missing %s: %v", p, err)
		}
	}
}

func TestRenderCommandUnknownFigure(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"render", "nope", "--out", t.TempDir(), "--log-level", "error"})
	if err := root.Execute(); err == nil {
		t.Fatalf("expected error for unknown figure")
	}
}
