package document

import (
	"strings"
	"testing"

	"github.com/sdom-dev/sdom/internal/config"
)

// headScripts returns the text or src of every script in the head, in order,
// after a Build.
func headScripts(d *Document) []string {
	var out []string
	for _, c := range d.Head().Children() {
		if c.Tag != "script" {
			continue
		}
		if src, ok := c.Attr("src"); ok {
			out = append(out, "src:"+src)
			continue
		}
		out = append(out, c.TextContent())
	}
	return out
}

func TestAutoreloadScript(t *testing.T) {
	resetConfig(t)
	d := newTestDocument(t, Options{Autoreload: Bool(true), ReloadWait: Float64(2.5)})
	d.Build()

	want := "\nvar SDOM_AUTORELOAD = true\nvar SDOM_RELOAD_WAIT = 2.5\n"
	if got := d.Head().Children()[2].TextContent(); got != want {
		t.Errorf("autoreload script = %q, want %q", got, want)
	}
}

func TestAutoreloadScriptWithoutWait(t *testing.T) {
	resetConfig(t)
	d := newTestDocument(t, Options{Autoreload: Bool(true)})
	d.Build()

	want := "\nvar SDOM_AUTORELOAD = true\n"
	if got := d.Head().Children()[2].TextContent(); got != want {
		t.Errorf("autoreload script = %q, want %q", got, want)
	}
}

func TestAutoreloadDisabledLeavesEmptyPlaceholder(t *testing.T) {
	resetConfig(t)
	d := newTestDocument(t, Options{Autoreload: Bool(false)})
	d.Build()

	if got := d.Head().Children()[2].TextContent(); got != "" {
		t.Errorf("autoreload placeholder = %q, want empty", got)
	}
}

func TestAutoreloadFollowsGlobalDebug(t *testing.T) {
	resetConfig(t)
	d := newTestDocument(t, Options{})

	d.Build()
	if got := d.Head().Children()[2].TextContent(); got != "" {
		t.Fatalf("autoreload placeholder = %q before debug, want empty", got)
	}

	// The global flag is read at serialization time, so flipping it after
	// creation still takes effect.
	opts := config.Defaults()
	opts.Debug = true
	config.SetCurrent(opts)

	d.Build()
	if got := d.Head().Children()[2].TextContent(); !strings.Contains(got, "SDOM_AUTORELOAD = true") {
		t.Errorf("autoreload placeholder = %q after debug, want enabled", got)
	}
}

func TestLogScriptAllValues(t *testing.T) {
	resetConfig(t)
	d := newTestDocument(t, Options{
		MessageWait: Float64(0.01),
		LogLevel:    "DEBUG",
		LogPrefix:   "app",
		LogConsole:  true,
	})
	d.Build()

	want := "\nvar SDOM_MESSAGE_WAIT = 0.01\nvar SDOM_LOG_LEVEL = 'DEBUG'\nvar SDOM_LOG_PREFIX = 'app'\nvar SDOM_LOG_CONSOLE = true\n"
	scripts := headScripts(d)
	if len(scripts) < 2 {
		t.Fatalf("head scripts = %v, want placeholder plus log script", scripts)
	}
	if got := scripts[1]; got != want {
		t.Errorf("log script = %q, want %q", got, want)
	}
}

func TestLogScriptMessageWaitLeadsBlock(t *testing.T) {
	resetConfig(t)
	// Only the level is set; the message wait still leads the block, taken
	// from the process default.
	d := newTestDocument(t, Options{LogLevel: "INFO"})
	d.Build()

	want := "\nvar SDOM_MESSAGE_WAIT = 0.005\nvar SDOM_LOG_LEVEL = 'INFO'\n"
	if got := headScripts(d)[1]; got != want {
		t.Errorf("log script = %q, want %q", got, want)
	}
}

func TestLogScriptNumericLevel(t *testing.T) {
	resetConfig(t)
	d := newTestDocument(t, Options{LogLevel: 10, MessageWait: Float64(0.005)})
	d.Build()

	if got := headScripts(d)[1]; !strings.Contains(got, "var SDOM_LOG_LEVEL = 10\n") {
		t.Errorf("log script = %q, want bare numeric level", got)
	}
}

func TestLogScriptOmittedWhenUnconfigured(t *testing.T) {
	resetConfig(t)
	d := newTestDocument(t, Options{})
	d.Build()

	if scripts := headScripts(d); len(scripts) != 1 {
		t.Errorf("head scripts = %v, want only the autoreload placeholder", scripts)
	}
}

func TestTransportScript(t *testing.T) {
	resetConfig(t)
	d := newTestDocument(t, Options{WSURL: "ws://localhost:8888/_reload"})
	d.Build()

	want := "\nvar SDOM_WS_URL = 'ws://localhost:8888/_reload'\n"
	if got := headScripts(d)[1]; got != want {
		t.Errorf("transport script = %q, want %q", got, want)
	}
}

func TestBootstrapScriptOrder(t *testing.T) {
	resetConfig(t)
	d := newTestDocument(t, Options{
		Autoreload:     Bool(true),
		MessageWait:    Float64(0.005),
		WSURL:          "ws://x/_reload",
		IncludeRuntime: Bool(true),
	})
	d.Build()

	scripts := headScripts(d)
	if len(scripts) != 4 {
		t.Fatalf("head scripts = %v, want 4", scripts)
	}
	if !strings.Contains(scripts[0], "SDOM_AUTORELOAD") {
		t.Errorf("scripts[0] = %q, want autoreload", scripts[0])
	}
	if !strings.Contains(scripts[1], "SDOM_MESSAGE_WAIT") {
		t.Errorf("scripts[1] = %q, want log block", scripts[1])
	}
	if !strings.Contains(scripts[2], "SDOM_WS_URL") {
		t.Errorf("scripts[2] = %q, want transport", scripts[2])
	}
	if scripts[3] != "src:"+RuntimeScriptPath {
		t.Errorf("scripts[3] = %q, want runtime library last", scripts[3])
	}
}

func TestBootstrapScriptsStayLast(t *testing.T) {
	resetConfig(t)
	d := newTestDocument(t, Options{WSURL: "ws://x/_reload", IncludeRuntime: Bool(true)})

	d.Build()
	d.AddStylesheet("/css/late.css")
	d.Build()

	head := d.Head().Children()
	last := head[len(head)-1]
	if src, _ := last.Attr("src"); src != RuntimeScriptPath {
		t.Error("runtime library is not the last head child after a later insertion")
	}
}
