package document

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sdom-dev/sdom/internal/config"
)

// Variables declared to the client runtime. Presence and order are part of
// the wire contract; the runtime tolerates any subset being absent.
const (
	varAutoreload  = "SDOM_AUTORELOAD"
	varReloadWait  = "SDOM_RELOAD_WAIT"
	varMessageWait = "SDOM_MESSAGE_WAIT"
	varLogLevel    = "SDOM_LOG_LEVEL"
	varLogPrefix   = "SDOM_LOG_PREFIX"
	varLogConsole  = "SDOM_LOG_CONSOLE"
	varWSURL       = "SDOM_WS_URL"
)

// RuntimeScriptPath is where the client runtime library is served, relative
// to the document root.
const RuntimeScriptPath = "_static/js/sdom/sdom.js"

// bootstrapConfig is the bootstrap state captured at document creation.
// Pointer fields distinguish "unset" from an explicit zero.
type bootstrapConfig struct {
	autoreload     *bool
	reloadWait     *float64
	messageWait    *float64
	logLevel       any
	logPrefix      string
	logConsole     bool
	wsURL          string
	includeRuntime bool
}

// refreshBootstrap recomposes the bootstrap scripts in the head. The
// autoreload placeholder is rewritten in place; the log, transport and
// runtime scripts are removed and re-appended, in that order, each only when
// its triggering condition holds. The script nodes themselves are reused
// across refreshes so their correlation ids, and therefore the serialized
// bytes, never change between unmutated Build calls.
func (d *Document) refreshBootstrap() {
	d.refreshAutoreload()

	for _, n := range d.injected {
		n.Remove()
	}
	d.injected = d.injected[:0]

	if text, ok := d.logScriptText(); ok {
		d.logScriptEl.SetTextContent(text)
		d.head.AppendChild(d.logScriptEl)
		d.injected = append(d.injected, d.logScriptEl)
	}
	if d.bootstrap.wsURL != "" {
		d.wsScriptEl.SetTextContent(fmt.Sprintf("\nvar %s = '%s'\n", varWSURL, d.bootstrap.wsURL))
		d.head.AppendChild(d.wsScriptEl)
		d.injected = append(d.injected, d.wsScriptEl)
	}
	if d.bootstrap.includeRuntime {
		d.head.AppendChild(d.runtimeScriptEl)
		d.injected = append(d.injected, d.runtimeScriptEl)
	}
}

// refreshAutoreload rewrites the autoreload placeholder. An unset document
// flag falls back to the process-wide autoreload/debug default, read at
// serialization time so a document created before the flag flipped still
// honors it.
func (d *Document) refreshAutoreload() {
	enabled := false
	if d.bootstrap.autoreload != nil {
		enabled = *d.bootstrap.autoreload
	} else {
		defaults := config.Current()
		enabled = defaults.Autoreload || defaults.Debug
	}

	if !enabled {
		d.autoreloadScript.SetTextContent("")
		return
	}

	lines := []string{fmt.Sprintf("var %s = true", varAutoreload)}
	if d.bootstrap.reloadWait != nil {
		lines = append(lines, fmt.Sprintf("var %s = %s",
			varReloadWait, formatSeconds(*d.bootstrap.reloadWait)))
	}
	d.autoreloadScript.SetTextContent("\n" + strings.Join(lines, "\n") + "\n")
}

// logScriptText builds the logging/message-wait script content, or reports
// false when none of the logging values are present. When the block is
// emitted, the message-wait declaration always leads it.
func (d *Document) logScriptText() (string, bool) {
	b := d.bootstrap
	if b.messageWait == nil && b.logLevel == nil && b.logPrefix == "" && !b.logConsole {
		return "", false
	}

	messageWait := config.Current().MessageWait
	if b.messageWait != nil {
		messageWait = *b.messageWait
	}

	lines := []string{fmt.Sprintf("var %s = %s", varMessageWait, formatSeconds(messageWait))}
	if b.logLevel != nil {
		lines = append(lines, fmt.Sprintf("var %s = %s", varLogLevel, formatJSValue(b.logLevel)))
	}
	if b.logPrefix != "" {
		lines = append(lines, fmt.Sprintf("var %s = '%s'", varLogPrefix, b.logPrefix))
	}
	if b.logConsole {
		lines = append(lines, fmt.Sprintf("var %s = true", varLogConsole))
	}
	return "\n" + strings.Join(lines, "\n") + "\n", true
}

// formatSeconds renders a duration value the way the runtime expects:
// shortest decimal form, no exponent for ordinary magnitudes.
func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// formatJSValue renders a permissively-typed configuration value as a
// JavaScript literal: strings quoted, numbers bare, anything else through
// its default formatting.
func formatJSValue(v any) string {
	switch x := v.(type) {
	case string:
		return "'" + x + "'"
	case float64:
		return formatSeconds(x)
	case float32:
		return formatSeconds(float64(x))
	default:
		return fmt.Sprintf("%v", x)
	}
}
