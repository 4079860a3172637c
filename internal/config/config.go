package config

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/sdom-dev/sdom/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "sdom.json"

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultPort is the default server port.
	DefaultPort = 8888

	// DefaultTitle is the title given to documents created without one.
	DefaultTitle = "W-DOM"

	// DefaultCharset is the charset given to documents created without one.
	DefaultCharset = "utf-8"

	// DefaultDoctype is the doctype given to documents created without one.
	DefaultDoctype = "html"

	// DefaultLogLevel is the client-runtime log level used when a document
	// does not set its own.
	DefaultLogLevel = "INFO"

	// DefaultMessageWait is the client-runtime message send interval in
	// seconds, used when a document does not set its own.
	DefaultMessageWait = 0.005
)

// Options are the process-wide defaults consulted by the document factory.
type Options struct {
	// Debug enables development behavior. Debug implies Autoreload for
	// documents that leave their own autoreload flag unset.
	Debug bool `json:"debug,omitempty"`

	// Autoreload enables the client autoreload script for documents that
	// leave their own flag unset.
	Autoreload bool `json:"autoreload,omitempty"`

	// ReloadWait is the default delay in seconds before the client
	// reloads, when autoreload is enabled. Zero means no declaration.
	ReloadWait float64 `json:"reloadWait,omitempty"`

	// MessageWait is the default client message send interval in seconds.
	MessageWait float64 `json:"messageWait,omitempty"`

	// LogLevel is the default client log level (DEBUG, INFO, WARN, ERROR).
	LogLevel string `json:"logLevel,omitempty"`

	// LogPrefix is prepended to client log output.
	LogPrefix string `json:"logPrefix,omitempty"`

	// LogConsole mirrors client log output to the browser console.
	LogConsole bool `json:"logConsole,omitempty"`

	// WSURL is the default live-update transport URL. Empty means the
	// transport declaration is omitted.
	WSURL string `json:"wsUrl,omitempty"`

	// Host and Port configure the serving address.
	Host string `json:"host,omitempty"`
	Port int    `json:"port,omitempty"`
}

// Defaults returns the built-in defaults.
func Defaults() Options {
	return Options{
		MessageWait: DefaultMessageWait,
		LogLevel:    DefaultLogLevel,
		Host:        DefaultHost,
		Port:        DefaultPort,
	}
}

// Load reads options from the given JSON file, layered over Defaults.
func Load(path string) (Options, error) {
	opts := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, errors.New(errors.CodeConfigNotFound).Wrap(err)
		}
		return opts, errors.New(errors.CodeConfigRead).Wrap(err)
	}
	if err := json.Unmarshal(data, &opts); err != nil {
		return opts, errors.New(errors.CodeConfigParse).Wrap(err)
	}
	return opts, nil
}

// LoadOrDefaults reads ConfigFileName from the working directory, falling
// back to Defaults when the file is absent.
func LoadOrDefaults() Options {
	opts, err := Load(ConfigFileName)
	if err != nil {
		return Defaults()
	}
	return opts
}

var (
	current   Options
	currentMu sync.RWMutex
	once      sync.Once
)

// Current returns the process-wide options, loading them on first use.
func Current() Options {
	once.Do(func() {
		currentMu.Lock()
		current = LoadOrDefaults()
		currentMu.Unlock()
	})
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current
}

// SetCurrent replaces the process-wide options. Intended for program startup
// and tests.
func SetCurrent(opts Options) {
	once.Do(func() {})
	currentMu.Lock()
	current = opts
	currentMu.Unlock()
}
