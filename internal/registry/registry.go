// Package registry is the host's plugin registry. Plugins are registered once by name and can then be enabled and
// disabled at will. The registry is the source of truth for whether a plugin is currently usable.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"awesome-dragon.science/go/chattext/pkg/event"
	"awesome-dragon.science/go/chattext/pkg/log"
)

// Events dispatched on the Registry's event manager. Both carry the plugin's name under "name" and the *Plugin
// itself under "plugin"
const (
	EventEnable  = "plugin_enable"
	EventDisable = "plugin_disable"
)

// Errors returned by Registry methods
var (
	ErrAlreadyRegistered = errors.New("plugin already registered")
	ErrNotRegistered     = errors.New("plugin not registered")
)

// Plugin is a single registered plugin
type Plugin struct {
	name    string
	enabled atomic.Bool
	Impl    interface{} // The actual implementation of the plugin
}

// Name returns the name the plugin was registered under
func (p *Plugin) Name() string { return p.name }

// Enabled returns whether or not the plugin is currently enabled. A nil Plugin is never enabled
func (p *Plugin) Enabled() bool {
	return p != nil && p.enabled.Load()
}

// Registry holds all registered plugins
type Registry struct {
	mutex   sync.RWMutex
	plugins map[string]*Plugin
	Events  *event.Manager
	log     *log.Logger
}

// New creates an empty Registry
func New(logger *log.Logger) *Registry {
	return &Registry{plugins: make(map[string]*Plugin), Events: new(event.Manager), log: logger}
}

// Register adds a plugin to the Registry. Plugins start out disabled
func (r *Registry) Register(name string, impl interface{}) (*Plugin, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.plugins[name]; exists {
		return nil, fmt.Errorf("cannot register %q: %w", name, ErrAlreadyRegistered)
	}

	p := &Plugin{name: name, Impl: impl}
	r.plugins[name] = p
	r.log.Debugf("registered plugin %q", name)

	return p, nil
}

// Lookup returns the plugin with the given name, or nil if there is none
func (r *Registry) Lookup(name string) *Plugin {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.plugins[name]
}

// Names returns the names of every registered plugin, sorted
func (r *Registry) Names() []string {
	r.mutex.RLock()
	out := make([]string, 0, len(r.plugins))

	for name := range r.plugins {
		out = append(out, name)
	}
	r.mutex.RUnlock()

	sort.Strings(out)

	return out
}

func (r *Registry) setEnabled(name string, enabled bool) error {
	p := r.Lookup(name)
	if p == nil {
		return fmt.Errorf("cannot change state of %q: %w", name, ErrNotRegistered)
	}

	if p.enabled.Swap(enabled) == enabled {
		return nil
	}

	evt := EventDisable
	if enabled {
		evt = EventEnable
	}

	r.log.Infof("%s: %s", evt, name)
	r.Events.Dispatch(evt, event.ArgMap{"name": name, "plugin": p})

	return nil
}

// Enable enables the named plugin. Enabling an enabled plugin does nothing
func (r *Registry) Enable(name string) error { return r.setEnabled(name, true) }

// Disable disables the named plugin. Disabling a disabled plugin does nothing
func (r *Registry) Disable(name string) error { return r.setEnabled(name, false) }
