package registry

import (
	"awesome-dragon.science/go/chattext/pkg/placeholder"
)

// Substituter is implemented by plugins that resolve placeholders
type Substituter interface {
	SetPlaceholders(player *placeholder.OfflinePlayer, in string) (string, error)
	SetBracketPlaceholders(player *placeholder.OfflinePlayer, in string) (string, error)
}

// ProviderHandle is a placeholder.Provider backed by a registered plugin. Its availability follows the plugin's
// enabled state
type ProviderHandle struct {
	plugin *Plugin
	impl   Substituter
}

var _ placeholder.Provider = (*ProviderHandle)(nil)

// Available implements placeholder.Provider
func (h *ProviderHandle) Available() bool {
	return h != nil && h.plugin.Enabled()
}

// SetPlaceholders implements placeholder.Provider
func (h *ProviderHandle) SetPlaceholders(player *placeholder.OfflinePlayer, in string) (string, error) {
	return h.impl.SetPlaceholders(player, in)
}

// SetBracketPlaceholders implements placeholder.Provider
func (h *ProviderHandle) SetBracketPlaceholders(player *placeholder.OfflinePlayer, in string) (string, error) {
	return h.impl.SetBracketPlaceholders(player, in)
}

// Provider resolves the named plugin into a placeholder.Provider. This is intended to be done once at startup.
// If no such plugin is registered, or it cannot resolve placeholders, the returned Provider is nil
func (r *Registry) Provider(name string) placeholder.Provider {
	p := r.Lookup(name)
	if p == nil {
		r.log.Infof("no plugin named %q, placeholders will not be resolved", name)
		return nil
	}

	impl, ok := p.Impl.(Substituter)
	if !ok {
		r.log.Warnf("plugin %q cannot resolve placeholders", name)
		return nil
	}

	return &ProviderHandle{plugin: p, impl: impl}
}
