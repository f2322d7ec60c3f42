// Package placeholder resolves placeholders in chat text using an optional Provider. When no Provider is available
// the text is simply colourised.
//
// Two placeholder syntaxes exist, %name% and [name]. Which one is resolved depends on the method called, never both.
package placeholder

import (
	"awesome-dragon.science/go/chattext/pkg/text"
)

// Provider is a service that substitutes placeholders. A nil player means the lookup is anonymous. Errors returned
// by a Provider are handed to the caller as is.
type Provider interface {
	// Available returns whether or not the provider is registered and currently enabled. It is checked on every call
	// made on a Dispatcher, as it can change at any time
	Available() bool
	// SetPlaceholders replaces %name% style placeholders in the given text
	SetPlaceholders(player *OfflinePlayer, in string) (string, error)
	// SetBracketPlaceholders replaces [name] style placeholders in the given text
	SetBracketPlaceholders(player *OfflinePlayer, in string) (string, error)
}

// Dispatcher hands placeholder resolution to its Provider when that Provider is available, and otherwise falls back to
// text.Colourise. The zero value has no Provider and always falls back. A Dispatcher holds no state other than its
// Provider and is safe for concurrent use as long as the Provider is.
type Dispatcher struct {
	provider Provider
}

// NewDispatcher creates a Dispatcher that delegates to the given Provider. The Provider may be nil
func NewDispatcher(provider Provider) *Dispatcher {
	return &Dispatcher{provider: provider}
}

// Provider returns the Provider this Dispatcher was created with
func (d *Dispatcher) Provider() Provider {
	return d.provider
}

func (d *Dispatcher) available() bool {
	return d.provider != nil && d.provider.Available()
}

type substituteFunc func(player *OfflinePlayer, in string) (string, error)

func (d *Dispatcher) dispatch(actor Actor, in string, pick func(Provider) substituteFunc) (string, error) {
	if !d.available() {
		return text.Colourise(in), nil
	}

	return pick(d.provider)(playerOf(actor), in)
}

// SetPlaceholders resolves %name% placeholders anonymously
func (d *Dispatcher) SetPlaceholders(in string) (string, error) {
	return d.SetPlaceholdersFor(nil, in)
}

// SetPlaceholdersFor resolves %name% placeholders on behalf of the given actor. If the actor is not an OfflinePlayer
// the lookup is anonymous. If no Provider is available, the actor is ignored and the text is colourised
func (d *Dispatcher) SetPlaceholdersFor(actor Actor, in string) (string, error) {
	return d.dispatch(actor, in, func(p Provider) substituteFunc { return p.SetPlaceholders })
}

// SetBracketPlaceholders resolves [name] placeholders anonymously
func (d *Dispatcher) SetBracketPlaceholders(in string) (string, error) {
	return d.SetBracketPlaceholdersFor(nil, in)
}

// SetBracketPlaceholdersFor is SetPlaceholdersFor for [name] placeholders
func (d *Dispatcher) SetBracketPlaceholdersFor(actor Actor, in string) (string, error) {
	return d.dispatch(actor, in, func(p Provider) substituteFunc { return p.SetBracketPlaceholders })
}
