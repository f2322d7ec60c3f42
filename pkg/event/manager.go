// Package event is a small event bus. It is a reimplementation of github.com/goshuirc/eventmgr with an ID system added.
// The original idea is theirs.
package event

import (
	"sort"
	"sync"
)

// Priority levels
const (
	PriHighest = 16
	PriHigh    = 32
	PriNorm    = 48
	PriLow     = 64
	PriLowest  = 80
)

// ArgMap holds the arguments passed along with an event
type ArgMap map[string]interface{}

// HandlerFunc is an event callback. It is passed the name of the event it was fired for and the event's arguments
type HandlerFunc func(name string, args ArgMap)

// Handler represents an attached callback
type Handler struct {
	Func     HandlerFunc // The callback that this Handler refers to
	Priority int         // The priority of this callback, lower is higher
	ID       int         // The ID of this callback
}

// HandlerList is a slice of handlers that sorts by priority
type HandlerList []Handler

func (h HandlerList) Len() int           { return len(h) }
func (h HandlerList) Less(i, j int) bool { return h[i].Priority < h[j].Priority }
func (h HandlerList) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

// Manager allows you to hook callbacks onto string based event names, and fire them later. Use of Manager objects
// from multiple goroutines is permitted. The zero value is ready to use
type Manager struct {
	events map[string]HandlerList
	mutex  sync.RWMutex
	curID  int
}

// HasEvent returns whether or not the given event has ever had a handler attached
func (m *Manager) HasEvent(name string) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	_, ok := m.events[name]

	return ok
}

// Attach adds a callback for the given event. The returned ID can be used to Detach the callback later
func (m *Manager) Attach(name string, f HandlerFunc, priority int) int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.events == nil {
		m.events = make(map[string]HandlerList)
	}

	m.curID++
	m.events[name] = append(m.events[name], Handler{Func: f, Priority: priority, ID: m.curID})
	sort.Stable(m.events[name])

	return m.curID
}

// AttachOneShot attaches the given callback for a single dispatch, after which it is detached
func (m *Manager) AttachOneShot(name string, f HandlerFunc, priority int) int {
	var (
		id   int
		once sync.Once
	)

	id = m.Attach(name, func(name string, args ArgMap) {
		once.Do(func() {
			m.Detach(id)
			f(name, args)
		})
	}, priority)

	return id
}

// Detach removes the callback with the given ID. It returns false if no such callback exists
func (m *Manager) Detach(id int) bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for name, hl := range m.events {
		for i, handler := range hl {
			if handler.ID != id {
				continue
			}

			out := make(HandlerList, 0, len(hl)-1)
			out = append(out, hl[:i]...)
			m.events[name] = append(out, hl[i+1:]...)

			return true
		}
	}

	return false
}

// Dispatch calls every callback attached to the given event in priority order. Events with no callbacks are ignored
func (m *Manager) Dispatch(name string, args ArgMap) {
	m.mutex.RLock()
	toIterate := m.events[name]
	m.mutex.RUnlock()

	for _, h := range toIterate {
		if h.Func != nil {
			h.Func(name, args)
		}
	}
}
