// Package events delivers registry "online"/"offline" notifications to in-process subscribers.
package events

import (
	"sync"

	"myregistry/domain"
	"myregistry/interfaces"
)

// Kind names a registry event.
type Kind string

const (
	KindOnline  Kind = "online"
	KindOffline Kind = "offline"
)

// Emitter fans registry events out to subscribers synchronously, in subscription order.
// Delivery is at-most-once: nothing is persisted or replayed.
type Emitter struct {
	mu      sync.RWMutex
	online  []func(domain.Registration)
	offline []func(id string)
}

var _ interfaces.Publisher = (*Emitter)(nil)

// NewEmitter creates an Emitter without subscribers.
func NewEmitter() *Emitter {
	return &Emitter{}
}

// OnOnline subscribes fn to "online" events.
func (e *Emitter) OnOnline(fn func(domain.Registration)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.online = append(e.online, fn)
}

// OnOffline subscribes fn to "offline" events.
func (e *Emitter) OnOffline(fn func(id string)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.offline = append(e.offline, fn)
}

// Online delivers reg to every "online" subscriber before returning.
func (e *Emitter) Online(reg domain.Registration) {
	e.mu.RLock()
	subs := e.online
	e.mu.RUnlock()

	for _, fn := range subs {
		fn(reg)
	}
}

// Offline delivers id to every "offline" subscriber before returning.
func (e *Emitter) Offline(id string) {
	e.mu.RLock()
	subs := e.offline
	e.mu.RUnlock()

	for _, fn := range subs {
		fn(id)
	}
}
