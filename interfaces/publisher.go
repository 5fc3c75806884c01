package interfaces

import "myregistry/domain"

// Publisher receives registry change notifications. Calls are synchronous and made after the store acknowledged the write.
//
//go:generate moq -stub -out mock/publisher.go -pkg mock . Publisher
type Publisher interface {
	// Online is called after a registration was stored.
	Online(reg domain.Registration)
	// Offline is called after a delete was acknowledged, whether or not the id existed.
	Offline(id string)
}
