package services

import "github.com/SscSPs/currency_bar/internal/core/domain"

// AssetEventPublisher fans asset changes out to subscribers. Publish never blocks.
type AssetEventPublisher interface {
	Publish(event domain.AssetEvent)
}

// AssetEventSource lets readers follow asset changes.
// The returned cancel function unsubscribes and closes the channel.
type AssetEventSource interface {
	Subscribe(buffer int) (<-chan domain.AssetEvent, func())
}

// AssetEventHub is both ends of the asset change stream.
type AssetEventHub interface {
	AssetEventPublisher
	AssetEventSource
}
