package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishInvokesSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var seen []Event
	dispatcher.Subscribe(EventCatalogRefreshed, func(ctx context.Context, e Event) error {
		seen = append(seen, e)
		return nil
	})

	event := Event{
		ID:        "evt-1",
		Type:      EventCatalogRefreshed,
		Timestamp: time.Now(),
		Payload:   CatalogRefreshedPayload{Users: 3, AssociationSource: "database"},
	}
	require.NoError(t, dispatcher.Publish(context.Background(), event))

	require.Len(t, seen, 1)
	assert.Equal(t, "evt-1", seen[0].ID)
	payload := seen[0].Payload.(CatalogRefreshedPayload)
	assert.Equal(t, 3, payload.Users)
}

func TestPublishIgnoresOtherEventTypes(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	called := false
	dispatcher.Subscribe(EventDraftReconciled, func(ctx context.Context, e Event) error {
		called = true
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventCatalogRefreshed}))
	assert.False(t, called)
}

func TestPublishRunsAllHandlersAndReturnsFirstError(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	failure := errors.New("handler broke")
	dispatcher.Subscribe(EventDraftReconciled, func(ctx context.Context, e Event) error {
		return failure
	})
	secondRan := false
	dispatcher.Subscribe(EventDraftReconciled, func(ctx context.Context, e Event) error {
		secondRan = true
		return errors.New("also broke")
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventDraftReconciled})
	assert.ErrorIs(t, err, failure)
	assert.True(t, secondRan)
}
