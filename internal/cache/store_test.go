package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSetGetInvalidate(t *testing.T) {
	store := NewStore()

	_, ok := store.Get(KeySkillProviders)
	assert.False(t, ok)

	store.Set(KeySkillProviders, []string{"alpha", "beta"})

	value, ok := store.Get(KeySkillProviders)
	require.True(t, ok)
	assert.Equal(t, []string{"alpha", "beta"}, value)

	store.Invalidate(KeySkillProviders)
	_, ok = store.Get(KeySkillProviders)
	assert.False(t, ok)

	metrics := store.Metrics()
	assert.Equal(t, 0, metrics.Entries)
	assert.Equal(t, int64(1), metrics.Hits)
	assert.Equal(t, int64(2), metrics.Misses)
	assert.Equal(t, int64(1), metrics.Sets)
	assert.Equal(t, int64(1), metrics.Invalidations)
}

func TestInvalidateAbsentKeyDoesNothing(t *testing.T) {
	store := NewStore()
	store.Set(KeySkillProviders, "cached")

	store.Invalidate(ToolPartitionKey("api"))

	_, ok := store.Get(KeySkillProviders)
	assert.True(t, ok)
	assert.Equal(t, int64(0), store.Metrics().Invalidations)
}

func TestInvalidateZeroKeyDoesNothing(t *testing.T) {
	store := NewStore()
	store.Set(KeySkillProviders, "cached")
	store.Set(ToolPartitionKey("skill"), "cached")

	// What an unrecognized provider-type resolves to.
	key, ok := KeyForProviderType("webhook")
	require.False(t, ok)

	store.Invalidate(key)

	metrics := store.Metrics()
	assert.Equal(t, 2, metrics.Entries)
	assert.Equal(t, int64(0), metrics.Invalidations)
}

func TestZeroKeySetIsIgnored(t *testing.T) {
	store := NewStore()
	store.Set(Key{}, "value")

	assert.Equal(t, 0, store.Metrics().Entries)
	_, ok := store.Get(Key{})
	assert.False(t, ok)
}

func TestInvalidationScopedToPartition(t *testing.T) {
	store := NewStore()
	for _, kind := range []string{"builtin", "api", "workflow", "mcp", "skill"} {
		store.Set(ToolPartitionKey(kind), kind+" tools")
	}
	store.Set(KeySkillProviders, "providers")

	key, ok := KeyForProviderType("skill")
	require.True(t, ok)
	store.Invalidate(key)

	_, ok = store.Get(ToolPartitionKey("skill"))
	assert.False(t, ok, "mutated partition must be dropped")

	for _, kind := range []string{"builtin", "api", "workflow", "mcp"} {
		_, ok := store.Get(ToolPartitionKey(kind))
		assert.True(t, ok, "partition %s must survive", kind)
	}
	_, ok = store.Get(KeySkillProviders)
	assert.True(t, ok)
}

func TestSubscribeToKey(t *testing.T) {
	store := NewStore()
	sub := store.Subscribe(KeySkillProviders)
	defer store.Unsubscribe(sub)

	store.Set(KeySkillProviders, "v1")
	store.Set(ToolPartitionKey("api"), "other") // different key, not delivered
	store.Invalidate(KeySkillProviders)

	event := <-sub.Channel
	assert.Equal(t, KeySkillProviders, event.Key)
	assert.Equal(t, EventSet, event.Kind)

	event = <-sub.Channel
	assert.Equal(t, KeySkillProviders, event.Key)
	assert.Equal(t, EventInvalidated, event.Kind)

	select {
	case extra := <-sub.Channel:
		t.Fatalf("unexpected event %+v", extra)
	default:
	}
}

func TestSubscribeToAllKeys(t *testing.T) {
	store := NewStore()
	sub := store.Subscribe(Key{})
	defer store.Unsubscribe(sub)

	store.Set(KeySkillProviders, "v1")
	store.Set(ToolPartitionKey("api"), "v2")

	first := <-sub.Channel
	second := <-sub.Channel
	assert.Equal(t, KeySkillProviders, first.Key)
	assert.Equal(t, ToolPartitionKey("api"), second.Key)

	metrics := store.Metrics()
	assert.Equal(t, int64(2), metrics.Subscriptions.EventsDelivered)
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	store := NewStore()
	sub := store.Subscribe(Key{})

	store.Unsubscribe(sub)
	assert.True(t, sub.IsClosed())

	_, open := <-sub.Channel
	assert.False(t, open)
	assert.Equal(t, 0, store.Metrics().Subscriptions.Active)

	// A second unsubscribe is harmless.
	store.Unsubscribe(sub)
}

func TestSlowSubscriberDropsEvents(t *testing.T) {
	store := NewStore()
	sub := store.Subscribe(KeySkillProviders)
	defer store.Unsubscribe(sub)

	// Never drained: everything beyond the channel buffer is dropped.
	for i := 0; i < subscriptionBuffer+10; i++ {
		store.Set(KeySkillProviders, i)
	}

	metrics := store.Metrics()
	assert.Equal(t, int64(subscriptionBuffer), metrics.Subscriptions.EventsDelivered)
	assert.Equal(t, int64(10), metrics.Subscriptions.EventsDropped)
}

func TestInvalidateAll(t *testing.T) {
	store := NewStore()
	store.Set(KeySkillProviders, "a")
	store.Set(KeyToolProviders, "b")
	store.Set(MCPToolsKey("m1"), "c")

	store.InvalidateAll()

	metrics := store.Metrics()
	assert.Equal(t, 0, metrics.Entries)
	assert.Equal(t, int64(3), metrics.Invalidations)
}
