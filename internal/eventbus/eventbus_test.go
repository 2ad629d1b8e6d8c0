package eventbus

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"cinegrip/internal/domain"
)

func TestPublishDeliversToSubscribers(t *testing.T) {
	b := New(nil)
	defer b.Close()

	got := make(chan DomainEvent, 1)
	b.Subscribe(EventSearchSubmitted, func(e DomainEvent) { got <- e })

	b.Publish(SearchSubmittedEvent{Query: "batman"})

	select {
	case e := <-got:
		ev, ok := e.(SearchSubmittedEvent)
		require.True(t, ok, "unexpected event type %T", e)
		require.Equal(t, "batman", ev.Query)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestSubscribeFiltersByType(t *testing.T) {
	b := New(nil)
	defer b.Close()

	var calls int32
	b.Subscribe(EventLookupFailed, func(DomainEvent) { atomic.AddInt32(&calls, 1) })
	done := make(chan struct{})
	b.Subscribe(EventSearchSubmitted, func(DomainEvent) { close(done) })

	b.Publish(SearchSubmittedEvent{Query: "x"})
	<-done
	time.Sleep(20 * time.Millisecond)

	require.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestUnsubscribeRemovesOnlyThatHandler(t *testing.T) {
	b := New(nil)
	defer b.Close()

	var first, second int32
	unsubFirst := b.Subscribe(EventNavigationRequested, func(DomainEvent) { atomic.AddInt32(&first, 1) })
	b.Subscribe(EventNavigationRequested, func(DomainEvent) { atomic.AddInt32(&second, 1) })

	unsubFirst()
	b.Publish(NavigationRequestedEvent{Intent: domain.NavigationIntent{Route: "/"}})

	require.Eventually(t, func() bool { return atomic.LoadInt32(&second) == 1 }, 2*time.Second, 5*time.Millisecond)
	require.Equal(t, int32(0), atomic.LoadInt32(&first))
}

func TestHandlerPanicDoesNotStopBus(t *testing.T) {
	b := New(nil)
	defer b.Close()

	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	got := make(chan struct{}, 1)
	b.Subscribe(EventConfigSaved, func(DomainEvent) { got <- struct{}{} })

	b.Publish(ErrorEvent{Message: "x"})
	b.Publish(ConfigSavedEvent{Path: "/tmp/x"})

	select {
	case <-got:
	case <-time.After(2 * time.Second):
		t.Fatal("bus stopped after handler panic")
	}
}
