package pointer

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 1, Width: 10, Height: 3}

	require.True(t, r.Contains(2, 1))
	require.True(t, r.Contains(11, 3))
	require.False(t, r.Contains(12, 3), "right edge is exclusive")
	require.False(t, r.Contains(5, 4), "bottom edge is exclusive")
	require.False(t, r.Contains(1, 2))
	require.False(t, Rect{}.Contains(0, 0))
}

func TestRectUnion(t *testing.T) {
	input := Rect{X: 0, Y: 0, Width: 40, Height: 3}
	panel := Rect{X: 0, Y: 3, Width: 50, Height: 5}

	require.Equal(t, Rect{X: 0, Y: 0, Width: 50, Height: 8}, input.Union(panel))
	require.Equal(t, input, input.Union(Rect{}))
	require.Equal(t, panel, Rect{}.Union(panel))
}

func TestHubDispatchAndRelease(t *testing.T) {
	h := NewHub()

	var a, b []Event
	releaseA := h.Subscribe(func(ev Event) { a = append(a, ev) })
	h.Subscribe(func(ev Event) { b = append(b, ev) })
	require.Equal(t, 2, h.Len())

	h.Dispatch(Event{X: 1, Y: 1})
	releaseA()
	releaseA()
	h.Dispatch(Event{X: 2, Y: 2})

	require.Len(t, a, 1)
	require.Len(t, b, 2)
	require.Equal(t, 1, h.Len())
}

func TestHubHandlerMayReleaseItself(t *testing.T) {
	h := NewHub()

	var release func()
	calls := 0
	release = h.Subscribe(func(Event) {
		calls++
		release()
	})

	h.Dispatch(Event{})
	h.Dispatch(Event{})

	require.Equal(t, 1, calls)
	require.Zero(t, h.Len())
}

func TestFromMouse(t *testing.T) {
	ev, ok := FromMouse(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.True(t, ok)
	require.Equal(t, Event{X: 3, Y: 4, Button: tea.MouseButtonLeft}, ev)

	_, ok = FromMouse(tea.MouseMsg{Action: tea.MouseActionMotion})
	require.False(t, ok)
	_, ok = FromMouse(tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	require.False(t, ok)
	_, ok = FromMouse(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	require.False(t, ok)
}
