// Package host provides an in-memory host environment for charts
// reacting to pointer events.
package host

import (
	"sort"
	"sync"

	"github.com/midbel/minichart"
)

// Memory dispatches pointer moves given by Move to its subscribers and
// keeps the state of the overlays it created.
type Memory struct {
	// Left and Top are the position of the surface in the page.
	Left float64
	Top  float64

	mu       sync.Mutex
	next     int
	handlers map[int]func(minichart.PointerEvent)
	overlays []*Overlay
}

var _ minichart.Host = (*Memory)(nil)

func NewMemory(left, top float64) *Memory {
	return &Memory{
		Left:     left,
		Top:      top,
		handlers: make(map[int]func(minichart.PointerEvent)),
	}
}

func (m *Memory) Subscribe(fn func(minichart.PointerEvent)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.handlers == nil {
		m.handlers = make(map[int]func(minichart.PointerEvent))
	}
	id := m.next
	m.next++
	m.handlers[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			delete(m.handlers, id)
		})
	}
}

func (m *Memory) NewOverlay() minichart.Overlay {
	m.mu.Lock()
	defer m.mu.Unlock()
	o := &Overlay{}
	m.overlays = append(m.overlays, o)
	return o
}

// Subscribers gives the number of active subscriptions.
func (m *Memory) Subscribers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.handlers)
}

// Overlays returns the overlays not removed yet.
func (m *Memory) Overlays() []*Overlay {
	m.mu.Lock()
	defer m.mu.Unlock()
	var list []*Overlay
	for _, o := range m.overlays {
		if !o.Removed() {
			list = append(list, o)
		}
	}
	return list
}

// Move sends a pointer move at x, y relative to the surface to every
// subscriber, in subscription order.
func (m *Memory) Move(x, y float64) {
	m.mu.Lock()
	ids := make([]int, 0, len(m.handlers))
	for id := range m.handlers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(minichart.PointerEvent), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, m.handlers[id])
	}
	m.mu.Unlock()

	evt := minichart.PointerEvent{
		X:     x,
		Y:     y,
		PageX: m.Left + x,
		PageY: m.Top + y,
	}
	for _, fn := range fns {
		fn(evt)
	}
}

// Overlay is a tooltip whose state can be inspected.
type Overlay struct {
	mu      sync.Mutex
	visible bool
	removed bool
	text    string
	x       float64
	y       float64
}

func (o *Overlay) Show(text string, x, y float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.removed {
		return
	}
	o.visible, o.text, o.x, o.y = true, text, x, y
}

func (o *Overlay) Hide() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.visible = false
}

func (o *Overlay) Remove() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.visible, o.removed = false, true
}

func (o *Overlay) Visible() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.visible
}

func (o *Overlay) Removed() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.removed
}

func (o *Overlay) Text() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.text
}

// Position gives where the overlay was last shown in the page.
func (o *Overlay) Position() (float64, float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.x, o.y
}
