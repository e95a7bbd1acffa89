package minichart

// PointerEvent is a pointer move over a surface. X and Y are relative to
// the surface, PageX and PageY to the document holding it.
type PointerEvent struct {
	X     float64
	Y     float64
	PageX float64
	PageY float64
}

// Overlay is a floating element living outside of the surface.
type Overlay interface {
	Show(text string, x, y float64)
	Hide()
	Remove()
}

// Host is the environment a surface is embedded into.
type Host interface {
	Subscribe(func(PointerEvent)) (unsubscribe func())
	NewOverlay() Overlay
}
