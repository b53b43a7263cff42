package render

import "github.com/lixenwraith/windclock/spectrum"

// RGB is an alias to spectrum.RGB so sink implementations do not import
// the color math package for one type
type RGB = spectrum.RGB

// CellHandle is an opaque reference to one presentation-layer cell
type CellHandle int

// Sink is the presentation layer the clock draws through. Every call
// must be idempotent and safe with unchanged values; the renderer elides
// no-op calls itself but does not rely on it.
type Sink interface {
	CreateCell() (CellHandle, error)
	MoveCell(h CellHandle, x, y int) error
	RecolorCell(h CellHandle, c RGB) error
	ShowCell(h CellHandle) error
	HideCell(h CellHandle) error
	DestroyCell(h CellHandle) error
}

// Flipper is an optional sink capability: present all buffered cell
// changes at once at the end of a tick
type Flipper interface {
	Flip()
}
