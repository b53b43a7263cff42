package render

// Cell tracks one visual unit and its last-known presentation state,
// used to elide redundant sink calls
type Cell struct {
	Handle  CellHandle
	X, Y    int
	Color   RGB
	Visible bool
	Created bool
}

// CellUpdate is the computed target state of one cell for a tick
type CellUpdate struct {
	X, Y  int
	Color RGB
}
