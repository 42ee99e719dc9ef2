package layout

// Cursor is the explicit vertical-flow position a builder threads through its
// draw sequence. The page origin is top-left; Down moves toward the page
// bottom. Cursors are values, so partial layouts can be replayed in tests.
type Cursor struct {
	X float64
	Y float64
}

// Down returns a cursor advanced by the given number of points.
func (c Cursor) Down(pts float64) Cursor {
	c.Y += pts
	return c
}

// At returns a cursor repositioned horizontally, keeping the vertical flow.
func (c Cursor) At(x float64) Cursor {
	c.X = x
	return c
}
