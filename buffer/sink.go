package buffer

// A Sink receives dot states from a buffer. Renderers implement it
// to map (x, y, state) to whatever visual they manage: terminal cells,
// sprites, pixels, LEDs...
type Sink interface {
	SetDot(x, y int, state int)
}

// Adapter to allow the use of ordinary functions as [Sink] values.
type SinkFunc func(x, y int, state int)

// Implements [Sink].
func (self SinkFunc) SetDot(x, y int, state int) { self(x, y, state) }

// Implements the renderer side of the polling protocol: if the buffer
// changed since the last check, every dot is sent to the sink, row by
// row, and the method returns true. Otherwise the sink isn't called.
//
// Since the dirty flag is single-consumer, only one renderer should
// refresh from any given buffer.
func (self *Buffer) Refresh(sink Sink) bool {
	if !self.CheckChangesAndReset() { return false }
	for y := 0; y < self.height; y++ {
		for x := 0; x < self.width; x++ {
			sink.SetDot(x, y, self.GetDot(x, y))
		}
	}
	return true
}
