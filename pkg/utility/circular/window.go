package circular

// Window keeps a trailing window of float samples together with its running sum.
// The maximum is recomputed on demand since windows stay short.
type Window struct {
	b   *Buffer[float64]
	sum float64
}

func NewWindow(capacity uint) *Window {
	return &Window{
		b: NewBuffer[float64](capacity),
	}
}

func (w *Window) PushUpdate(v float64) {
	if w.b.IsFull() {
		w.sum -= w.b.Last()
	}
	w.b.Push(v)
	w.sum += v
}

func (w *Window) Mean() float64 {
	if w.b.IsEmpty() {
		return 0
	}
	return w.sum / float64(w.b.Size())
}

func (w *Window) Max() float64 {
	if w.b.IsEmpty() {
		return 0
	}
	m := w.b.Get(0)
	for i := uint(1); i < w.b.Size(); i++ {
		if v := w.b.Get(i); v > m {
			m = v
		}
	}
	return m
}
