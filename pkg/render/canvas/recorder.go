package canvas

// Op is one recorded canvas call together with the state it was issued in.
type Op struct {
	Name string
	Args []float64

	FillColor   string
	StrokeColor string
	LineWidth   float64
	LineDash    []float64
	Depth       int
}

type recorderState struct {
	fill, stroke string
	lineWidth    float64
	dash         []float64
}

// Recorder is a Context that only records what it is asked to do.
type Recorder struct {
	Ops []Op

	current recorderState
	stack   []recorderState
}

func NewRecorder() *Recorder {
	return &Recorder{current: recorderState{lineWidth: 1}}
}

func (r *Recorder) record(name string, args ...float64) {
	r.Ops = append(r.Ops, Op{
		Name:        name,
		Args:        args,
		FillColor:   r.current.fill,
		StrokeColor: r.current.stroke,
		LineWidth:   r.current.lineWidth,
		LineDash:    r.current.dash,
		Depth:       len(r.stack),
	})
}

func (r *Recorder) Save() {
	r.record("Save")
	r.stack = append(r.stack, r.current)
}

func (r *Recorder) Restore() {
	if len(r.stack) > 0 {
		r.current = r.stack[len(r.stack)-1]
		r.stack = r.stack[:len(r.stack)-1]
	}
	r.record("Restore")
}

func (r *Recorder) SetFillColor(c string) {
	r.current.fill = c
	r.record("SetFillColor")
}

func (r *Recorder) SetStrokeColor(c string) {
	r.current.stroke = c
	r.record("SetStrokeColor")
}

func (r *Recorder) SetLineWidth(w float64) {
	r.current.lineWidth = w
	r.record("SetLineWidth", w)
}

func (r *Recorder) SetLineDash(dash []float64) {
	r.current.dash = append([]float64(nil), dash...)
	r.record("SetLineDash", dash...)
}

func (r *Recorder) BeginPath()                            { r.record("BeginPath") }
func (r *Recorder) MoveTo(x, y float64)                   { r.record("MoveTo", x, y) }
func (r *Recorder) LineTo(x, y float64)                   { r.record("LineTo", x, y) }
func (r *Recorder) QuadraticCurveTo(cx, cy, x, y float64) { r.record("QuadraticCurveTo", cx, cy, x, y) }
func (r *Recorder) Arc(cx, cy, rx, ry, start, sweep float64) {
	r.record("Arc", cx, cy, rx, ry, start, sweep)
}
func (r *Recorder) Rect(x, y, w, h float64)          { r.record("Rect", x, y, w, h) }
func (r *Recorder) RoundRect(x, y, w, h, rr float64) { r.record("RoundRect", x, y, w, h, rr) }
func (r *Recorder) ClosePath()                       { r.record("ClosePath") }
func (r *Recorder) Fill()                            { r.record("Fill") }
func (r *Recorder) Stroke()                          { r.record("Stroke") }

// Find returns the recorded operations with the given name in call order.
func (r *Recorder) Find(name string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Name == name {
			out = append(out, op)
		}
	}
	return out
}

// Count returns how many operations with the given name were recorded.
func (r *Recorder) Count(name string) int {
	return len(r.Find(name))
}

// Balanced reports whether every Save was matched by a Restore.
func (r *Recorder) Balanced() bool {
	return len(r.stack) == 0 && r.Count("Save") == r.Count("Restore")
}

func (r *Recorder) Reset() {
	r.Ops = nil
	r.stack = nil
	r.current = recorderState{lineWidth: 1}
}
