package textbind

import "fmt"

// State is a Binding's position in its update cycle.
type State uint8

const (
	StateIdle  State = iota // no recompute pending
	StateDirty              // an input changed since the last recompute
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDirty:
		return "dirty"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// DefaultPreviewInputs is the preview list a new Binding starts with.
var DefaultPreviewInputs = []string{"placeholder"}

// Binding formats a template with an ordered list of inputs and writes the
// result to a TextSink, recomputing when any input changes. Any number of
// changes between two scheduler ticks cost exactly one format and one sink
// write.
//
// Configure the exported fields, then call Bind. The fields may be edited
// while bound; edits to Format take effect on the next recompute, edits to
// Inputs on the next Bind.
type Binding struct {
	Name string

	// Format is the composite format template, e.g. "HP {0}/{1}".
	Format string

	// Inputs supply the template arguments by position. Nil entries are
	// allowed and format as "".
	Inputs []ValueSource

	// PreviewInputs stand in for the inputs when Live is false.
	PreviewInputs []string

	// UpdateOnBind recomputes and publishes synchronously during Bind.
	UpdateOnBind bool

	// LimiterEnabled turns on the {i:N} truncation directive.
	LimiterEnabled bool

	// EllipsisOnLimit appends "..." to truncated strings.
	EllipsisOnLimit bool

	// Live selects running mode; false formats PreviewInputs instead of
	// reading the inputs (design-time preview).
	Live bool

	// Sink receives the formatted text.
	Sink TextSink

	formatter *Formatter
	scheduler *Scheduler
	subs      []subscription
	bound     bool
	dirty     bool
	lastText  string
	updates   int
}

type subscription struct {
	event *Event
	id    ListenerID
}

// NewBinding creates a live Binding with the default options: update on
// bind, limiter off, ellipsis on, a single "placeholder" preview input.
func NewBinding(format string, inputs ...ValueSource) *Binding {
	if format == "" {
		format = "{0}"
	}
	return &Binding{
		Format:          format,
		Inputs:          inputs,
		PreviewInputs:   append([]string(nil), DefaultPreviewInputs...),
		UpdateOnBind:    true,
		EllipsisOnLimit: true,
		Live:            true,
	}
}

// Bind subscribes to every input's Changed event and registers the binding
// with s. If UpdateOnBind is set the text is recomputed and published
// before Bind returns, and a template error is returned. Binding an
// already bound Binding unbinds it first. A nil s leaves the binding
// unbound and returns ErrNoScheduler.
func (b *Binding) Bind(s *Scheduler) error {
	if b.bound {
		b.Unbind()
	}
	if s == nil {
		return fmt.Errorf("textbind: bind %q: %w", b.Name, ErrNoScheduler)
	}
	if b.formatter == nil {
		b.formatter = NewFormatter()
	}
	b.scheduler = s
	b.bound = true
	for _, in := range b.Inputs {
		if isNil(in) {
			continue
		}
		ev := in.Changed()
		id := ev.AddListener(b.onInputChanged)
		b.subs = append(b.subs, subscription{event: ev, id: id})
	}
	if b.UpdateOnBind {
		return b.UpdateText()
	}
	return nil
}

// Unbind removes every input subscription and drops any pending recompute.
// Nothing is written to the sink after Unbind returns.
func (b *Binding) Unbind() {
	for _, sub := range b.subs {
		sub.event.RemoveListener(sub.id)
	}
	clear(b.subs)
	b.subs = b.subs[:0]
	if b.scheduler != nil {
		b.scheduler.CancelTick(b)
	}
	b.scheduler = nil
	b.dirty = false
	b.bound = false
}

// Bound reports whether the binding is subscribed to its inputs.
func (b *Binding) Bound() bool {
	return b.bound
}

// State reports whether a recompute is pending.
func (b *Binding) State() State {
	if b.dirty {
		return StateDirty
	}
	return StateIdle
}

// LastText returns the most recently published text.
func (b *Binding) LastText() string {
	return b.lastText
}

// Updates returns how many times the binding has recomputed its text.
func (b *Binding) Updates() int {
	return b.updates
}

func (b *Binding) onInputChanged() {
	if !b.bound {
		return
	}
	b.dirty = true
	if b.scheduler != nil {
		b.scheduler.RequestTick(b)
	}
}

// Tick implements Ticker. A dirty binding recomputes and publishes once,
// then returns to idle. Input changes raised while recomputing schedule the
// next tick.
func (b *Binding) Tick() error {
	if !b.bound || !b.dirty {
		return nil
	}
	b.dirty = false
	if b.scheduler != nil {
		debugTrace("binding tick", b.Name, b.scheduler.Frame())
	}
	return b.UpdateText()
}

// UpdateText recomputes the text from the current inputs and writes it to
// the sink, even when nothing changed. A missing sink is logged and the
// write skipped; a template error is returned.
func (b *Binding) UpdateText() error {
	text, err := b.Text()
	if err != nil {
		return fmt.Errorf("textbind: binding %q: %w", b.Name, err)
	}
	b.updates++
	if isNil(b.Sink) {
		warnMissingSink(b.Name)
		return nil
	}
	b.lastText = text
	b.Sink.SetText(text)
	return nil
}

// Text formats the current inputs without publishing.
func (b *Binding) Text() (string, error) {
	if b.formatter == nil {
		b.formatter = NewFormatter()
	}
	return b.formatter.Format(b.Format, b.Inputs, Options{
		Live:     b.Live,
		Preview:  b.PreviewInputs,
		Limiter:  b.LimiterEnabled,
		Ellipsis: b.EllipsisOnLimit,
		Name:     b.Name,
	})
}

// Formatter returns the binding's formatter, creating it if needed, so
// callers can set its Language or Resolver.
func (b *Binding) Formatter() *Formatter {
	if b.formatter == nil {
		b.formatter = NewFormatter()
	}
	return b.formatter
}

// OnEnable implements Behaviour. A nil Sink is resolved from a TextSink
// component on the same node before binding to the scene's scheduler.
func (b *Binding) OnEnable(n *Node) error {
	if isNil(b.Sink) {
		if sink, ok := findSiblingSink(n, b); ok {
			b.Sink = sink
		}
	}
	var s *Scheduler
	if sc := n.Scene(); sc != nil {
		s = sc.Scheduler()
	}
	return b.Bind(s)
}

// OnDisable implements Behaviour.
func (b *Binding) OnDisable(*Node) {
	b.Unbind()
}

// findSiblingSink returns the first TextSink component on n other than
// self.
func findSiblingSink(n *Node, self any) (TextSink, bool) {
	for _, c := range n.Components() {
		if c == self {
			continue
		}
		if sink, ok := c.(TextSink); ok {
			return sink, true
		}
	}
	return nil, false
}
