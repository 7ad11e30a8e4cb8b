package textbind

import (
	"errors"
	"testing"
)

func newBound(t *testing.T, format string, inputs ...ValueSource) (*Binding, *Text, *Scheduler) {
	t.Helper()
	sink := NewText("")
	s := NewScheduler()
	b := NewBinding(format, inputs...)
	b.Name = t.Name()
	b.Sink = sink
	if err := b.Bind(s); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	return b, sink, s
}

func TestNewBinding_Defaults(t *testing.T) {
	b := NewBinding("")
	if b.Format != "{0}" {
		t.Errorf("Format = %q, want %q", b.Format, "{0}")
	}
	if !b.UpdateOnBind || !b.EllipsisOnLimit || !b.Live || b.LimiterEnabled {
		t.Errorf("flags = %+v", b)
	}
	if len(b.PreviewInputs) != 1 || b.PreviewInputs[0] != "placeholder" {
		t.Errorf("PreviewInputs = %v", b.PreviewInputs)
	}
	b.PreviewInputs[0] = "changed"
	if DefaultPreviewInputs[0] != "placeholder" {
		t.Error("NewBinding aliased DefaultPreviewInputs")
	}
}

func TestBinding_UpdateOnBind(t *testing.T) {
	hp := NewValue(10)
	b, sink, _ := newBound(t, "HP {0}", hp)
	if sink.Text() != "HP 10" {
		t.Errorf("sink = %q, want %q", sink.Text(), "HP 10")
	}
	if sink.Writes() != 1 || b.Updates() != 1 {
		t.Errorf("writes = %d, updates = %d, want 1, 1", sink.Writes(), b.Updates())
	}
	if b.LastText() != "HP 10" || b.State() != StateIdle || !b.Bound() {
		t.Errorf("LastText = %q, State = %v, Bound = %v", b.LastText(), b.State(), b.Bound())
	}
}

func TestBinding_NoUpdateOnBind(t *testing.T) {
	sink := NewText("untouched")
	b := NewBinding("{0}", NewValue(1))
	b.UpdateOnBind = false
	b.Sink = sink
	if err := b.Bind(NewScheduler()); err != nil {
		t.Fatal(err)
	}
	if sink.Writes() != 0 || sink.Text() != "untouched" {
		t.Errorf("sink written on bind: %q (%d writes)", sink.Text(), sink.Writes())
	}
}

func TestBinding_BindNilScheduler(t *testing.T) {
	v := NewValue(1)
	sink := NewText("")
	b := NewBinding("{0}", v)
	b.Sink = sink
	if err := b.Bind(nil); !errors.Is(err, ErrNoScheduler) {
		t.Fatalf("Bind(nil) error = %v, want ErrNoScheduler", err)
	}
	if b.Bound() || sink.Writes() != 0 {
		t.Errorf("Bound = %v, writes = %d; want unbound and untouched", b.Bound(), sink.Writes())
	}
	v.Set(2)
	if b.State() != StateIdle {
		t.Errorf("State = %v after input change, want idle", b.State())
	}

	b2, _, _ := newBound(t, "{0}", v)
	if err := b2.Bind(nil); !errors.Is(err, ErrNoScheduler) {
		t.Fatalf("rebind to nil error = %v", err)
	}
	if b2.Bound() {
		t.Error("rebinding to nil left the binding bound")
	}
}

func TestBinding_CoalescesChanges(t *testing.T) {
	a, c := NewValue(0), NewValue(0)
	b, sink, s := newBound(t, "{0}:{1}", a, c)
	writes := sink.Writes()
	updates := b.Updates()

	a.Set(1)
	c.Set(2)
	a.Set(3)
	c.Set(4)
	a.Set(5)
	if b.State() != StateDirty {
		t.Fatalf("State = %v, want dirty", b.State())
	}
	if sink.Writes() != writes {
		t.Fatal("sink written before the tick")
	}
	if err := s.Tick(); err != nil {
		t.Fatal(err)
	}
	if got := sink.Writes() - writes; got != 1 {
		t.Errorf("sink writes = %d, want 1", got)
	}
	if got := b.Updates() - updates; got != 1 {
		t.Errorf("recomputes = %d, want 1", got)
	}
	if sink.Text() != "5:4" {
		t.Errorf("sink = %q, want %q", sink.Text(), "5:4")
	}
	if b.State() != StateIdle {
		t.Errorf("State = %v, want idle", b.State())
	}

	// An idle tick writes nothing.
	s.Tick()
	if got := sink.Writes() - writes; got != 1 {
		t.Errorf("sink writes after idle tick = %d, want 1", got)
	}
}

func TestBinding_UpdateTextIdempotent(t *testing.T) {
	b, sink, _ := newBound(t, "x={0}", NewValue(3))
	base := sink.Writes()
	if err := b.UpdateText(); err != nil {
		t.Fatal(err)
	}
	first := sink.Text()
	if err := b.UpdateText(); err != nil {
		t.Fatal(err)
	}
	if sink.Text() != first || first != "x=3" {
		t.Errorf("texts %q then %q", first, sink.Text())
	}
	if got := sink.Writes() - base; got != 2 {
		t.Errorf("writes = %d, want 2", got)
	}
}

func TestBinding_UnbindCancelsPending(t *testing.T) {
	v := NewValue(1)
	b, sink, s := newBound(t, "{0}", v)
	writes := sink.Writes()

	v.Set(2)
	if !s.Pending(b) {
		t.Fatal("binding not scheduled after change")
	}
	b.Unbind()
	if s.Pending(b) {
		t.Error("binding still scheduled after Unbind")
	}
	s.Tick()
	v.Set(3)
	s.Tick()
	if sink.Writes() != writes || sink.Text() != "1" {
		t.Errorf("sink written after Unbind: %q (%d writes)", sink.Text(), sink.Writes())
	}
	if v.Changed().ListenerCount() != 0 {
		t.Errorf("listeners left after Unbind: %d", v.Changed().ListenerCount())
	}
	if b.Bound() || b.State() != StateIdle {
		t.Errorf("Bound = %v, State = %v", b.Bound(), b.State())
	}
}

func TestBinding_UnbindAfterSnapshot(t *testing.T) {
	v := NewValue(1)
	s := NewScheduler()
	sink := NewText("")

	var target *Binding
	killer := &countTicker{onTick: func() { target.Unbind() }}

	target = NewBinding("{0}", v)
	target.Sink = sink
	s.RequestTick(killer)
	if err := target.Bind(s); err != nil {
		t.Fatal(err)
	}
	writes := sink.Writes()
	v.Set(2) // target queued after killer
	s.Tick()
	if sink.Writes() != writes {
		t.Error("binding unbound earlier in the same tick still wrote")
	}
}

func TestBinding_ChangeDuringRecomputeDeferred(t *testing.T) {
	v := NewValue(1)
	b, sink, s := newBound(t, "{0}", v)

	bumped := false
	sink.Changed().AddListener(func() {
		if !bumped {
			bumped = true
			v.Set(100)
		}
	})
	v.Set(2)
	s.Tick()
	if sink.Text() != "2" {
		t.Errorf("sink = %q, want %q", sink.Text(), "2")
	}
	if b.State() != StateDirty || !s.Pending(b) {
		t.Fatal("change during recompute was not deferred to the next tick")
	}
	s.Tick()
	if sink.Text() != "100" {
		t.Errorf("sink = %q, want %q", sink.Text(), "100")
	}
}

func TestBinding_MissingSinkWarns(t *testing.T) {
	logs := observeLogs(t)
	b := NewBinding("{0}", NewValue(1))
	b.Name = "orphan"
	if err := b.Bind(NewScheduler()); err != nil {
		t.Fatalf("missing sink should not be an error: %v", err)
	}
	entries := logs.FilterMessage("missing sink").All()
	if len(entries) != 1 || entries[0].ContextMap()["binding"] != "orphan" {
		t.Errorf("entries = %v", entries)
	}
	if b.LastText() != "" {
		t.Errorf("LastText = %q, want empty", b.LastText())
	}
}

func TestBinding_NilInputTolerated(t *testing.T) {
	logs := observeLogs(t)
	b, sink, _ := newBound(t, "[{0}|{1}]", NewValue(1), nil)
	if sink.Text() != "[1|]" {
		t.Errorf("sink = %q, want %q", sink.Text(), "[1|]")
	}
	if logs.FilterMessage("missing input").Len() != 1 {
		t.Errorf("warnings = %d, want 1", logs.Len())
	}
	_ = b
}

func TestBinding_TemplateErrorSurfaces(t *testing.T) {
	sink := NewText("")
	b := NewBinding("{0} {1}", NewValue(1))
	b.Sink = sink
	err := b.Bind(NewScheduler())
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("Bind error = %v, want ErrIndexOutOfRange", err)
	}
	if sink.Writes() != 0 {
		t.Error("sink written despite template error")
	}

	b.Format = "{0"
	v := NewValue(1)
	b.Inputs = []ValueSource{v}
	b.UpdateOnBind = false
	s := NewScheduler()
	if err := b.Bind(s); err != nil {
		t.Fatal(err)
	}
	v.Set(2)
	if err := s.Tick(); !errors.Is(err, ErrMalformedTemplate) {
		t.Errorf("Tick error = %v, want ErrMalformedTemplate", err)
	}
}

func TestBinding_PreviewMode(t *testing.T) {
	sink := NewText("")
	b := NewBinding("{0} / {1}", NewValue(1), NewValue(2))
	b.Live = false
	b.PreviewInputs = []string{"hp", "max"}
	b.Sink = sink
	if err := b.Bind(NewScheduler()); err != nil {
		t.Fatal(err)
	}
	if sink.Text() != "hp / max" {
		t.Errorf("sink = %q, want %q", sink.Text(), "hp / max")
	}
}

func TestBinding_Rebind(t *testing.T) {
	v := NewValue(1)
	b, _, s1 := newBound(t, "{0}", v)
	v.Set(2)
	s2 := NewScheduler()
	if err := b.Bind(s2); err != nil {
		t.Fatal(err)
	}
	if s1.Pending(b) {
		t.Error("old scheduler still holds the binding")
	}
	if v.Changed().ListenerCount() != 1 {
		t.Errorf("listeners = %d, want 1", v.Changed().ListenerCount())
	}
	v.Set(3)
	if !s2.Pending(b) {
		t.Error("new scheduler not notified")
	}
}

func TestBinding_LimiterOptions(t *testing.T) {
	name := NewText("Bartholomew")
	b, sink, _ := newBound(t, "{0:8}", name)
	if sink.Text() != "Bartholomew" {
		t.Errorf("limiter off: %q", sink.Text())
	}
	b.LimiterEnabled = true
	b.UpdateText()
	if sink.Text() != "Barth..." {
		t.Errorf("ellipsis: %q", sink.Text())
	}
	b.EllipsisOnLimit = false
	b.UpdateText()
	if sink.Text() != "Bartholo" {
		t.Errorf("no ellipsis: %q", sink.Text())
	}
}

func TestState_String(t *testing.T) {
	if StateIdle.String() != "idle" || StateDirty.String() != "dirty" || State(9).String() != "State(9)" {
		t.Error("State.String mismatch")
	}
}
