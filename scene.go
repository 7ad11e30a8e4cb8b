package textbind

import "go.uber.org/zap"

// Scene is the top-level object that owns the node tree and the scheduler
// its bindings tick on. Call Update once per frame after game logic has run.
type Scene struct {
	root      *Node
	scheduler *Scheduler
	registry  *Registry
	script    *ScriptRunner
	debug     bool
}

// NewScene creates a new scene with a pre-created, enabled root node.
func NewScene() *Scene {
	s := &Scene{scheduler: NewScheduler()}
	s.root = NewNode("root")
	s.root.scene = s
	_ = s.root.refresh() // root has no components yet
	return s
}

// Root returns the scene's root node.
func (s *Scene) Root() *Node {
	return s.root
}

// Scheduler returns the scheduler bindings in this scene tick on.
func (s *Scene) Scheduler() *Scheduler {
	return s.scheduler
}

// Registry returns the scene's registry of named sources and sinks, creating
// an empty one on first use.
func (s *Scene) Registry() *Registry {
	if s.registry == nil {
		s.registry = NewRegistry()
	}
	return s.registry
}

// SetRegistry replaces the scene's registry.
func (s *Scene) SetRegistry(r *Registry) {
	s.registry = r
}

// Update advances an attached script by one frame, then runs one scheduler
// tick so every binding whose inputs changed this frame publishes once.
// Template errors from the tick are returned.
func (s *Scene) Update() error {
	if s.script != nil {
		s.script.step(s)
	}
	return s.scheduler.Tick()
}

// Frame returns the number of completed Updates.
func (s *Scene) Frame() uint64 {
	return s.scheduler.Frame()
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics and warnings and per-tick traces are logged through a zap
// development logger.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	setDebug(enabled)
	if enabled {
		logger.Debug("debug mode enabled", zap.Int("pending", s.scheduler.PendingCount()))
	}
}

// Add attaches n to the scene root. It is shorthand for Root().AddChild.
func (s *Scene) Add(n *Node) error {
	return s.root.AddChild(n)
}
