package textbind

import "go.uber.org/zap"

// SyncText mirrors one text property into another: whenever From changes,
// its text is copied into To. It is a Behaviour; attach it to a Node.
//
// Unless DisableAutoFind is set, a nil From is looked up among the node's
// ancestors (starting at the parent) when the component is enabled, and a
// nil To is taken from a TextSink on the same node.
type SyncText struct {
	From            TextSource
	To              TextSink
	DisableAutoFind bool

	node     *Node
	event    *Event
	listener ListenerID
}

// OnEnable implements Behaviour. With no source it logs a warning and stays
// idle; otherwise it syncs once and subscribes to the source.
func (st *SyncText) OnEnable(n *Node) error {
	st.node = n
	from := st.source()
	if from == nil {
		logger.Warn("sync source missing", zap.String("node", n.Name))
		return nil
	}
	if isNil(st.To) && !st.DisableAutoFind {
		if sink, ok := findSiblingSink(n, st); ok && !sameProperty(sink, from) {
			st.To = sink
		}
	}

	st.Sync()

	st.event = from.Changed()
	st.listener = st.event.AddListener(st.Sync)
	return nil
}

// OnDisable implements Behaviour.
func (st *SyncText) OnDisable(*Node) {
	if st.event != nil {
		st.event.RemoveListener(st.listener)
		st.event = nil
		st.listener = 0
	}
}

// Sync copies the source text into the target now. Missing ends are logged
// and the copy skipped.
func (st *SyncText) Sync() {
	from := st.source()
	if isNil(st.To) {
		logger.Warn("sync target missing", zap.String("node", st.nodeName()))
		return
	}
	if from == nil {
		logger.Warn("sync source missing", zap.String("node", st.nodeName()))
		return
	}
	st.To.SetText(from.Text())
}

func (st *SyncText) source() TextSource {
	if !isNil(st.From) {
		return st.From
	}
	if st.DisableAutoFind || st.node == nil || st.node.Parent == nil {
		return nil
	}
	if found, ok := FindInParents[TextSource](st.node.Parent); ok {
		st.From = found
		return found
	}
	return nil
}

func (st *SyncText) nodeName() string {
	if st.node == nil {
		return ""
	}
	return st.node.Name
}

// sameProperty reports whether sink and source are the same object.
func sameProperty(sink TextSink, source TextSource) bool {
	s, ok := sink.(TextSource)
	return ok && s == source
}
