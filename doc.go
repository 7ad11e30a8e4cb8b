// Package textbind keeps UI text in sync with game state.
//
// A [Binding] formats a composite template such as "HP {0}/{1}" with an
// ordered list of [ValueSource] inputs and writes the result to a
// [TextSink]. Whenever an input fires its Changed event the binding marks
// itself dirty and asks its [Scheduler] for a tick; however many inputs
// change in a frame, the next tick formats and writes exactly once.
//
// # Quick start
//
//	scene := textbind.NewScene()
//	hp := textbind.NewValue(10)
//	maxHP := textbind.NewValue(10)
//	label := textbind.NewText("")
//
//	b := textbind.NewBinding("HP {0}/{1}", hp, maxHP)
//	b.Sink = label
//	if err := b.Bind(scene.Scheduler()); err != nil { // label is "HP 10/10"
//		log.Fatal(err)
//	}
//
//	hp.Set(7)
//	hp.Set(6)
//	_ = scene.Update() // label is "HP 6/10", written once
//
// Call [Scene.Update] once per frame after game logic has run. The
// ebitenhost subpackage does this from an ebiten.Game.
//
// # Templates
//
// Placeholders take the form {index[,alignment][:format]}. Braces are
// escaped by doubling them. The format part is offered to the binding's
// [DirectiveResolver] chain first; with the limiter enabled, {0:12} truncates
// a string input to twelve characters (grapheme clusters), optionally ending
// in "...". Formats no resolver claims are handled by the default
// formatter: fmt verbs ({0:%5.1f}), time layouts ({0:15:04}), standard
// numeric specs ({0:F2}, {0:N0}, {0:P1}) and custom patterns ({0:#,##0.00}).
//
// # Components
//
// Bindings and [SyncText] are also Behaviours: attach them to a [Node] and
// they bind when the node becomes active in a scene and unbind when it stops
// being active. A binding without a Sink uses a TextSink on its own node;
// a SyncText without a source searches the node's ancestors.
//
// # Configuration and scripts
//
// [ParseConfig] reads binding definitions from JSON, TOML or YAML. A
// [Registry] resolves their source and sink names. [LoadScript] loads a JSON
// script of set/wait/expect steps that drives a scene frame by frame, which
// is handy for end-to-end tests.
//
// # Logging
//
// Warnings (missing inputs, missing sinks, failed script steps) go to a zap
// logger that discards output by default. Install one with [SetLogger], or
// call [Scene.SetDebugMode] for a development logger plus disposed-node
// checks.
//
// textbind is single-threaded: all calls must come from the goroutine that
// runs the frame loop.
package textbind
