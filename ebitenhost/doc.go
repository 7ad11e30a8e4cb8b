// Package ebitenhost runs textbind scenes inside an Ebitengine game.
//
// [Game] implements ebiten.Game: its Update runs game logic first and then
// the scene's scheduler tick, so bindings publish once per frame after every
// input has settled. [Label] is a TextSink drawn with text/v2, and
// [FPSValue] is a ValueSource for frame-rate readouts.
//
//	scene := textbind.NewScene()
//	game := ebitenhost.NewGame(scene, 640, 480)
//	font, _ := ebitenhost.LoadFont(goregular.TTF, 18)
//	label := ebitenhost.NewLabel(font, 24, 24)
//	game.AddLabel(label)
//
//	b := textbind.NewBinding("Score: {0:N0}", score)
//	b.Sink = label
//	_ = b.Bind(scene.Scheduler())
//
//	log.Fatal(ebitenhost.Run(game, ebitenhost.RunConfig{Title: "HUD"}))
package ebitenhost
