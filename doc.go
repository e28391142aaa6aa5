// Package ebitools is a helper toolkit for [Ebitengine] games: images with
// named visual effects, a particle engine, a screen manager with gated
// transitions, polled input with edge detection, a cursor, a button widget
// and a frame-strip animated sprite.
//
// # Quick start
//
// Create a [Context], register screens, and hand it to [Run], which opens
// a window and drives the frame loop:
//
//	ctx := ebitools.NewContext(os.DirFS("assets"), 800, 600)
//	ctx.Screens.AddScreen("title", &TitleScreen{})
//	ctx.Screens.AddScreen("game", &GameScreen{})
//	if err := ebitools.Run(ctx, ebitools.DefaultRunConfig()); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, implement [ebiten.Game] yourself and call
// InputManager.Update and ScreenManager.Update once per tick.
//
// # Screens and transitions
//
// Exactly one [Screen] is current. [ScreenManager.ChangeScreen] swaps
// immediately or runs a [ScreenTransition]. The transition only signals
// the instant to swap (DoChange); the manager unloads the old screen and
// loads the new one on that tick:
//
//	ctx.Screens.ChangeScreen("game", ebitools.NewFadeTransition(color.RGBA{A: 255}, 1))
//
// # Images and effects
//
// An [Image] carries any number of named [ImageEffect]s. Each runs only
// while active and the image is visible:
//
//	logo := ebitools.NewImage("logo.png", ebitools.Vec2{X: 400, Y: 300})
//	logo.AddEffect("pulse", ebitools.NewZoom(0.5,
//		ebitools.Vec2{X: 0.8, Y: 0.8}, ebitools.Vec2{X: 1, Y: 1}, false, true))
//	logo.ActivateEffect("pulse")
//
// # Particles
//
// A [ParticleEngine] spawns MaximumParticles particles every tick and
// removes them when their lifespan runs out. Configs load from YAML and
// can be hot-reloaded with a [ParticleReloader].
//
// # Input
//
// [InputManager] takes one snapshot per tick, so every "pressed" query in
// a tick agrees. Frames can be injected for scripted tests, and a
// [TestRunner] plays YAML scripts of key presses, clicks and screenshots.
//
// [Ebitengine]: https://ebitengine.org
package ebitools
