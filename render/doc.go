// Package render runs the lizard in an Ebitengine window.
//
// [Run] opens a resizable window and drives an [App], the application
// context that owns the creature, the fullscreen state and the per-frame
// input. Each update reads the pointer (or an injected event), applies the
// F11 and Esc commands, advances the creature with a clock of frames/TPS
// and hands the resulting Pose to an optional [PoseSink]. Each draw clears
// the screen to black and paints the Pose with antialiased vector shapes.
//
// # Scripted runs
//
// A JSON script loaded with [LoadTestScript] replaces the pointer with
// injected moves and glides, can toggle fullscreen, capture screenshots
// and quit. Scripted runs are frame-exact and reproducible:
//
//	runner, err := render.LoadTestScript(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = render.Run(render.RunConfig{Script: runner, ShowHint: true})
//
// # Icon
//
// The window icon is generated by [GenerateIcon] unless RunConfig.IconPath
// names a PNG. Icon failures are logged and never stop the program.
package render
