// Package player dispatches an input file to image conversion or video
// playback based on its extension.
//
// All settings travel in an explicit [Options] value; there is no package
// state. [Config] binds the same options to command-line flags, and the
// launcher form in package form produces an [Options] directly.
//
//	p, err := player.New(player.DefaultOptions(), display.Stdout())
//	done, err := p.Play(ctx, "clip.mp4")
//	<-done
package player
