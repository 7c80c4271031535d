// Package game describes the supported games and where each one keeps its
// effect references.
//
// Profiles are embedded as YAML and resolved either explicitly by key or by
// detecting the game's install folder name in the game directory path.
//
// # Usage
//
//	profile, err := game.Detect(`D:\Steam\steamapps\common\ELDEN RING\Game`)
//	if errors.Is(err, game.ErrUnsupportedGame) {
//	    ...
//	}
//	fmt.Println(profile.Name) // Elden Ring
package game
