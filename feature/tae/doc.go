// Package tae extracts effect ids from decoded animation timelines.
//
// A timeline holds animations and each animation holds typed events with a
// raw parameter buffer. Effect-spawning event types carry an effect id at
// parameter offset 0; one multi-effect type carries several ids laid out
// with a fixed stride.
package tae
