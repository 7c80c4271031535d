// Package msb extracts effect ids from decoded map scene regions.
//
// Two region kinds place effects: plain SFX regions and wind-driven SFX
// regions. Both carry a typed effect id, no offset arithmetic is involved.
package msb
