// Package param extracts effect ids from decoded game parameter tables.
//
// A table has typed columns and rows of cell values. Every signed 32-bit
// column whose display name mentions "fx" is treated as an effect id
// column. The status effect table is excluded by the game profile.
package param
