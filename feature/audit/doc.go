// Package audit finds which effect ids of a reference list a game still uses.
//
// A run loads the reference csv, resolves the game profile from the dump
// directory, scans every source family in parallel into one reconcile.Recorder
// and writes three reports: the unused reference ids, every used id and the
// used ids missing from the reference list. Runs can optionally be stored in
// the history database and published to object storage.
//
// # Usage
//
//	svc := audit.NewService(audit.Options{Game: cfg.Game, Output: cfg.Output, Scan: cfg.Scan}, log)
//	res, err := svc.Run(ctx, "ds3_fxr.csv")
package audit
