// Package dump reads decoded game records produced by an external asset
// dumper.
//
// The dumper unpacks the game's archives and writes one JSON document per
// asset, mirroring the game directory layout:
//
//	chr/*.anibnd.json          animation binders (tae.Binder)
//	obj/*.objbnd.json          object binders with an optional embedded anibnd
//	map/mapstudio/*.msb.json   map scenes (msb.Map)
//	param/*.param.json         parameter tables (param.Table)
//	event/*.emevd.json         event scripts (emevd.Script)
//
// Every document may also be stored zstd-compressed with an extra ".zst"
// suffix. Byte buffers are base64 encoded, which is what encoding/json style
// decoders produce for []byte fields.
//
// Missing folders are not an error. Documents that fail to decode are logged
// and skipped so one bad asset never aborts a scan.
package dump
