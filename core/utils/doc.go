// Package utils provides small helpers shared by the scanners: bounded
// integer reads over decoded argument buffers and loose numeric conversion
// of table cell values.
package utils
