package models

// Document is one raw note loaded from disk.
// ID is the file's base name; the date label is derived from it.
type Document struct {
	ID   string
	Path string
	Text string
}
