// Package models contains the song, artist, and company entities exchanged
// with the catalog API, plus the aggregate bundle assembled for the detail
// view.
package models
