// Package storage persists calibrator collections as XML files.
//
// The on-disk format is a <calibrators> document whose records carry a
// <header> with the J2000 and optional B1950 positions and a <bands> list
// of observations. Field elements are always written, with empty text for
// values absent from the source, so a record round-trips without losing
// the distinction between absent and zero.
package storage
