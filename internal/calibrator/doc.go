// Package calibrator provides the record types shared by the scraper,
// storage, and query sides of the tool.
//
// A Calibrator couples a required J2000 position header with an optional
// B1950 header and the ordered list of per-band observation entries parsed
// from the NRAO calibrator list. Numeric observation fields (flux, UV range)
// are carried as the exact source tokens; the empty string means the value
// could not be recovered and is never substituted with a zero.
package calibrator
