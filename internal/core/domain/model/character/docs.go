// Package character models the people of a series and what the catalog
// knows about them per entry.
//
// A Character belongs to one series and names the entry it occurs in first.
// An Info is a short text about a character as of a specific entry, so
// readers can look up what is known up to the entry they are at.
package character
