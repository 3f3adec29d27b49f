// Package match suggests the closest known type name for a misspelled one.
// Names are compared by edit distance after Normalize.
package match
