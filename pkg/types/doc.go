// Package types defines the card record, the Lookup and Store interfaces,
// and the standard errors shared by the moracle store, ingester and
// renderers.
package types
