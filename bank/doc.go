// Package bank is a static registry of Tanzanian and Kenyan commercial
// banks keyed by SWIFT/BIC code and by name, plus standalone ISO 9362
// SWIFT code validation.
//
// The registry ships embedded in the binary; lookups never touch the
// network or the filesystem. When a short name is used by banking groups
// in several countries ("Equity", "KCB"), name lookup returns the
// Tanzanian member first; use the full name or the SWIFT code to
// disambiguate.
package bank
