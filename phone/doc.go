// Package phone parses, validates, and classifies East African telephone
// numbers, with a metadata-driven fallback for the rest of the world.
//
// Input in any of the shapes people actually type ("+255 712 345 678",
// "0712-345-678", "255712345678") is normalized to one canonical E.164-style
// representation. Countries with a specialized rule set (Tanzania, Kenya)
// additionally get exact-length and operator-prefix validation, and their
// numbers carry the owning mobile network operator and its mobile-money
// brand. Every other country is validated against per-type regular
// expressions from the embedded dialing metadata.
//
// A Number can only be obtained through Parse or ParseWithOptions; there is
// no way to construct one that skipped validation. All operations are pure
// and safe for concurrent use. The embedded metadata is loaded once, on
// first use or via an explicit Initialize call.
package phone
