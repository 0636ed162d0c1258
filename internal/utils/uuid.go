package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// UUID is a validated universally unique identifier in canonical text form
// (8-4-4-4-12 lower-case hex groups). Values of this type are only
// constructed through [ParseUUID] or [UUIDGenerator.Generate], so an invalid
// identifier is unrepresentable once a UUID exists.
type UUID string

// String returns the canonical text form of the identifier.
// Implements the fmt.Stringer interface.
func (u UUID) String() string {
	return string(u)
}

// IsValidUUID reports whether s matches the canonical UUID textual grammar:
// five hyphen-separated groups of 8, 4, 4, 4 and 12 hex digits,
// case-insensitive. It is a total function and never panics.
//
// Note that [uuid.Parse] alone is too lenient for this purpose — it also
// accepts URN-prefixed, braced, and hyphen-less forms — so the group layout
// is checked explicitly first.
func IsValidUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}

	_, err := uuid.Parse(s)
	return err == nil
}

// ParseUUID validates s against the canonical UUID grammar and returns it as
// a [UUID] normalized to lower case.
//
// This is the constructor counterpart of [IsValidUUID]: call sites that
// require a guaranteed-valid value use ParseUUID and handle the error, while
// boolean checks use IsValidUUID.
func ParseUUID(s string) (UUID, error) {
	if !IsValidUUID(s) {
		return "", fmt.Errorf("invalid UUID format: %q", s)
	}

	parsed, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid UUID format: %q", s)
	}

	return UUID(parsed.String()), nil
}

// UUIDGenerator produces fresh identifiers for newly created records.
type UUIDGenerator struct {
}

// NewUUIDGenerator constructs a UUIDGenerator.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new random identifier. Version 7 is preferred for its
// time-ordered layout; on the (practically impossible) failure of the OS
// entropy source it falls back to version 4.
func (g *UUIDGenerator) Generate() UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return UUID(uuid.NewString())
	}

	return UUID(v7.String())
}
