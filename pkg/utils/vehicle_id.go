package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateVehicleID creates a human-readable vehicle ID.
// Format: {brandSlug}-{8charHexUUID}
//
// Example:
//   - Input: brand="Alfa Romeo"
//   - Output: "alfa-romeo-a3f8e2b1"
//
// An empty brand falls back to "vehicle".
func GenerateVehicleID(brand string) string {
	return slugify(brand) + "-" + generateShortUUID()
}

// slugify lowercases a label and joins its words with hyphens
//   - "Alfa Romeo" -> "alfa-romeo"
//   - "  BMW " -> "bmw"
//   - "" -> "vehicle"
func slugify(label string) string {
	words := strings.Fields(strings.ToLower(label))
	if len(words) == 0 {
		return "vehicle"
	}
	return strings.Join(words, "-")
}

// generateShortUUID creates an 8-character hex string from a UUID.
func generateShortUUID() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")[:8]
}
