package utils

import (
	"math/rand"
)

// GenerateID generates a random ID for domain records (trips, events,
// expenses and the like). Session tokens use UUIDs instead.
func GenerateID() string {
	return generateRandomString(IDCharset, IDLength)
}

// generateRandomString generates a random string with given charset and length
func generateRandomString(charset string, length int) string {
	result := make([]byte, length)
	for i := range result {
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
