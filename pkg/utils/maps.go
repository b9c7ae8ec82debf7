package utils

import "strings"

const GoogleMapsSearchPrefix = "https://www.google.com/maps/search/?api=1&query="

// GoogleMapsURL builds the fixed-format map search link used for every
// physical offering. Spaces in both parts become '+'.
func GoogleMapsURL(name, city string) string {
	return GoogleMapsSearchPrefix + plusSpaces(name) + "," + plusSpaces(city)
}

// IsGoogleMapsURL reports whether s follows the GoogleMapsURL format.
func IsGoogleMapsURL(s string) bool {
	if !strings.HasPrefix(s, GoogleMapsSearchPrefix) {
		return false
	}
	query := strings.TrimPrefix(s, GoogleMapsSearchPrefix)
	return query != "" && !strings.Contains(query, " ")
}

func plusSpaces(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), " ", "+")
}
