package service

import "strconv"

// parseID converts a raw path identifier into a positive integer.
// Parsing is strict: trailing characters or non-positive values fail, so
// "3abc" never silently matches entity 3. Callers translate a failed
// parse into the target entity's not-found error.
func parseID(raw string) (int, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
