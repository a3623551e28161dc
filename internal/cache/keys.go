package cache

import "strings"

const (
	GlobalKeyPrefix = "quizdump"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// AIContentKey is the key of one generated text, one per (kind, question, language).
func AIContentKey(kind, questionID, language string) string {
	return GenerateCacheKey("ai", kind, questionID, language)
}

// SessionAnswersKey is the hash holding question id -> letters for a session.
func SessionAnswersKey(sessionID string) string {
	return GenerateCacheKey("answers", "session", sessionID)
}
