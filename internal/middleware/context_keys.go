package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the key used to store the authenticated user's ID in the context.
const userIDKey = contextKey("userID")

// userEmailKey is the key used to store the authenticated user's email in the context.
const userEmailKey = contextKey("userEmail")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		userIDVal := c.Request.Context().Value(userIDKey)
		if userIDVal != nil {
			return userIDVal.(string), true
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}

	return userID, true
}

// GetUserEmailFromContext retrieves the authenticated user's email from the
// Gin context. It returns the email and a boolean indicating if it was found.
func GetUserEmailFromContext(c *gin.Context) (string, bool) {
	emailVal, exists := c.Get(string(userEmailKey))
	if !exists {
		emailVal := c.Request.Context().Value(userEmailKey)
		if emailVal != nil {
			return emailVal.(string), true
		}
		return "", false
	}

	email, ok := emailVal.(string)
	if !ok {
		return "", false
	}

	return email, true
}

// SubjectMatches reports whether the authenticated subject in the context
// is the same account as ownerID. Handlers use it to reject requests that
// address another account's data.
func SubjectMatches(c *gin.Context, ownerID string) bool {
	userID, ok := GetUserIDFromContext(c)
	return ok && userID == ownerID
}
