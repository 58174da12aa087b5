// ABOUTME: Normalizes auth responses from the backend into a single shape
// ABOUTME: One alias table maps every accepted server field name onto our fields

package session

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/client"
)

// fieldAliases lists, per internal field, the server paths accepted in
// order of preference
var fieldAliases = map[string][]string{
	"token":    {"token", "accessToken", "access_token", "jwt", "data.token"},
	"username": {"username", "userName", "user_name", "user.username", "user.userName"},
	"role":     {"role", "userRole", "user_role", "user.role"},
	"userId":   {"userId", "user_id", "id", "user.id", "user.userId"},
	"message":  {"message", "msg"},
}

func lookup(doc gjson.Result, field string) gjson.Result {
	for _, path := range fieldAliases[field] {
		if r := doc.Get(path); r.Exists() && r.Type != gjson.Null {
			return r
		}
	}
	return gjson.Result{}
}

// normalizeRole lower-cases role and defaults it to user
func normalizeRole(role string) string {
	role = strings.ToLower(strings.TrimSpace(role))
	if role == "" {
		return RoleUser
	}
	return role
}

// parseAuthResponse validates body once at the boundary. A response that
// carries no token is rejected.
func parseAuthResponse(body []byte) (*AuthResponse, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: auth response is not JSON", client.ErrInvalidResponse)
	}
	doc := gjson.ParseBytes(body)

	token := lookup(doc, "token").String()
	if token == "" {
		return nil, fmt.Errorf("%w: auth response has no token", client.ErrInvalidResponse)
	}

	return &AuthResponse{
		Token:    token,
		Username: lookup(doc, "username").String(),
		Role:     lookup(doc, "role").String(),
		UserID:   int(lookup(doc, "userId").Int()),
		Message:  lookup(doc, "message").String(),
	}, nil
}

// parseUserInfo reads identity fields without requiring a token
func parseUserInfo(body []byte) (*UserInfo, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: user info is not JSON", client.ErrInvalidResponse)
	}
	doc := gjson.ParseBytes(body)
	return &UserInfo{
		Username: lookup(doc, "username").String(),
		Role:     normalizeRole(lookup(doc, "role").String()),
		UserID:   int(lookup(doc, "userId").Int()),
	}, nil
}
