package domain

import (
	"strings"
	"time"
	"unicode"
)

// User models a farmer account. Identity is derived from the phone number, so
// the same phone always resolves to the same user id.
type User struct {
	ID        string    `json:"id"`
	Phone     string    `json:"phone"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// UserIDFromPhone maps a phone number to its deterministic user id by
// stripping every non-digit rune: "+91 98765-43210" → "user_919876543210".
func UserIDFromPhone(phone string) string {
	var b strings.Builder
	b.WriteString("user_")
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
