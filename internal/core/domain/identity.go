package domain

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

const (
	// DefaultInitials is shown when no usable name is available.
	DefaultInitials = "U"
	// NeutralAvatarColor is used for users without a name.
	NeutralAvatarColor = "bg-gray-500"

	// SuperAdminAccountType marks the platform owner's client record.
	SuperAdminAccountType = "root"
	superAdminClientID    = 1
)

// AvatarPalette lists the avatar background tokens, indexed by name hash.
var AvatarPalette = [10]string{
	"bg-red-500",
	"bg-orange-500",
	"bg-amber-500",
	"bg-green-500",
	"bg-teal-500",
	"bg-blue-500",
	"bg-indigo-500",
	"bg-purple-500",
	"bg-pink-500",
	"bg-rose-500",
}

// DerivedIdentity is the avatar badge shown next to a user or client.
type DerivedIdentity struct {
	Initials         string `json:"initials"`
	AvatarColorClass string `json:"avatar_color_class"`
}

// DeriveIdentity computes the badge for a display name.
func DeriveIdentity(name *string) DerivedIdentity {
	return DerivedIdentity{
		Initials:         Initials(name),
		AvatarColorClass: AvatarColor(name),
	}
}

// Initials returns up to two upper-cased letters for a display name:
// the first two runes of a single word, or the first rune of each of the
// first two words.
func Initials(fullName *string) string {
	if fullName == nil {
		return DefaultInitials
	}
	words := strings.Fields(*fullName)

	var out []rune
	switch len(words) {
	case 0:
		return DefaultInitials
	case 1:
		out = []rune(words[0])
		if len(out) > 2 {
			out = out[:2]
		}
	default:
		out = []rune{firstRune(words[0]), firstRune(words[1])}
	}

	initials := strings.ToUpper(string(out))
	if initials == "" {
		return DefaultInitials
	}
	return initials
}

func firstRune(word string) rune {
	r, _ := utf8.DecodeRuneInString(word)
	return r
}

// AvatarColor maps a name onto AvatarPalette. The hash accumulates
// h = h*31 + c over the name's UTF-16 code units in 32-bit arithmetic.
func AvatarColor(name *string) string {
	if name == nil {
		return NeutralAvatarColor
	}
	var h int32
	for _, c := range utf16.Encode([]rune(*name)) {
		h = h*31 + int32(c)
	}
	idx := int64(h)
	if idx < 0 {
		idx = -idx
	}
	return AvatarPalette[idx%int64(len(AvatarPalette))]
}

// IsSuperAdmin reports whether client belongs to the platform owner.
func IsSuperAdmin(client *Client) bool {
	if client == nil {
		return false
	}
	return client.AccountType == SuperAdminAccountType || client.ID.Number() == superAdminClientID
}
