// Package avatar picks a stable emoji for users without a profile image.
package avatar

import "github.com/cespare/xxhash/v2"

// Emojis is the fixed set avatars are drawn from. Order is part of the
// contract: changing it reassigns every user's avatar.
var Emojis = []string{
	"🐶", "🐱", "🐭", "🐹", "🐰", "🦊", "🐻", "🐼",
	"🐨", "🐯", "🦁", "🐮", "🐷", "🐸", "🐵", "🐔",
	"🐧", "🐦", "🐤", "🦆", "🦉", "🦄", "🐝", "🦋",
	"🐢", "🐙", "🦑", "🐬", "🐳", "🦈", "🦩", "🦔",
}

// At returns the emoji at index i, wrapping around in both directions.
func At(i int) string {
	n := len(Emojis)
	return Emojis[((i%n)+n)%n]
}

// ForKey deterministically maps key (usually a user id) to an emoji.
// An empty key maps to the first emoji.
func ForKey(key string) string {
	if key == "" {
		return Emojis[0]
	}
	return Emojis[xxhash.Sum64String(key)%uint64(len(Emojis))]
}
