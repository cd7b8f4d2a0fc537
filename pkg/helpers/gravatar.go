package helpers

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// GravatarURL builds the avatar URL snapshot stored on users, posts and
// comments: 200px, pg-rated, "mm" default image.
func GravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return "https://www.gravatar.com/avatar/" + hex.EncodeToString(sum[:]) + "?s=200&r=pg&d=mm"
}
