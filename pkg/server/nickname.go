package server

import (
	"regexp"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

const maxNickLength = 16

var nickRegexp = regexp.MustCompile(`[^a-zA-Z0-9_\-]+`)

// anonymousUsers get a generated nickname instead of their login name.
var anonymousUsers = map[string]bool{
	"":          true,
	"anonymous": true,
	"guest":     true,
	"root":      true,
}

// Nickname turns an ssh user name into a display name.
func Nickname(user string) string {
	nick := nickRegexp.ReplaceAllString(user, "")
	if anonymousUsers[strings.ToLower(nick)] {
		nick = petname.Generate(2, "-")
	}

	if len(nick) > maxNickLength {
		nick = nick[:maxNickLength]
	}
	return nick
}
