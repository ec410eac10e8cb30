package utils

import "net/url"

// AvatarURL builds a generated-avatar image URL for entities that have no
// uploaded logo or portrait. Keyed by display name.
func AvatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=random&size=256"
}
