package csvdata

import (
	"os"
	"path/filepath"
	"strings"

	"startup-directory-api/utils"
)

// FounderImageResolver maps a founder's display name to a portrait URL.
type FounderImageResolver interface {
	Resolve(name string) string
}

// DirImageResolver looks portraits up in a local directory by exact
// filename match (minus extension, case-insensitive). No fuzzy matching.
type DirImageResolver struct {
	// Dir is the directory holding portrait files.
	Dir string
	// BaseURL prefixes matched filenames in the returned URL, e.g. "/founders".
	BaseURL string
}

// Resolve returns the portrait URL for the named founder, or a
// generated-avatar URL on no match or any filesystem error.
func (d DirImageResolver) Resolve(name string) string {
	if file, ok := d.matchFile(name); ok {
		return strings.TrimSuffix(d.BaseURL, "/") + "/" + filepath.Base(file)
	}
	return utils.AvatarURL(name)
}

// ResolveFile returns the local path of a matched portrait file, for
// callers that need the bytes rather than a URL.
func (d DirImageResolver) ResolveFile(name string) (string, bool) {
	return d.matchFile(name)
}

func (d DirImageResolver) matchFile(name string) (string, bool) {
	entries, err := os.ReadDir(d.Dir)
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		base := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if strings.EqualFold(base, name) {
			return filepath.Join(d.Dir, entry.Name()), true
		}
	}
	return "", false
}

// AvatarResolver always falls back to generated avatars. Used when no
// portrait directory is available.
type AvatarResolver struct{}

func (AvatarResolver) Resolve(name string) string {
	return utils.AvatarURL(name)
}
