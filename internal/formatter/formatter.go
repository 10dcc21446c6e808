package formatter

import "github.com/genricoloni/cmustify/internal/domain"

// UnknownTitle is shown when the status line carries no title or an empty one
const UnknownTitle = "Unknown"

// FormatNotificationBody renders m as "<title> by <artist>, <album>".
// The album is only appended together with the artist.
func FormatNotificationBody(m domain.Metadata) string {
	body, ok := m.Get(domain.TagTitle)
	if !ok || body == "" {
		body = UnknownTitle
	}

	if artist, ok := m.Get(domain.TagArtist); ok {
		body += " by " + artist
		if album, ok := m.Get(domain.TagAlbum); ok {
			body += ", " + album
		}
	}

	return body
}
