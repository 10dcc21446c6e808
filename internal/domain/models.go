package domain

// Tag is a field name recognized in the cmus status line
type Tag string

const (
	// TagStatus is the playback status (playing, paused, stopped)
	TagStatus Tag = "status"
	// TagURL is set instead of TagFile when a stream is playing
	TagURL Tag = "url"
	// TagFile is the path of the current track
	TagFile        Tag = "file"
	TagArtist      Tag = "artist"
	TagAlbum       Tag = "album"
	TagDiscNumber  Tag = "discnumber"
	TagTrackNumber Tag = "tracknumber"
	TagTitle       Tag = "title"
	TagDate        Tag = "date"
	// TagDuration is the track length in seconds
	TagDuration Tag = "duration"
)

// Tags returns every recognized tag in the order cmus emits them
func Tags() []Tag {
	return []Tag{
		TagStatus,
		TagURL,
		TagFile,
		TagArtist,
		TagAlbum,
		TagDiscNumber,
		TagTrackNumber,
		TagTitle,
		TagDate,
		TagDuration,
	}
}

// LookupTag reports whether s is exactly the name of a recognized tag.
// Matching is case-sensitive.
func LookupTag(s string) (Tag, bool) {
	switch t := Tag(s); t {
	case TagStatus, TagURL, TagFile, TagArtist, TagAlbum,
		TagDiscNumber, TagTrackNumber, TagTitle, TagDate, TagDuration:
		return t, true
	}
	return "", false
}

// Metadata maps a tag to the text that followed it in the status line.
// Tags with no value are absent.
type Metadata map[Tag]string

// Get returns the value stored for tag and whether it was present
func (m Metadata) Get(tag Tag) (string, bool) {
	v, ok := m[tag]
	return v, ok
}

// Notification is a single desktop notification
type Notification struct {
	Summary string
	Body    string
	// Cover is optional album art shown next to the text
	Cover *CoverImage
}

// CoverImage holds raw pixels in the layout of the freedesktop
// "image-data" hint (iiibiiay)
type CoverImage struct {
	Width         int32
	Height        int32
	RowStride     int32
	HasAlpha      bool
	BitsPerSample int32
	Channels      int32
	Data          []byte
}
