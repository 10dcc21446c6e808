package parser

import (
	"reflect"
	"testing"

	"github.com/genricoloni/cmustify/internal/domain"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected domain.Metadata
	}{
		{
			name:  "Artist, album and multi-word title",
			input: "artist Todd album Reno title super song",
			expected: domain.Metadata{
				domain.TagArtist: "Todd",
				domain.TagAlbum:  "Reno",
				domain.TagTitle:  "super song",
			},
		},
		{
			name:  "Full cmus status line",
			input: "status playing file /music/Todd/Reno/01 - super song.flac artist Todd album Reno discnumber 1 tracknumber 1 title super song date 2004 duration 215",
			expected: domain.Metadata{
				domain.TagStatus:      "playing",
				domain.TagFile:        "/music/Todd/Reno/01 - super song.flac",
				domain.TagArtist:      "Todd",
				domain.TagAlbum:       "Reno",
				domain.TagDiscNumber:  "1",
				domain.TagTrackNumber: "1",
				domain.TagTitle:       "super song",
				domain.TagDate:        "2004",
				domain.TagDuration:    "215",
			},
		},
		{
			name:  "Stream url",
			input: "status playing url http://radio.example.com/stream title Live",
			expected: domain.Metadata{
				domain.TagStatus: "playing",
				domain.TagURL:    "http://radio.example.com/stream",
				domain.TagTitle:  "Live",
			},
		},
		{
			name:     "Empty value is omitted",
			input:    "artist title X",
			expected: domain.Metadata{domain.TagTitle: "X"},
		},
		{
			name:     "Trailing tag without value",
			input:    "title X artist",
			expected: domain.Metadata{domain.TagTitle: "X"},
		},
		{
			name:     "Last write wins",
			input:    "title A title B",
			expected: domain.Metadata{domain.TagTitle: "B"},
		},
		{
			name:     "Tokens before first tag are dropped",
			input:    "junk tokens title Foo",
			expected: domain.Metadata{domain.TagTitle: "Foo"},
		},
		{
			name:     "Repeated spaces are preserved",
			input:    "title a  b",
			expected: domain.Metadata{domain.TagTitle: "a  b"},
		},
		{
			name:     "Trailing space yields empty trailing token",
			input:    "title a ",
			expected: domain.Metadata{domain.TagTitle: "a "},
		},
		{
			name:     "Double space between tags keeps an empty value",
			input:    "artist  title X",
			expected: domain.Metadata{domain.TagArtist: "", domain.TagTitle: "X"},
		},
		{
			name:     "Tag names are case-sensitive",
			input:    "title Title TITLE",
			expected: domain.Metadata{domain.TagTitle: "Title TITLE"},
		},
		{
			name:     "Sentinel text is plain value",
			input:    "!break! x title !break! y",
			expected: domain.Metadata{domain.TagTitle: "!break! y"},
		},
		{
			name:     "Empty input",
			input:    "",
			expected: domain.Metadata{},
		},
		{
			name:     "Only tags",
			input:    "status url file artist album discnumber tracknumber title date duration",
			expected: domain.Metadata{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Parse(%q)\n got: %#v\nwant: %#v", tt.input, got, tt.expected)
			}
		})
	}
}

// TestParse_KeysAreRecognizedTags checks that no input produces a key
// outside the recognized tag set.
func TestParse_KeysAreRecognizedTags(t *testing.T) {
	inputs := []string{
		"",
		" ",
		"!break!",
		"title !break! artist !break!",
		"foo bar baz",
		"status status status",
		"artist \t tab title\nnewline",
		"title ünïcödé artist 坂本龍一",
	}

	for _, input := range inputs {
		for key := range Parse(input) {
			if _, ok := domain.LookupTag(string(key)); !ok {
				t.Errorf("Parse(%q) produced unrecognized key %q", input, key)
			}
		}
	}
}

func TestParse_ReturnsFreshMetadata(t *testing.T) {
	first := Parse("title A")
	first[domain.TagArtist] = "mutated"

	second := Parse("title A")
	if _, ok := second[domain.TagArtist]; ok {
		t.Error("Parse must not share state between calls")
	}
}
