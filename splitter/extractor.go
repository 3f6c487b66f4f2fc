package splitter

import "strings"

const (
	OpeningMarker = "<pjd>"
	ClosingMarker = "</pjd>"
)

// Marker is one occurrence of a marker string in the source text.
type Marker struct {
	Offset int
	Len    int
}

// End returns the offset just past the marker.
func (m Marker) End() int { return m.Offset + m.Len }

// Fragment is the text between a paired opening and closing marker,
// both markers included.
type Fragment struct {
	Index int
	Start int
	End   int
	Text  string
}

// FindMarkers returns every non-overlapping occurrence of marker in text,
// scanning left to right.
func FindMarkers(text, marker string) []Marker {
	if marker == "" {
		return nil
	}

	var markers []Marker
	pos := 0
	for {
		i := strings.Index(text[pos:], marker)
		if i < 0 {
			return markers
		}
		markers = append(markers, Marker{Offset: pos + i, Len: len(marker)})
		pos += i + len(marker)
	}
}

// Extract locates all fragments in text. The n-th opening marker is paired
// with the n-th closing marker regardless of nesting, so the counts must
// match exactly.
func Extract(text string) ([]Fragment, error) {
	opening := FindMarkers(text, OpeningMarker)
	closing := FindMarkers(text, ClosingMarker)
	if len(opening) != len(closing) {
		return nil, &MarkerCountMismatchError{Open: len(opening), Close: len(closing)}
	}

	fragments := make([]Fragment, 0, len(opening))
	for i := range opening {
		if closing[i].Offset < opening[i].Offset {
			return nil, &MisorderedMarkersError{Index: i, Open: opening[i].Offset, Close: closing[i].Offset}
		}
		start, end := opening[i].Offset, closing[i].End()
		fragments = append(fragments, Fragment{
			Index: i,
			Start: start,
			End:   end,
			Text:  text[start:end],
		})
	}
	return fragments, nil
}
