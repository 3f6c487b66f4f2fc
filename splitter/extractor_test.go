package splitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindMarkers(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		marker string
		want   []Marker
	}{
		{name: "none", text: "plain text", marker: OpeningMarker, want: nil},
		{name: "adjacent", text: "<pjd><pjd>", marker: OpeningMarker, want: []Marker{{0, 5}, {5, 5}}},
		{name: "closing only", text: "a</pjd>b<pjd>", marker: ClosingMarker, want: []Marker{{1, 6}}},
		{name: "non-overlapping", text: "aaaa", marker: "aa", want: []Marker{{0, 2}, {2, 2}}},
		{name: "empty marker", text: "abc", marker: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindMarkers(tt.text, tt.marker))
		})
	}
}

func TestExtract(t *testing.T) {
	text := "noise <pjd><command>run</command></pjd> middle <pjd><command>stop</command></pjd> tail"

	fragments, err := Extract(text)
	require.NoError(t, err)
	require.Len(t, fragments, 2)

	assert.Equal(t, "<pjd><command>run</command></pjd>", fragments[0].Text)
	assert.Equal(t, "<pjd><command>stop</command></pjd>", fragments[1].Text)
	for i, f := range fragments {
		assert.Equal(t, i, f.Index)
		assert.Equal(t, text[f.Start:f.End], f.Text)
	}
}

func TestExtract_NoFragments(t *testing.T) {
	fragments, err := Extract("nothing to see here")
	require.NoError(t, err)
	assert.Empty(t, fragments)
}

func TestExtract_CountMismatch(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		open, close int
	}{
		{name: "missing close", text: "<pjd><command>build</command>", open: 1, close: 0},
		{name: "extra close", text: "<pjd></pjd></pjd>", open: 1, close: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.text)
			var mismatch *MarkerCountMismatchError
			require.ErrorAs(t, err, &mismatch)
			assert.Equal(t, tt.open, mismatch.Open)
			assert.Equal(t, tt.close, mismatch.Close)
		})
	}
}

func TestExtract_PositionalPairing(t *testing.T) {
	// Nested markers are paired by order of appearance, not by depth.
	text := "<pjd>a<pjd>b</pjd>c</pjd>"

	fragments, err := Extract(text)
	require.NoError(t, err)
	require.Len(t, fragments, 2)
	assert.Equal(t, "<pjd>a<pjd>b</pjd>", fragments[0].Text)
	assert.Equal(t, "<pjd>b</pjd>c</pjd>", fragments[1].Text)
}

func TestExtract_Misordered(t *testing.T) {
	_, err := Extract("</pjd> text <pjd>")

	var misordered *MisorderedMarkersError
	require.ErrorAs(t, err, &misordered)
	assert.Equal(t, 0, misordered.Index)
}
