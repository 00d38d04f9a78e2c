package note

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTags(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "no tags",
			text: "just a plain note",
			want: nil,
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
		{
			name: "lowercase and trailing punctuation",
			text: "Buy milk #Shop! #shop #Important.",
			want: []string{"shop", "important"},
		},
		{
			name: "dedupe keeps first occurrence order",
			text: "#b #a #b #c",
			want: []string{"b", "a", "c"},
		},
		{
			name: "cap at five",
			text: "#one #two #three #four #five #six #seven",
			want: []string{"one", "two", "three", "four", "five"},
		},
		{
			name: "bare hash ignored",
			text: "this # is not a tag, neither is #",
			want: nil,
		},
		{
			name: "punctuation only after hash ignored",
			text: "#! #?? #work",
			want: []string{"work"},
		},
		{
			name: "mid-word hash is not a tag",
			text: "c#sharp stays out, #go stays in",
			want: []string{"go"},
		},
		{
			name: "mixed punctuation stripped",
			text: "call mom #family, then shop #urgent!;",
			want: []string{"family", "urgent"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTags(tt.text))
		})
	}
}

func TestExtractTagsProperties(t *testing.T) {
	got := ExtractTags("#A. #b! #C? #a #d: #e; #f #g")

	assert.LessOrEqual(t, len(got), 5)
	seen := map[string]bool{}
	for _, tag := range got {
		assert.Equal(t, tag, string([]rune(tag)), "tag round-trips")
		assert.False(t, seen[tag], "no duplicates")
		seen[tag] = true
		assert.NotContains(t, ".,!?:;", tag[len(tag)-1:])
	}
}

func TestTagCSVRoundTrip(t *testing.T) {
	tags := []string{"a", "b"}
	n := Note{Tags: JoinTags(tags)}

	assert.Equal(t, tags, n.TagList())
	assert.True(t, n.HasTag("a"))
	assert.True(t, n.HasTag("b"))
	assert.False(t, n.HasTag("c"))
	assert.False(t, n.HasTag("a,b"))
}

func TestSplitTagsEmpty(t *testing.T) {
	assert.Nil(t, SplitTags(""))
	assert.Equal(t, []string{"x"}, SplitTags("x"))
}
