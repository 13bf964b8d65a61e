package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLabelTag(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"user/1000/label/x", "user/-/label/x"},
		{"user/-/label/x", "user/-/label/x"},
		{"user/42/state/com.google/starred", Starred},
		{Read, Read},
		{"user/abc/label/x", "user/abc/label/x"},
		{"user/1000/label/a/b", "user/-/label/a/b"},
		{"feed/https://example.com/rss", "feed/https://example.com/rss"},
		{"user/1000", "user/1000"},
		{"", ""},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got := NormalizeLabelTag(tc.in)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got, NormalizeLabelTag(got), "normalize must be idempotent")
		})
	}
}

func TestNormalizeLabelTag_BothShapesAgree(t *testing.T) {
	assert.Equal(t, NormalizeLabelTag("user/1000/label/x"), NormalizeLabelTag("user/-/label/x"))
	assert.Equal(t, "user/-/label/x", NormalizeLabelTag("user/-/label/x"))
}

func TestNamespaces(t *testing.T) {
	assert.True(t, IsState(Starred))
	assert.True(t, IsState("user/7/state/com.google/read"))
	assert.True(t, IsState("user/-/state/org.freshrss/favorite"))
	assert.False(t, IsState("user/-/label/AI"))

	assert.True(t, IsLabel("user/1000/label/AI"))
	assert.False(t, IsLabel("user/-/label/"))
	assert.False(t, IsLabel(Starred))

	name, ok := LabelName("user/1000/label/AI")
	assert.True(t, ok)
	assert.Equal(t, "AI", name)
	assert.Equal(t, "user/-/label/AI", Label("AI"))
}

func TestNormalize_Dedups(t *testing.T) {
	got := Normalize([]string{"user/1000/label/x", "user/-/label/x", Read})
	assert.Equal(t, []string{"user/-/label/x", Read}, got)
	assert.NotNil(t, Normalize(nil))
}

func TestDiff(t *testing.T) {
	current := []string{"user/1000/label/keep", "user/1000/label/drop"}
	desired := []string{"user/-/label/keep", "user/-/label/new"}

	toAdd, toRemove := Diff(current, desired)
	assert.Equal(t, []string{"user/-/label/new"}, toAdd)
	assert.Equal(t, []string{"user/-/label/drop"}, toRemove)
}

func TestDiff_NumericOwnerIsNotNew(t *testing.T) {
	toAdd, toRemove := Diff([]string{"user/1000/label/x"}, []string{"user/-/label/x"})
	assert.Empty(t, toAdd)
	assert.Empty(t, toRemove)
}

func TestWithWithout(t *testing.T) {
	list := With([]string{"user/1000/label/x"}, Read)
	assert.Equal(t, []string{"user/-/label/x", Read}, list)
	assert.Equal(t, list, With(list, Read))

	assert.Equal(t, []string{Read}, Without(list, "user/1000/label/x"))
}

func TestLabels(t *testing.T) {
	got := Labels([]string{Starred, "user/9/label/a", "feed/1", "user/-/label/b"})
	assert.Equal(t, []string{"user/-/label/a", "user/-/label/b"}, got)
}
