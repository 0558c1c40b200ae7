package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpalis/anki-flashcard-automation/internal/domain"
)

func TestWord(t *testing.T) {
	t.Parallel()

	got := Word("nimble")
	assert.Equal(t,
		`<span style="color: #0000FF; font-weight: bold; font-size: 20px;">nimble</span>`,
		got)
}

func TestImage(t *testing.T) {
	t.Parallel()

	got := Image("nimble.jpg")
	assert.Equal(t, `<img src="nimble.jpg" style="max-width: 100%; height: auto;">`, got)
}

func TestContent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "single block keeps line breaks",
			in:   "A\nB\n\nC",
			want: "A<br>B<br><br>C",
		},
		{
			name: "blank line run collapses to one rendered blank line",
			in:   "A\n\n\n\nB",
			want: "A<br><br>B",
		},
		{
			name: "leading and trailing blank lines dropped",
			in:   "\n\nfirst\nsecond\n\n",
			want: "first<br>second",
		},
		{
			name: "angle brackets escaped",
			in:   "x < y\ny > z",
			want: "x &lt; y<br>y &gt; z",
		},
		{
			name: "lines trimmed inside blocks",
			in:   "  a  \n  b  ",
			want: "a<br>b",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "only blank lines",
			in:   "\n \n\t\n",
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Content(tc.in))
		})
	}
}

func TestContentIdempotentOnNormalizedInput(t *testing.T) {
	t.Parallel()

	// Input whose blank lines are already normalized renders the same
	// block structure when the plain-text equivalent is rendered again.
	in := "A\nB\n\nC"
	first := Content(in)
	second := Content(strings.ReplaceAll(strings.ReplaceAll(first, "<br><br>", "\n\n"), "<br>", "\n"))
	assert.Equal(t, first, second)
}

func TestCardOrientationAsymmetry(t *testing.T) {
	t.Parallel()

	imageToWord := Card(domain.ImageToWord, "cat", "X", "cat.jpg")
	wordToImage := Card(domain.WordToImage, "cat", "X", "cat.jpg")

	assert.Equal(t, Image("cat.jpg"), imageToWord.Front)
	assert.Equal(t, Word("cat"), wordToImage.Front)

	// Image-front back: word, two line breaks, content.
	assert.Equal(t, Word("cat")+"<br><br>X", imageToWord.Back)

	// Word-front back: image, exactly one line break, content — no
	// restated word.
	assert.Equal(t, Image("cat.jpg")+"<br>X", wordToImage.Back)
	assert.NotContains(t, wordToImage.Back, Word("cat"))

	require.NotEqual(t, imageToWord.Back, wordToImage.Back)
}

func TestCardsOrder(t *testing.T) {
	t.Parallel()

	cards := Cards("cat", "X", "cat.jpg")
	require.Len(t, cards, 2)
	assert.Equal(t, Card(domain.ImageToWord, "cat", "X", "cat.jpg"), cards[0])
	assert.Equal(t, Card(domain.WordToImage, "cat", "X", "cat.jpg"), cards[1])
}
