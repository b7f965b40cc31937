package listdoc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const todaysTodos = `title: Today's Todos
items:
  - title: Buy milk
    description: 2 litres
  - title: Clean room
    done: true
  - title: Go to gym
    due: 2017-04-15
`

func TestDecode(t *testing.T) {
	l, err := Decode(strings.NewReader(todaysTodos))
	require.NoError(t, err)

	assert.Equal(t, "Today's Todos", l.Title())
	require.Equal(t, 3, l.Len())
	assert.Equal(t, "2 litres", l.First().Description)

	want := "---- Today's Todos ----\n" +
		"[ ] Buy milk\n" +
		"[X] Clean room\n" +
		"[ ] Go to gym (Due: Saturday April 15)"
	assert.Equal(t, want, l.String())
}

func TestDecodeEmpty(t *testing.T) {
	l, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultTitle, l.Title())
	assert.Equal(t, 0, l.Len())
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "empty item title",
			input:   "items:\n  - title: ok\n  - title: '  '\n",
			wantErr: "item 2: empty title",
		},
		{
			name:    "bad due date",
			input:   "items:\n  - title: gym\n    due: next week\n",
			wantErr: `item 1: due date "next week"`,
		},
		{
			name:    "not yaml mapping",
			input:   "- just\n- a list\n",
			wantErr: "yaml decode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, err := Decode(strings.NewReader("items:\n  - done: true\n"))
	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestEncodeRoundTrip(t *testing.T) {
	l, err := Decode(strings.NewReader(todaysTodos))
	require.NoError(t, err)
	l.MarkDoneByTitle("Buy milk")

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, l))
	assert.Contains(t, buf.String(), "2017-04-15")

	again, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, l.String(), again.String())
}
