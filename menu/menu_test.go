package menu_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"newsfeed/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const clearScreen = "\x1b[2J"

type fakeChooser struct {
	choice  string
	err     error
	message string
	options []string
	calls   int
}

func (f *fakeChooser) Choose(message string, options []string) (string, error) {
	f.calls++
	f.message = message
	f.options = options
	return f.choice, f.err
}

func TestPresentSelected(t *testing.T) {
	var buf bytes.Buffer
	chooser := &fakeChooser{choice: "MediaFax"}

	name, ok, err := menu.New(&buf, chooser).Present([]string{"TVR", "MediaFax"})

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "MediaFax", name)
	assert.Equal(t, "Select your news feed: ", chooser.message)
	assert.Equal(t, []string{"TVR", "MediaFax"}, chooser.options)

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, clearScreen))
	assert.True(t, strings.HasSuffix(out, "MediaFax\n"))
}

func TestPresentCancelled(t *testing.T) {
	var buf bytes.Buffer
	chooser := &fakeChooser{err: menu.ErrCancelled}

	name, ok, err := menu.New(&buf, chooser).Present([]string{"TVR"})

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, name)

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, clearScreen))
	assert.True(t, strings.HasSuffix(out, "User did not select anything\n"))
}

func TestPresentChooserFailure(t *testing.T) {
	var buf bytes.Buffer
	chooser := &fakeChooser{err: errors.New("no tty")}

	_, ok, err := menu.New(&buf, chooser).Present([]string{"TVR"})

	require.Error(t, err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "no tty")
	assert.Equal(t, 2, strings.Count(buf.String(), clearScreen))
}

func TestPresentNoOptions(t *testing.T) {
	var buf bytes.Buffer
	chooser := &fakeChooser{}

	_, ok, err := menu.New(&buf, chooser).Present(nil)

	require.Error(t, err)
	assert.False(t, ok)
	assert.Zero(t, chooser.calls)
	assert.Empty(t, buf.String())
}
