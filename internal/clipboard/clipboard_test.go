package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	got string
	err error
}

func (f *fakeWriter) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.got = text
	return nil
}

func TestCopyWritesLiteralPassword(t *testing.T) {
	w := &fakeWriter{}
	password := " a{b}~`c "

	require.NoError(t, Copy(w, password))
	assert.Equal(t, password, w.got)
}

func TestCopyEmptyPassword(t *testing.T) {
	w := &fakeWriter{}

	err := Copy(w, "")
	assert.ErrorIs(t, err, ErrEmptyPassword)
	assert.Empty(t, w.got)
}

func TestCopySurfacesWriterError(t *testing.T) {
	denied := errors.New("permission denied")
	w := &fakeWriter{err: denied}

	err := Copy(w, "Abcdef12")
	require.Error(t, err)
	assert.ErrorIs(t, err, denied)
}
