package spill

import (
	"io"
	"io/ioutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemBackingAppend(t *testing.T) {
	m := new(memBacking)

	n, err := m.Write([]byte("hello "))
	require.NoError(t, err)
	require.Equal(t, 6, n)
	_, err = m.Write([]byte("world"))
	require.NoError(t, err)

	assert.Equal(t, []byte("hello world"), m.Bytes())
}

func TestMemBackingOverwriteAfterSeek(t *testing.T) {
	m := new(memBacking)
	_, err := m.Write([]byte("0123456789"))
	require.NoError(t, err)

	_, err = m.Seek(2, io.SeekStart)
	require.NoError(t, err)
	_, err = m.Write([]byte("XY"))
	require.NoError(t, err)

	assert.Equal(t, []byte("01XY456789"), m.Bytes())
}

func TestMemBackingWritePastEnd(t *testing.T) {
	m := new(memBacking)
	_, err := m.Write([]byte("abcd"))
	require.NoError(t, err)

	_, err = m.Seek(2, io.SeekStart)
	require.NoError(t, err)
	_, err = m.Write([]byte("123456"))
	require.NoError(t, err)

	assert.Equal(t, []byte("ab123456"), m.Bytes())
}

func TestMemBackingReadToEOF(t *testing.T) {
	m := new(memBacking)
	_, err := m.Write([]byte("data"))
	require.NoError(t, err)

	_, err = m.Seek(0, io.SeekStart)
	require.NoError(t, err)
	data, err := ioutil.ReadAll(m)
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), data)

	_, err = m.Read(make([]byte, 1))
	assert.Equal(t, io.EOF, err)
}

func TestMemBackingSeekWhence(t *testing.T) {
	m := new(memBacking)
	_, err := m.Write([]byte("0123456789"))
	require.NoError(t, err)

	pos, err := m.Seek(-3, io.SeekEnd)
	require.NoError(t, err)
	assert.Equal(t, int64(7), pos)

	pos, err = m.Seek(-2, io.SeekCurrent)
	require.NoError(t, err)
	assert.Equal(t, int64(5), pos)

	_, err = m.Seek(-1, io.SeekStart)
	assert.Error(t, err, "seeking before the start must fail")

	_, err = m.Seek(0, 42)
	assert.Error(t, err, "an unknown whence must fail")
}
