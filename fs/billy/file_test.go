package billy

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFile_ReadWriteSeek(t *testing.T) {
	mfs := NewMemory()

	f, err := mfs.Create("/notes.txt")
	require.NoError(t, err)
	require.Equal(t, "/notes.txt", f.Name())

	_, err = f.Write([]byte("hello world"))
	require.NoError(t, err)
	require.NoError(t, f.(*File).Sync())
	require.NoError(t, f.Close())

	rf, err := mfs.Open("/notes.txt")
	require.NoError(t, err)
	defer func() { _ = rf.Close() }()

	_, err = rf.(io.Seeker).Seek(6, io.SeekStart)
	require.NoError(t, err)
	data, err := io.ReadAll(rf)
	require.NoError(t, err)
	require.Equal(t, "world", string(data))

	info, err := rf.Stat()
	require.NoError(t, err)
	require.Equal(t, int64(11), info.Size())
}
