package file

import (
	"encoding/base64"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFileAddAndRemove(t *testing.T) {
	repo := NewLocalFileRepository()
	content := base64.StdEncoding.EncodeToString([]byte("a,b\n1,2\n"))

	path, err := repo.Add("test-upload.csv", "data:text/csv;base64,"+content)
	require.NoError(t, err)
	defer repo.Remove(path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(data))

	repo.Remove(path)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestLocalFileAddRejectsNonText(t *testing.T) {
	repo := NewLocalFileRepository()
	content := base64.StdEncoding.EncodeToString([]byte{0x89, 0x50, 0x4e, 0x47})
	_, err := repo.Add("x.csv", "data:image/png;base64,"+content)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported content type")
}

func TestLocalFileAddRejectsGarbage(t *testing.T) {
	repo := NewLocalFileRepository()
	_, err := repo.Add("x.csv", "not a data url")
	assert.Error(t, err)
}
