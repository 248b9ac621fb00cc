package file

import (
	"fmt"
	"os"
	"strings"

	"github.com/vincent-petithory/dataurl"

	"github.com/nelmak/billquest/domain"
)

type localFileRepositoryImpl struct{}

func NewLocalFileRepository() domain.LocalFileRepository {
	return &localFileRepositoryImpl{}
}

// Add decodes a data-url CSV payload into /tmp and returns the staged path.
func (impl *localFileRepositoryImpl) Add(name string, base64csv string) (string, error) {
	dataURL, err := dataurl.DecodeString(base64csv)
	if err != nil {
		return "", err
	}
	contentType := dataURL.ContentType()
	if contentType != "text/csv" && !strings.HasPrefix(contentType, "text/plain") {
		return "", fmt.Errorf("unsupported content type: %s", contentType)
	}
	filename := "/tmp/" + name
	f, err := os.Create(filename)
	if err != nil {
		return filename, err
	}
	defer f.Close()
	if _, err := f.Write(dataURL.Data); err != nil {
		return filename, err
	}
	return filename, nil
}

// ignore remove failure since its on lambda anyway.
func (impl *localFileRepositoryImpl) Remove(filename string) {
	if fileExists(filename) {
		os.Remove(filename)
	}
}

func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}
