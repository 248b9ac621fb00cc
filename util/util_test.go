package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimestamp(t *testing.T) {
	ts := Timestamp()
	assert.Len(t, ts, 17)
	assert.NotEqual(t, ts, "00000000000000000")
}
