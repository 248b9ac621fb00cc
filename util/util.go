package util

import (
	"fmt"
	"time"
)

const datetimeformat = "20060102150405"

// Timestamp returns a millisecond-resolution UTC timestamp used to name
// uploaded files so repeated uploads never collide.
func Timestamp() string {
	t := time.Now().UTC()
	millisec := int64(t.Nanosecond()) / int64(time.Millisecond)
	return t.Format(datetimeformat) + fmt.Sprintf("%03d", millisec)
}
