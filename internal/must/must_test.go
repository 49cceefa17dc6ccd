package must

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotErrorf(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		NotErrorf(nil, "should not panic")
	})

	assert.PanicsWithValue(t,
		"unexpected error: great sadness\nwhile doing things",
		func() {
			NotErrorf(errors.New("great sadness"), "while doing %v", "things")
		})
}
