package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusString(t *testing.T) {
	cases := map[Status]string{
		StatusFound:              "Found",
		StatusNothing:            "Nothing",
		StatusNotFound:           "NotFound",
		StatusTrivial:            "Trivial",
		StatusTimeout:            "Timeout",
		StatusGridNotInitialised: "GridNotInitialised",
		StatusOriginNotSet:       "OriginNotSet",
		StatusEmbedded:           "Embedded",
		Status(99):               "Unknown",
	}
	for status, want := range cases {
		assert.Equal(t, want, status.String())
	}
}

func TestMovementModeString(t *testing.T) {
	assert.Equal(t, "cardinal", Cardinal.String())
	assert.Equal(t, "8-way", EightWay.String())
}
