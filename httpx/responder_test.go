package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponderCommitPanicsOnSecondCall(t *testing.T) {
	r := &Responder{}
	assert.NotPanics(t, r.commit)
	assert.PanicsWithValue(t, "httpx: Responder already committed a response", r.commit)
}
