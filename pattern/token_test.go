package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenStringers(t *testing.T) {
	assert.Equal(t, `Char('c')`, NewChar('c').String())
	assert.Equal(t, "Wildcard", NewWildcard().String())
	assert.Equal(t, "Capture(name)", NewCapture("name").String())

	set := NewCharset([]byte("ab"))
	assert.Contains(t, NewInclusion(set).String(), "Inclusion")
	assert.Contains(t, NewExclusion(set).String(), "Exclusion")
	assert.Contains(t, NewCaptureIn("n", set).String(), "CaptureIn")
	assert.Contains(t, NewCaptureEx("n", set).String(), "CaptureEx")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Char", Char.String())
	assert.Equal(t, "Wildcard", Wildcard.String())
	assert.Equal(t, "Inclusion", Inclusion.String())
	assert.Equal(t, "Exclusion", Exclusion.String())
	assert.Equal(t, "Capture", Capture.String())
	assert.Equal(t, "CaptureIn", CaptureIn.String())
	assert.Equal(t, "CaptureEx", CaptureEx.String())
}
