package govlens_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/govlens"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := govlens.Errorf(govlens.EEXTRACT, "no post content in %q", "https://example.com")

	assert.Equal(t, govlens.EEXTRACT, govlens.ErrorCode(err))
	assert.Equal(t, "no post content in \"https://example.com\"", govlens.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, govlens.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, govlens.EINTERNAL, govlens.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, govlens.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", govlens.ErrorMessage(errors.New("boom")))
}
