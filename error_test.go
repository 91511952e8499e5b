package deeptective_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/deeptective/deeptective"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := deeptective.Errorf(deeptective.ENOTFOUND, "case %q not found", "web_1")

	assert.Equal(t, deeptective.ENOTFOUND, deeptective.ErrorCode(err))
	assert.Equal(t, "case \"web_1\" not found", deeptective.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, deeptective.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, deeptective.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("lookup: %w", deeptective.Errorf(deeptective.EINVALID, "bad id"))

	assert.Equal(t, deeptective.EINVALID, deeptective.ErrorCode(err))
	assert.Equal(t, "bad id", deeptective.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("connection reset")

	assert.Equal(t, deeptective.EINTERNAL, deeptective.ErrorCode(err))
	assert.Equal(t, "Internal error.", deeptective.ErrorMessage(err))
}
