package utils

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAppErrorMessageIncludesCause(t *testing.T) {
	cause := errors.New("boom")
	appErr := BadRequestError(ErrInvalidReviewURL, cause)

	assert.Equal(t, ErrInvalidReviewURL+": boom", appErr.Error())
	assert.Equal(t, cause, errors.Unwrap(appErr))

	assert.Equal(t, ErrInvalidReviewURL, BadRequestError(ErrInvalidReviewURL, nil).Error())
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(NotFoundError(ErrInvalidReferralCode, nil)))
	assert.False(t, IsNotFoundError(ConflictError(ErrDuplicateReview, nil)))
	assert.False(t, IsNotFoundError(errors.New("plain")))
	assert.False(t, IsNotFoundError(nil))
}

func TestWrapErrorKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := WrapError(cause, "fetch failed")

	assert.EqualError(t, err, "fetch failed: connection reset")
	assert.True(t, errors.Is(err, cause))
	assert.Nil(t, WrapError(nil, "fetch failed"))
}

func TestRespondErrorHonorsAppErrorCode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	RespondError(c, ConflictError(ErrDuplicateReview, nil))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), ErrDuplicateReview)
}

func TestRespondErrorHidesNonAppErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	RespondError(c, fmt.Errorf("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
	assert.Contains(t, w.Body.String(), ErrInternalServer)
}
