package models

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizedURLUniqueAmongActiveSubmissions(t *testing.T) {
	field, ok := reflect.TypeOf(ReviewSubmission{}).FieldByName("NormalizedURL")
	assert.True(t, ok)

	// Two concurrent submissions of the same link must collide at insert;
	// rejected rows stay out of the index so a link can be resubmitted.
	tag := field.Tag.Get("gorm")
	assert.Contains(t, tag, "uniqueIndex")
	assert.Contains(t, tag, "where:status <> 'REJECTED'")
}

func TestIsTerminal(t *testing.T) {
	for status, want := range map[string]bool{
		ReviewStatusPending:      false,
		ReviewStatusAutoApproved: false,
		ReviewStatusManualReview: false,
		ReviewStatusApproved:     true,
		ReviewStatusRejected:     true,
	} {
		s := &ReviewSubmission{Status: status}
		assert.Equal(t, want, s.IsTerminal(), status)
	}
}

func TestCountsAsApproved(t *testing.T) {
	for status, want := range map[string]bool{
		ReviewStatusPending:      false,
		ReviewStatusAutoApproved: true,
		ReviewStatusManualReview: false,
		ReviewStatusApproved:     true,
		ReviewStatusRejected:     false,
	} {
		s := &ReviewSubmission{Status: status}
		assert.Equal(t, want, s.CountsAsApproved(), status)
	}
}
