package utils

import (
	"net/http"
	"strings"
	"testing"

	"github.com/dlw1rma/rauvfilm-sub002/models"
	"github.com/stretchr/testify/assert"
)

func TestClassifyReviewPlatform(t *testing.T) {
	cases := map[string]string{
		"https://blog.naver.com/somebody/223456789012":       models.PlatformNaverBlog,
		"https://m.blog.naver.com/somebody/223456789012":     models.PlatformNaverBlog,
		"https://cafe.naver.com/weddingclub/123456":          models.PlatformNaverCafe,
		"https://www.instagram.com/p/Cxyz123/":               models.PlatformInstagram,
		"https://brunch.co.kr/@writer/55":                    models.PlatformOther,
		"https://blog.naver.com/PostView.naver?blogId=a&logNo=1": models.PlatformNaverBlog,
	}

	for raw, want := range cases {
		assert.Equal(t, want, ClassifyReviewPlatform(raw), raw)
	}
}

func TestNormalizeReviewURLIsIdempotent(t *testing.T) {
	inputs := []string{
		"https://blog.naver.com/somebody/223456789012?utm_source=share&fbclid=abc",
		"https://cafe.naver.com/ArticleRead.nhn?clubid=12345&articleid=678",
		"https://www.instagram.com/p/Cxyz123/?igshid=track",
		"https://Example.com/review/42/?utm_campaign=x&b=2&a=1",
	}

	for _, raw := range inputs {
		once, err := NormalizeReviewURL(raw)
		assert.NoError(t, err, raw)
		twice, err := NormalizeReviewURL(once)
		assert.NoError(t, err, once)
		assert.Equal(t, once, twice, raw)
	}
}

func TestNormalizeReviewURLNaverBlogForms(t *testing.T) {
	canonical, err := NormalizeReviewURL("https://blog.naver.com/Somebody/223456789012")
	assert.NoError(t, err)
	assert.Equal(t, "https://blog.naver.com/somebody/223456789012", canonical)

	// The PostView wrapper and the mobile host normalize to the same article.
	wrapper, err := NormalizeReviewURL("https://blog.naver.com/PostView.naver?blogId=Somebody&logNo=223456789012")
	assert.NoError(t, err)
	assert.Equal(t, canonical, wrapper)

	mobile, err := NormalizeReviewURL("https://m.blog.naver.com/somebody/223456789012")
	assert.NoError(t, err)
	assert.Equal(t, canonical, mobile)
}

func TestNormalizeReviewURLNaverCafeForms(t *testing.T) {
	legacy, err := NormalizeReviewURL("https://cafe.naver.com/ArticleRead.nhn?clubid=12345&articleid=678")
	assert.NoError(t, err)
	assert.Equal(t, "https://cafe.naver.com/12345/678", legacy)

	web, err := NormalizeReviewURL("https://cafe.naver.com/ca-fe/cafes/12345/articles/678")
	assert.NoError(t, err)
	assert.Equal(t, legacy, web)
}

func TestNormalizeReviewURLTrackingParamsEquivalence(t *testing.T) {
	// Same cafe article, different query strings, must collide as duplicates.
	a, err := NormalizeReviewURL("https://cafe.naver.com/weddingclub/123456?utm_source=kakao")
	assert.NoError(t, err)
	b, err := NormalizeReviewURL("https://cafe.naver.com/weddingclub/123456?fbclid=xyz")
	assert.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := NormalizeReviewURL("https://www.example.com/post/9?utm_medium=social")
	assert.NoError(t, err)
	d, err := NormalizeReviewURL("https://example.com/post/9/")
	assert.NoError(t, err)
	assert.Equal(t, c, d)
}

func TestNormalizeReviewURLInstagram(t *testing.T) {
	post, err := NormalizeReviewURL("https://www.instagram.com/p/Cxyz123/?igshid=track&utm_source=ig")
	assert.NoError(t, err)
	assert.Equal(t, "https://instagram.com/p/Cxyz123", post)

	reel, err := NormalizeReviewURL("https://instagram.com/reel/Cabc789/")
	assert.NoError(t, err)
	assert.Equal(t, "https://instagram.com/p/Cabc789", reel)
}

func TestNormalizeReviewURLRejectsGarbage(t *testing.T) {
	_, err := NormalizeReviewURL("")
	assert.Error(t, err)

	_, err = NormalizeReviewURL("   ")
	assert.Error(t, err)

	_, err = NormalizeReviewURL("https://")
	assert.Error(t, err)
}

func TestPrepareReviewSubmissionRejectsBadLinks(t *testing.T) {
	// Rejected before any database access, so no connection is needed.
	tooLong := "https://blog.naver.com/" + strings.Repeat("a", MaxReviewURLLength)
	_, _, appErr := PrepareReviewSubmission(nil, tooLong)
	assert.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Equal(t, ErrInvalidReviewURL, appErr.Message)

	_, _, appErr = PrepareReviewSubmission(nil, "   ")
	assert.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
}

func TestNormalizeReviewURLAddsScheme(t *testing.T) {
	got, err := NormalizeReviewURL("blog.naver.com/somebody/223456789012")
	assert.NoError(t, err)
	assert.Equal(t, "https://blog.naver.com/somebody/223456789012", got)
}
