package utils

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dlw1rma/rauvfilm-sub002/config"
	"github.com/dlw1rma/rauvfilm-sub002/models"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateReviewContentKeywordIsCaseInsensitive(t *testing.T) {
	policy := config.DefaultDiscountPolicy()

	titleValid, _, _ := EvaluateReviewContent(policy, "Our RAUVFILM wedding video", "")
	assert.True(t, titleValid)

	titleValid, _, _ = EvaluateReviewContent(policy, "라우브필름 본식 영상 후기", "")
	assert.True(t, titleValid)

	titleValid, _, _ = EvaluateReviewContent(policy, "a wedding video review", "")
	assert.False(t, titleValid)
}

func TestEvaluateReviewContentCountsStrippedCharacters(t *testing.T) {
	policy := config.DefaultDiscountPolicy()

	// 480 non-space characters: title passes, content fails.
	body := strings.Repeat("후기 ", 480/2)
	titleValid, contentValid, count := EvaluateReviewContent(policy, "rauvfilm 후기", body)

	assert.True(t, titleValid)
	assert.False(t, contentValid)
	assert.Equal(t, 480, count)
}

func TestEvaluateReviewContentPassesAtThreshold(t *testing.T) {
	policy := config.DefaultDiscountPolicy()

	body := strings.Repeat("가", policy.MinContentChars)
	_, contentValid, count := EvaluateReviewContent(policy, "", body)

	assert.True(t, contentValid)
	assert.Equal(t, policy.MinContentChars, count)
}

func TestVerifyReviewRoutesUnsupportedPlatformsToManualReview(t *testing.T) {
	policy := config.DefaultDiscountPolicy()

	for _, platform := range []string{models.PlatformInstagram, models.PlatformOther} {
		result := VerifyReview(policy, platform, "https://instagram.com/p/Cxyz123")
		assert.False(t, result.CanAutoVerify, platform)
		assert.Equal(t, models.ReviewStatusManualReview, result.Status, platform)
		assert.NotEmpty(t, result.ErrorMessage, platform)
	}
}

func cafePage(title, body string) string {
	return fmt.Sprintf(`<html><head>
		<meta property="og:title" content="%s" />
		<title>fallback title</title>
	</head><body>
		<div class="se-main-container">%s</div>
	</body></html>`, title, body)
}

func TestNaverCafeExtractorReadsOpenGraphTitleAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		assert.NotEmpty(t, r.Header.Get("Referer"))
		fmt.Fprint(w, cafePage("rauvfilm 본식 영상 후기 : 웨딩카페", "본문  내용이\n여기에   있습니다"))
	}))
	defer server.Close()

	extractor := &naverCafeExtractor{}
	content, err := extractor.Extract(server.Client(), server.URL)

	assert.NoError(t, err)
	// Blog-name suffix stripped, whitespace collapsed.
	assert.Equal(t, "rauvfilm 본식 영상 후기", content.Title)
	assert.Equal(t, "본문 내용이 여기에 있습니다", content.Body)
}

func TestNaverCafeExtractorFallsBackToTitleTag(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head><title>plain title</title></head><body><div id="tbody">short</div></body></html>`)
	}))
	defer server.Close()

	extractor := &naverCafeExtractor{}
	content, err := extractor.Extract(server.Client(), server.URL)

	assert.NoError(t, err)
	assert.Equal(t, "plain title", content.Title)
	assert.Equal(t, "short", content.Body)
}

func TestNaverCafeExtractorReportsNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	extractor := &naverCafeExtractor{}
	_, err := extractor.Extract(server.Client(), server.URL)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestNaverCafeExtractorTimesOut(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := &http.Client{Timeout: 20 * time.Millisecond}
	extractor := &naverCafeExtractor{}
	_, err := extractor.Extract(client, server.URL)

	assert.Error(t, err)
}

func TestNaverBlogExtractorRejectsUnrecognizedPath(t *testing.T) {
	extractor := &naverBlogExtractor{}
	_, err := extractor.Extract(http.DefaultClient, "https://blog.naver.com/onlyblogid")
	assert.Error(t, err)
}

func TestExtractorForSelection(t *testing.T) {
	assert.NotNil(t, ExtractorFor(models.PlatformNaverBlog))
	assert.NotNil(t, ExtractorFor(models.PlatformNaverCafe))
	assert.Nil(t, ExtractorFor(models.PlatformInstagram))
	assert.Nil(t, ExtractorFor(models.PlatformOther))
}

func TestExtractBodyTextPrefersEarlierSelectors(t *testing.T) {
	html := `<html><body>
		<div class="se-main-container">` + strings.Repeat("가", 60) + `</div>
		<div id="postViewArea">legacy body text that is also long enough to win</div>
	</body></html>`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, html)
	}))
	defer server.Close()

	doc, err := fetchDocument(server.Client(), server.URL, "https://blog.naver.com/")
	assert.NoError(t, err)

	body := extractBodyText(doc, []string{".se-main-container", "#postViewArea"})
	assert.Equal(t, strings.Repeat("가", 60), body)
}
