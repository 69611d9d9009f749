package utils

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/dlw1rma/rauvfilm-sub002/models"
	"gorm.io/gorm"
)

// Tracking parameters stripped during URL normalization.
var trackingParams = map[string]bool{
	"fbclid":       true,
	"gclid":        true,
	"igsh":         true,
	"igshid":       true,
	"ref":          true,
	"trackingcode": true,
	"from":         true,
}

// ClassifyReviewPlatform maps a submitted URL to a review platform.
// Unknown hosts come back as OTHER, which routes to manual review.
func ClassifyReviewPlatform(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return models.PlatformOther
	}
	host := canonicalHost(u.Host)
	switch {
	case host == "blog.naver.com":
		return models.PlatformNaverBlog
	case host == "cafe.naver.com":
		return models.PlatformNaverCafe
	case host == "instagram.com":
		return models.PlatformInstagram
	default:
		return models.PlatformOther
	}
}

// NormalizeReviewURL canonicalizes a review URL for duplicate detection
// and fetching: scheme and host folded, mobile/www prefixes dropped,
// tracking parameters removed, and platform article identifiers rewritten
// to one stable form. Normalization is idempotent.
func NormalizeReviewURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty URL")
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %v", err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid URL: missing host")
	}

	host := canonicalHost(u.Host)
	query := u.Query()

	switch host {
	case "blog.naver.com":
		if id, postID, ok := naverBlogArticle(u.Path, query); ok {
			return fmt.Sprintf("https://blog.naver.com/%s/%s", id, postID), nil
		}
	case "cafe.naver.com":
		if clubID, articleID, ok := naverCafeArticle(u.Path, query); ok {
			return fmt.Sprintf("https://cafe.naver.com/%s/%s", clubID, articleID), nil
		}
	case "instagram.com":
		if code, ok := instagramPost(u.Path); ok {
			return fmt.Sprintf("https://instagram.com/p/%s", code), nil
		}
	}

	return genericNormalizedURL(host, u.Path, query), nil
}

// PrepareReviewSubmission validates a submitted review link and rejects
// system-wide duplicates before any scraping happens. Returns the
// canonical URL and platform, or an AppError the handler maps directly.
func PrepareReviewSubmission(db *gorm.DB, rawURL string) (string, string, *AppError) {
	if len(rawURL) > MaxReviewURLLength {
		return "", "", BadRequestError(ErrInvalidReviewURL, nil)
	}
	normalized, err := NormalizeReviewURL(rawURL)
	if err != nil {
		return "", "", BadRequestError(ErrInvalidReviewURL, err)
	}
	platform := ClassifyReviewPlatform(normalized)

	duplicate, err := IsDuplicateReviewURL(db, normalized)
	if err != nil {
		return "", "", InternalError(err)
	}
	if duplicate {
		return "", "", ConflictError(ErrDuplicateReview, nil)
	}
	return normalized, platform, nil
}

// IsDuplicateReviewURL reports whether any non-rejected submission
// anywhere in the system already carries the normalized URL.
func IsDuplicateReviewURL(db *gorm.DB, normalizedURL string) (bool, error) {
	var count int64
	err := db.Model(&models.ReviewSubmission{}).
		Where("normalized_url = ? AND status <> ?", normalizedURL, models.ReviewStatusRejected).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// canonicalHost lower-cases the host and strips www/mobile prefixes so
// m.blog.naver.com and blog.naver.com compare equal.
func canonicalHost(host string) string {
	host = strings.ToLower(host)
	if h, _, found := strings.Cut(host, ":"); found {
		host = h
	}
	host = strings.TrimPrefix(host, "www.")
	host = strings.TrimPrefix(host, "m.")
	return host
}

// naverBlogArticle extracts (blogId, logNo) from either the canonical
// /{blogId}/{logNo} path or the PostView wrapper query form.
func naverBlogArticle(path string, query url.Values) (string, string, bool) {
	if blogID, logNo := query.Get("blogId"), query.Get("logNo"); blogID != "" && logNo != "" {
		return strings.ToLower(blogID), logNo, true
	}
	segments := pathSegments(path)
	if len(segments) == 2 && isDigits(segments[1]) {
		return strings.ToLower(segments[0]), segments[1], true
	}
	return "", "", false
}

// naverCafeArticle extracts (clubId, articleId) from the legacy
// ArticleRead form, the ca-fe web view, or the short /{club}/{article} path.
func naverCafeArticle(path string, query url.Values) (string, string, bool) {
	if clubID, articleID := query.Get("clubid"), query.Get("articleid"); clubID != "" && articleID != "" {
		return strings.ToLower(clubID), articleID, true
	}
	segments := pathSegments(path)
	// /ca-fe/cafes/{clubId}/articles/{articleId}
	if len(segments) >= 5 && segments[0] == "ca-fe" && segments[1] == "cafes" && segments[3] == "articles" {
		return strings.ToLower(segments[2]), segments[4], true
	}
	if len(segments) == 2 && isDigits(segments[1]) {
		return strings.ToLower(segments[0]), segments[1], true
	}
	return "", "", false
}

// instagramPost extracts the shortcode from /p/{code} and /reel/{code} paths.
func instagramPost(path string) (string, bool) {
	segments := pathSegments(path)
	if len(segments) >= 2 && (segments[0] == "p" || segments[0] == "reel") {
		return segments[1], true
	}
	return "", false
}

func genericNormalizedURL(host, path string, query url.Values) string {
	path = strings.TrimSuffix(path, "/")

	var keys []string
	for key := range query {
		if !trackingParams[strings.ToLower(key)] && !strings.HasPrefix(strings.ToLower(key), "utm_") {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	kept := url.Values{}
	for _, key := range keys {
		kept[key] = query[key]
	}

	normalized := "https://" + host + path
	if encoded := kept.Encode(); encoded != "" {
		normalized += "?" + encoded
	}
	return normalized
}

func pathSegments(path string) []string {
	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
