package utils

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dlw1rma/rauvfilm-sub002/models"
)

// ExtractedContent is the best-effort result of pulling a review article
// out of a semi-structured page.
type ExtractedContent struct {
	Title string
	Body  string
}

// ContentExtractor isolates per-platform scraping heuristics from the
// verification state machine. Implementations take a normalized article
// URL and return extracted content or an error; callers treat every error
// as "route to manual review", never as a hard failure.
type ContentExtractor interface {
	Platform() string
	Extract(client *http.Client, normalizedURL string) (*ExtractedContent, error)
}

// ExtractorFor returns the extractor for a platform, or nil when the
// platform cannot be auto-verified (Instagram and unrecognized hosts).
func ExtractorFor(platform string) ContentExtractor {
	switch platform {
	case models.PlatformNaverBlog:
		return &naverBlogExtractor{}
	case models.PlatformNaverCafe:
		return &naverCafeExtractor{}
	default:
		return nil
	}
}

const scrapeUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

type naverBlogExtractor struct{}

func (e *naverBlogExtractor) Platform() string { return models.PlatformNaverBlog }

// Extract fetches the direct PostView rendering of a blog article,
// bypassing the iframe wrapper the canonical URL serves.
func (e *naverBlogExtractor) Extract(client *http.Client, normalizedURL string) (*ExtractedContent, error) {
	u, err := url.Parse(normalizedURL)
	if err != nil {
		return nil, fmt.Errorf("bad article URL: %v", err)
	}
	segments := pathSegments(u.Path)
	if len(segments) != 2 {
		return nil, fmt.Errorf("unrecognized blog article path %q", u.Path)
	}
	fetchURL := fmt.Sprintf("https://blog.naver.com/PostView.naver?blogId=%s&logNo=%s", segments[0], segments[1])

	doc, err := fetchDocument(client, fetchURL, "https://blog.naver.com/")
	if err != nil {
		return nil, err
	}

	title := extractTitle(doc)
	// Blog titles arrive as "post title : blog name"; keep the post part.
	if idx := strings.LastIndex(title, " : "); idx > 0 {
		title = strings.TrimSpace(title[:idx])
	}

	body := extractBodyText(doc, []string{
		".se-main-container", // SmartEditor ONE
		"#postViewArea",      // legacy editor
		".post_ct",           // mobile rendering
	})
	return &ExtractedContent{Title: title, Body: body}, nil
}

type naverCafeExtractor struct{}

func (e *naverCafeExtractor) Platform() string { return models.PlatformNaverCafe }

func (e *naverCafeExtractor) Extract(client *http.Client, normalizedURL string) (*ExtractedContent, error) {
	doc, err := fetchDocument(client, normalizedURL, "https://cafe.naver.com/")
	if err != nil {
		return nil, err
	}

	title := extractTitle(doc)
	if idx := strings.LastIndex(title, " : "); idx > 0 {
		title = strings.TrimSpace(title[:idx])
	}

	body := extractBodyText(doc, []string{
		".se-main-container",
		".ContentRenderer",
		"#tbody",
	})
	return &ExtractedContent{Title: title, Body: body}, nil
}

// fetchDocument performs the platform fetch with a browser user agent and
// referer. Any non-2xx response is an error; timeouts surface from the
// client and degrade the same way.
func fetchDocument(client *http.Client, fetchURL, referer string) (*goquery.Document, error) {
	req, err := http.NewRequest(http.MethodGet, fetchURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", scrapeUserAgent)
	req.Header.Set("Referer", referer)

	resp, err := client.Do(req)
	if err != nil {
		return nil, WrapError(err, "fetch failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, WrapError(err, "could not parse page")
	}
	return doc, nil
}

// extractTitle prefers the Open Graph title and falls back to <title>.
func extractTitle(doc *goquery.Document) string {
	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok && strings.TrimSpace(og) != "" {
		return strings.TrimSpace(og)
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// extractBodyText walks the selector list in order of preference and
// returns the first container yielding more than 50 characters of
// collapsed text. Falls back to the longest candidate seen.
func extractBodyText(doc *goquery.Document, selectors []string) string {
	longest := ""
	for _, selector := range selectors {
		text := collapseWhitespace(doc.Find(selector).Text())
		if len([]rune(text)) > 50 {
			return text
		}
		if len(text) > len(longest) {
			longest = text
		}
	}
	return longest
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
