package ingestion

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-insight/internal/fetch"
	"github.com/jonathan/resume-insight/internal/logger"
	"github.com/jonathan/resume-insight/internal/roles"
	"github.com/jonathan/resume-insight/internal/types"
)

var (
	// ErrHTTPRequestFailed is returned when the posting could not be fetched
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when content extraction fails
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
)

// IngestFromURL fetches a job posting, extracts its text with
// platform-specific selectors, and returns cleaned text with metadata.
// When useBrowser is true, postings that yield too little static HTML
// are re-fetched through a headless browser.
func IngestFromURL(ctx context.Context, urlStr string, useBrowser bool) (string, *Metadata, error) {
	platform := DetectPlatform(urlStr)
	logger.Debug().Str("url", urlStr).Str("platform", string(platform)).Msg("ingesting job posting")

	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}

	contentSelectors := PlatformContentSelectors(platform)
	noiseSelectors := PlatformNoiseSelectors(platform)

	textContent, err := ExtractMainText(result.HTML, contentSelectors, noiseSelectors...)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}
	logger.Debug().Int("chars", len(textContent)).Msg("extracted posting text")

	if useBrowser && fetch.ShouldUseBrowser(textContent) {
		logger.Debug().
			Int("chars", len(textContent)).
			Int("min", fetch.MinContentLength).
			Msg("static content too short, rendering in browser")

		browserHTML, browserErr := fetch.BrowserSimple(ctx, urlStr)
		if browserErr != nil {
			// Keep the static content when the browser is unavailable.
			logger.Warn().Err(browserErr).Msg("browser rendering failed, using static content")
		} else if rendered, extractErr := ExtractMainText(browserHTML, contentSelectors, noiseSelectors...); extractErr == nil {
			textContent = rendered
		}
	}

	cleanedText := CleanText(textContent)

	metadata := NewMetadata(cleanedText, urlStr)
	metadata.Platform = string(platform)

	return cleanedText, metadata, nil
}

// IngestRole fetches a job posting and harvests the skills it mentions
// into a JobRequirements the analyzer can score against.
func IngestRole(ctx context.Context, urlStr string, useBrowser bool) (*types.JobRequirements, *Metadata, error) {
	cleanedText, metadata, err := IngestFromURL(ctx, urlStr, useBrowser)
	if err != nil {
		return nil, nil, err
	}

	return &types.JobRequirements{
		RequiredSkills: roles.HarvestSkills(cleanedText),
	}, metadata, nil
}
