package publish

import (
	"context"

	"github.com/rs/zerolog"

	"bannerpost/internal/banner"
)

// MediaAPI is the slice of the social platform the publisher needs: upload
// one media asset, then create one post referencing uploaded assets.
type MediaAPI interface {
	UploadMedia(ctx context.Context, data []byte) (string, error)
	CreatePost(ctx context.Context, text string, mediaIDs []string) error
}

// ItemResult records the outcome of uploading a single rendered variant.
type ItemResult struct {
	Spec    banner.Spec
	MediaID string
	Err     error
}

// Report summarizes one publish run: the per-variant outcomes plus whether
// the post itself was created.
type Report struct {
	Items   []ItemResult
	Posted  bool
	PostErr error
}

// MediaIDs returns the identifiers of the variants that uploaded, in
// submission order. Failed variants are absent, not padded.
func (r Report) MediaIDs() []string {
	ids := make([]string, 0, len(r.Items))
	for _, item := range r.Items {
		if item.Err == nil && item.MediaID != "" {
			ids = append(ids, item.MediaID)
		}
	}
	return ids
}

// Uploaded returns how many variants reached the media endpoint.
func (r Report) Uploaded() int {
	return len(r.MediaIDs())
}

// Publisher pushes rendered variants to the platform one at a time and
// attaches the survivors to a single post.
type Publisher struct {
	api     MediaAPI
	caption string
	logger  zerolog.Logger
}

func New(api MediaAPI, caption string, logger zerolog.Logger) *Publisher {
	return &Publisher{api: api, caption: caption, logger: logger}
}

// Publish uploads each variant in order, then creates one post carrying
// every media ID that made it. A failed upload is logged and skipped, never
// aborting the remaining variants or the request. When no variant uploads,
// no post is attempted. Publish reports; it does not fail.
func (p *Publisher) Publish(ctx context.Context, images []banner.Image) Report {
	report := Report{Items: make([]ItemResult, 0, len(images))}
	for _, img := range images {
		id, err := p.api.UploadMedia(ctx, img.Data)
		if err != nil {
			p.logger.Error().Err(err).
				Int("width", img.Spec.Width).
				Int("height", img.Spec.Height).
				Msg("media upload failed")
			report.Items = append(report.Items, ItemResult{Spec: img.Spec, Err: err})
			continue
		}
		report.Items = append(report.Items, ItemResult{Spec: img.Spec, MediaID: id})
	}

	ids := report.MediaIDs()
	if len(ids) == 0 {
		p.logger.Warn().Int("variants", len(images)).Msg("no variants uploaded, skipping post")
		return report
	}
	if err := p.api.CreatePost(ctx, p.caption, ids); err != nil {
		p.logger.Error().Err(err).Int("media_count", len(ids)).Msg("post creation failed")
		report.PostErr = err
		return report
	}
	report.Posted = true
	p.logger.Info().Int("media_count", len(ids)).Msg("post created")
	return report
}
