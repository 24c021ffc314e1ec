package prefetchimpl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/orgball2608/insta-stories-player/internal/domain"
	"github.com/orgball2608/insta-stories-player/internal/prefetch"
	apperrors "github.com/orgball2608/insta-stories-player/pkg/errors"
	"github.com/orgball2608/insta-stories-player/pkg/retry"
)

func (p *PrefetchImpl) Prefetch(ctx context.Context, data domain.DataSet, seen domain.SeenPointers) int {
	targets := prefetch.Targets(data, seen)
	if len(targets) == 0 {
		return 0
	}

	var wg sync.WaitGroup
	for _, item := range targets {
		if p.cache.Contains(item.SourceURL) {
			continue
		}

		wg.Add(1)
		target := item
		err := p.pool.Submit(func() {
			defer wg.Done()
			select {
			case <-ctx.Done():
				return
			default:
			}
			if err := p.fetch(ctx, target); err != nil {
				p.Metrics.IncPrefetchFailures()
				p.Logger.Warn("Prefetch failed",
					"story_id", target.ID,
					"url", target.SourceURL,
					"code", apperrors.GetCode(err),
					"error", err)
			}
		})
		if err != nil {
			wg.Done()
			p.Logger.Error("Failed to submit prefetch job", "story_id", target.ID, "error", err)
		}
	}
	wg.Wait()

	cached := 0
	for _, item := range targets {
		if p.cache.Contains(item.SourceURL) {
			cached++
		}
	}
	p.Logger.Debug("Prefetch finished", "targets", len(targets), "cached", cached)
	return cached
}

func (p *PrefetchImpl) fetch(ctx context.Context, item domain.StoryItem) error {
	return retry.Do(ctx, p.Logger, "prefetch "+item.ID, func() error {
		if err := p.limiter.Wait(ctx); err != nil {
			return retry.Permanent(err)
		}
		p.Metrics.IncPrefetchRequests()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, item.SourceURL, nil)
		if err != nil {
			return retry.Permanent(apperrors.WrapWithCode(err, apperrors.CodePrefetch, "bad media url"))
		}

		resp, err := p.client.Do(req)
		if err != nil {
			return apperrors.WrapWithCode(err, apperrors.CodePrefetch, "media request failed")
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			err := apperrors.WrapWithCode(
				fmt.Errorf("unexpected status %d", resp.StatusCode),
				apperrors.CodePrefetch,
				"media request rejected",
			)
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				return retry.Permanent(err)
			}
			return err
		}

		body, err := io.ReadAll(io.LimitReader(resp.Body, p.maxBody+1))
		if err != nil {
			return apperrors.WrapWithCode(err, apperrors.CodePrefetch, "read media body")
		}
		if int64(len(body)) > p.maxBody {
			return retry.Permanent(apperrors.WrapWithCode(
				fmt.Errorf("body exceeds %d bytes", p.maxBody),
				apperrors.CodePrefetch,
				"media too large",
			))
		}

		p.cache.Add(item.SourceURL, prefetch.Media{
			URL:         item.SourceURL,
			ContentType: resp.Header.Get("Content-Type"),
			Body:        body,
			FetchedAt:   p.clock.Now(),
		})
		return nil
	}, p.retryCfg)
}
