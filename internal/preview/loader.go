// Package preview resolves image references to renderable terminal art.
// The Loader sits between the rotation engine and the image repository:
// it implements rotation.Preloader so crossfades only begin once the
// candidate's art is resident in the cache.
package preview

import (
	"context"
	"fmt"
	"time"

	"github.com/zjrosen/vitrine/internal/cachemanager"
	"github.com/zjrosen/vitrine/internal/catalog"
	"github.com/zjrosen/vitrine/internal/log"
	"github.com/zjrosen/vitrine/internal/rotation"
)

// DefaultTTL is how long resolved art stays cached. Art only changes when
// the admin edits an image, which flushes the cache explicitly.
const DefaultTTL = 10 * time.Minute

// NotRenderableError indicates an image row exists but carries no art.
type NotRenderableError struct {
	Ref string
}

func (e *NotRenderableError) Error() string {
	return fmt.Sprintf("image %q has no renderable art", e.Ref)
}

// Loader fetches and caches image art by image id.
type Loader struct {
	cache *cachemanager.ReadThroughCache[string, catalog.Image, string]
	flush func(context.Context) error
}

// NewLoader creates a Loader over the image repository. skipCache
// disables caching, used by tests and the --no-cache flag.
func NewLoader(images catalog.ImageRepository, skipCache bool) *Loader {
	manager := cachemanager.NewInMemoryCacheManager[string, catalog.Image](
		"preview-art", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval,
	)
	fetch := func(ctx context.Context, id string) (catalog.Image, error) {
		img, err := images.FindByID(id)
		if err != nil {
			return catalog.Image{}, err
		}
		if img.Art == "" {
			return catalog.Image{}, &NotRenderableError{Ref: id}
		}
		return *img, nil
	}
	return &Loader{
		cache: cachemanager.NewReadThroughCache[string, catalog.Image, string](manager, fetch, skipCache),
		flush: manager.Flush,
	}
}

// Ensure Loader implements rotation.Preloader.
var _ rotation.Preloader = (*Loader)(nil)

// Preload resolves ref out-of-band and reports completion through done.
// done is invoked exactly once, from the fetch goroutine.
func (l *Loader) Preload(ref rotation.ImageRef, done func(error)) {
	go func() {
		_, err := l.cache.Get(context.Background(), string(ref), string(ref), DefaultTTL)
		if err != nil {
			log.Debug(log.CatPreview, "preload miss", "ref", string(ref), "error", err)
		}
		done(err)
	}()
}

// Art returns the cached or freshly loaded art for ref, with the alt text
// as fallback. The bool reports whether real art was available.
func (l *Loader) Art(ref string) (string, bool) {
	img, err := l.cache.Get(context.Background(), ref, ref, DefaultTTL)
	if err != nil {
		return "", false
	}
	return img.Art, true
}

// Image returns the full cached image record for ref.
func (l *Loader) Image(ref string) (catalog.Image, error) {
	return l.cache.Get(context.Background(), ref, ref, DefaultTTL)
}

// Flush drops all cached art. Called when the watcher reports an external
// catalog change.
func (l *Loader) Flush() {
	if err := l.flush(context.Background()); err != nil {
		log.ErrorErr(log.CatPreview, "failed to flush preview cache", err)
	}
}
