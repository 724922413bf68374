package preview

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vitrine/internal/catalog"
	"github.com/zjrosen/vitrine/internal/rotation"
)

// fakeImages serves images from a map and counts lookups.
type fakeImages struct {
	mu      sync.Mutex
	images  map[string]catalog.Image
	lookups int
}

func newFakeImages(images ...catalog.Image) *fakeImages {
	m := make(map[string]catalog.Image, len(images))
	for _, img := range images {
		m[img.ID] = img
	}
	return &fakeImages{images: m}
}

func (f *fakeImages) FindByID(id string) (*catalog.Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lookups++
	img, ok := f.images[id]
	if !ok {
		return nil, &catalog.ImageNotFoundError{ID: id}
	}
	return &img, nil
}

func (f *fakeImages) Save(*catalog.Image) error { return nil }
func (f *fakeImages) Delete(string) error       { return nil }
func (f *fakeImages) ImageSet(string, catalog.SizeClass) (catalog.ImageSet, error) {
	return catalog.ImageSet{}, nil
}

func (f *fakeImages) lookupCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lookups
}

func waitPreload(t *testing.T, l *Loader, ref rotation.ImageRef) error {
	t.Helper()
	errCh := make(chan error, 1)
	l.Preload(ref, func(err error) { errCh <- err })
	select {
	case err := <-errCh:
		return err
	case <-time.After(time.Second):
		t.Fatal("preload callback never fired")
		return nil
	}
}

func TestLoader_PreloadResolvesArt(t *testing.T) {
	repo := newFakeImages(catalog.Image{ID: "img-1", Art: "▓▓art▓▓", Alt: "front"})
	l := NewLoader(repo, false)

	require.NoError(t, waitPreload(t, l, "img-1"))

	art, ok := l.Art("img-1")
	require.True(t, ok)
	require.Equal(t, "▓▓art▓▓", art)
}

func TestLoader_PreloadMissingImageFails(t *testing.T) {
	repo := newFakeImages()
	l := NewLoader(repo, false)

	err := waitPreload(t, l, "ghost")
	var notFound *catalog.ImageNotFoundError
	require.ErrorAs(t, err, &notFound)

	_, ok := l.Art("ghost")
	require.False(t, ok)
}

func TestLoader_PreloadEmptyArtFails(t *testing.T) {
	repo := newFakeImages(catalog.Image{ID: "img-1", Alt: "front"})
	l := NewLoader(repo, false)

	err := waitPreload(t, l, "img-1")
	var notRenderable *NotRenderableError
	require.ErrorAs(t, err, &notRenderable)
	require.Equal(t, "img-1", notRenderable.Ref)
}

func TestLoader_SecondLookupHitsCache(t *testing.T) {
	repo := newFakeImages(catalog.Image{ID: "img-1", Art: "▓▓"})
	l := NewLoader(repo, false)

	require.NoError(t, waitPreload(t, l, "img-1"))
	_, ok := l.Art("img-1")
	require.True(t, ok)

	require.Equal(t, 1, repo.lookupCount(), "second read should come from cache")
}

func TestLoader_FlushForcesReload(t *testing.T) {
	repo := newFakeImages(catalog.Image{ID: "img-1", Art: "▓▓"})
	l := NewLoader(repo, false)

	require.NoError(t, waitPreload(t, l, "img-1"))
	l.Flush()

	_, ok := l.Art("img-1")
	require.True(t, ok)
	require.Equal(t, 2, repo.lookupCount(), "flush should force a repository reload")
}

func TestLoader_SkipCacheAlwaysLoads(t *testing.T) {
	repo := newFakeImages(catalog.Image{ID: "img-1", Art: "▓▓"})
	l := NewLoader(repo, true)

	require.NoError(t, waitPreload(t, l, "img-1"))
	require.NoError(t, waitPreload(t, l, "img-1"))
	require.Equal(t, 2, repo.lookupCount())
}

// The loader must satisfy the engine's preloader contract, including
// synchronous completion being safe for the caller.
func TestLoader_DrivesRotatorCrossfade(t *testing.T) {
	repo := newFakeImages(
		catalog.Image{ID: "a", Art: "A"},
		catalog.Image{ID: "b", Art: "B"},
	)
	l := NewLoader(repo, false)

	clock := rotation.NewManualClock()
	r := rotation.New(rotation.Config{Clock: clock, Preloader: l})
	r.Register("card", []rotation.ImageRef{"a", "b"}, "a")

	r.Navigate("card", rotation.Next)

	// Preload completes on a goroutine; poll briefly for the commit.
	require.Eventually(t, func() bool {
		idx, ok := r.CommittedIndex("card")
		return ok && idx == 1
	}, time.Second, 5*time.Millisecond)
}
