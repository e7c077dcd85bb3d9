package crawl_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/fwojciec/botica"
	"github.com/fwojciec/botica/crawl"
	"github.com/stretchr/testify/assert"
)

func TestSeenURLs(t *testing.T) {
	t.Parallel()

	t.Run("implements botica.URLSet interface", func(t *testing.T) {
		t.Parallel()
		var _ botica.URLSet = crawl.NewSeenURLs(10, 0.01)
	})

	t.Run("add reports first insertion only", func(t *testing.T) {
		t.Parallel()

		s := crawl.NewSeenURLs(100, 0.01)

		assert.True(t, s.Add("https://shop.example/p/a/"))
		assert.False(t, s.Add("https://shop.example/p/a/"))
		assert.True(t, s.Add("https://shop.example/p/b/"))
		assert.Equal(t, 2, s.Len())
	})

	t.Run("seen reflects added URLs", func(t *testing.T) {
		t.Parallel()

		s := crawl.NewSeenURLs(100, 0.01)
		s.Add("https://shop.example/p/a/")

		assert.True(t, s.Seen("https://shop.example/p/a/"))
		assert.False(t, s.Seen("https://shop.example/p/b/"))
	})

	t.Run("ignores fragments", func(t *testing.T) {
		t.Parallel()

		s := crawl.NewSeenURLs(100, 0.01)

		assert.True(t, s.Add("https://shop.example/p/a/#reviews"))
		assert.False(t, s.Add("https://shop.example/p/a/"))
		assert.True(t, s.Seen("https://shop.example/p/a/#tab"))
	})

	t.Run("never reports false positives even when undersized", func(t *testing.T) {
		t.Parallel()

		// A tiny filter saturates quickly; the exact map must keep answers correct.
		s := crawl.NewSeenURLs(1, 0.5)
		for i := range 500 {
			assert.True(t, s.Add(fmt.Sprintf("https://shop.example/p/%d/", i)))
		}
		assert.Equal(t, 500, s.Len())
		assert.False(t, s.Seen("https://shop.example/p/never/"))
	})

	t.Run("concurrent adds admit each URL once", func(t *testing.T) {
		t.Parallel()

		s := crawl.NewSeenURLs(100, 0.01)
		var wg sync.WaitGroup
		var mu sync.Mutex
		admitted := 0

		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if s.Add("https://shop.example/p/same/") {
					mu.Lock()
					admitted++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, admitted)
	})
}
