package utils

import (
	"sync"

	"golang.org/x/sync/errgroup"
)

type errGroup[T any] struct {
	group   *errgroup.Group
	mut     sync.Mutex
	results []T
}

// ErrGroup runs functions concurrently with a bounded amount of goroutines
// and collects their results. The first error cancels the collection.
func ErrGroup[T any](concurrency int) *errGroup[T] {
	group := &errgroup.Group{}
	group.SetLimit(concurrency)
	return &errGroup[T]{
		group: group,
	}
}

func (g *errGroup[T]) Go(fn func() (T, error)) {
	g.group.Go(func() error {
		res, err := fn()
		if err != nil {
			return err
		}
		g.mut.Lock()
		g.results = append(g.results, res)
		g.mut.Unlock()
		return nil
	})
}

func (g *errGroup[T]) WaitAndCollect() ([]T, error) {
	if err := g.group.Wait(); err != nil {
		return nil, err
	}
	return g.results, nil
}
