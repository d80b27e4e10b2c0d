package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// runParallel вызывает fn для каждого элемента с ограничением jobs горутин.
// Результаты лежат по индексу входа, поэтому порядок детерминирован и
// блокировки не нужны. Ошибка возвращается только при отмене контекста.
func runParallel[T any](ctx context.Context, items []string, jobs int, fn func(ctx context.Context, idx int, item string) T) ([]T, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]T, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, item := range items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = fn(gctx, i, item)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
