package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"pehlione.com/storefront/internal/storage"
)

type syncer struct {
	store       storage.Storage
	out         io.Writer
	dryRun      bool
	concurrency int

	mu sync.Mutex
}

type report struct {
	Done    int
	Skipped int
	Failed  int
}

func (r report) String() string {
	return fmt.Sprintf("done=%d skipped=%d failed=%d", r.Done, r.Skipped, r.Failed)
}

var errSomeFailed = errors.New("some keys failed")

type outcome int

const (
	outcomeDone outcome = iota
	outcomeSkipped
)

// Upload copies src/<key> to storage for every key. Existing keys are skipped
// unless force is set. Per-key failures are reported and do not stop the run.
func (s *syncer) Upload(ctx context.Context, src string, keys []string, force bool) (report, error) {
	return s.each(ctx, keys, func(ctx context.Context, key string) (outcome, error) {
		if !force {
			ok, err := s.store.Exists(ctx, key)
			if err != nil {
				return 0, err
			}
			if ok {
				s.printf("= %s (exists)\n", key)
				return outcomeSkipped, nil
			}
		}

		path := filepath.Join(src, filepath.FromSlash(key))
		f, err := os.Open(path)
		if err != nil {
			return 0, err
		}
		defer f.Close()

		st, err := f.Stat()
		if err != nil {
			return 0, err
		}
		if s.dryRun {
			s.printf("~ %s (%d bytes, dry run)\n", key, st.Size())
			return outcomeDone, nil
		}

		res, err := s.store.Put(ctx, f, storage.PutInput{
			Key:         key,
			Filename:    filepath.Base(path),
			ContentType: mime.TypeByExtension(filepath.Ext(path)),
			Size:        st.Size(),
		})
		if err != nil {
			return 0, err
		}
		s.printf("✓ %s -> %s\n", res.Key, res.URL)
		return outcomeDone, nil
	})
}

func (s *syncer) Delete(ctx context.Context, keys []string) (report, error) {
	return s.each(ctx, keys, func(ctx context.Context, key string) (outcome, error) {
		if s.dryRun {
			s.printf("~ delete %s (dry run)\n", key)
			return outcomeDone, nil
		}
		if err := s.store.Delete(ctx, key); err != nil {
			return 0, err
		}
		s.printf("✓ deleted %s\n", key)
		return outcomeDone, nil
	})
}

func (s *syncer) each(ctx context.Context, keys []string, fn func(context.Context, string) (outcome, error)) (report, error) {
	var rep report

	eg, egCtx := errgroup.WithContext(ctx)
	if s.concurrency > 0 {
		eg.SetLimit(s.concurrency)
	}
	for _, key := range keys {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			o, err := fn(egCtx, key)

			s.mu.Lock()
			defer s.mu.Unlock()
			switch {
			case err != nil:
				rep.Failed++
				fmt.Fprintf(s.out, "✗ %s: %v\n", key, err)
			case o == outcomeSkipped:
				rep.Skipped++
			default:
				rep.Done++
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return rep, err
	}
	if rep.Failed > 0 {
		return rep, errSomeFailed
	}
	return rep, nil
}

func (s *syncer) printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, format, args...)
}
