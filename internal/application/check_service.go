package application

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/pepcheck/pepcheck/internal/domain"
	"github.com/pepcheck/pepcheck/internal/domain/rules"
)

// CheckService orchestrates the check pipeline: expand paths -> load each
// SourceUnit -> run the rule engine, one independent task per file.
type CheckService struct {
	source domain.SourceProvider
}

func NewCheckService(source domain.SourceProvider) *CheckService {
	return &CheckService{source: source}
}

// CheckPaths expands the given files or directories and checks every
// Python file found. A path that cannot be listed or read yields a
// per-file read-failure report; it never aborts the rest of the batch.
func (s *CheckService) CheckPaths(ctx context.Context, paths []string, cfg domain.CheckConfig) (*domain.BatchReport, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	var files []string
	batch := &domain.BatchReport{}
	for _, p := range paths {
		found, err := s.source.ListPythonFiles(p, cfg.ExcludePaths...)
		if err != nil {
			batch.Add(&domain.CheckReport{Path: p, ReadError: err.Error()})
			continue
		}
		files = append(files, found...)
	}

	checked, err := s.checkFiles(ctx, dedupe(files), cfg)
	if err != nil {
		return nil, err
	}
	batch.Reports = append(batch.Reports, checked.Reports...)
	batch.Sort()
	return batch, nil
}

// CheckFiles checks an explicit list of files, already expanded.
func (s *CheckService) CheckFiles(ctx context.Context, files []string, cfg domain.CheckConfig) (*domain.BatchReport, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	batch, err := s.checkFiles(ctx, dedupe(files), cfg)
	if err != nil {
		return nil, err
	}
	batch.Sort()
	return batch, nil
}

// checkFiles fans the per-file checks out over a bounded worker group.
// Each check is pure and touches no shared state, so results land in a
// pre-sized slice with no locking.
func (s *CheckService) checkFiles(ctx context.Context, files []string, cfg domain.CheckConfig) (*domain.BatchReport, error) {
	reports := make([]*domain.CheckReport, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, f := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			unit, err := s.source.Load(f)
			if err != nil {
				reports[i] = &domain.CheckReport{Path: f, ReadError: err.Error()}
				return nil
			}
			reports[i] = rules.Run(unit, cfg)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &domain.BatchReport{Reports: reports}, nil
}

func dedupe(files []string) []string {
	seen := make(map[string]bool, len(files))
	var out []string
	for _, f := range files {
		if seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
