package project

import (
	"context"
	"fmt"
	"os"

	"github.com/fyrsmithlabs/jbrecent/internal/logging"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the default metadata resolution concurrency.
const DefaultWorkers = 4

// Extractor reads JetBrains recent projects files.
//
// An Extractor holds no per-call state and is safe for concurrent use.
type Extractor struct {
	logger  *logging.Logger
	workers int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the logger. Without it the logger is taken from the
// context passed to Extract.
func WithLogger(l *logging.Logger) Option {
	return func(e *Extractor) { e.logger = l }
}

// WithWorkers bounds how many projects have their metadata resolved at once.
// Values below 1 mean sequential resolution.
func WithWorkers(n int) Option {
	return func(e *Extractor) {
		if n < 1 {
			n = 1
		}
		e.workers = n
	}
}

// NewExtractor creates an Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{workers: DefaultWorkers}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the recent projects recorded in filePath using a default Extractor.
func Extract(ctx context.Context, filePath string) ([]Project, error) {
	return NewExtractor().Extract(ctx, filePath)
}

// Extract returns the deduplicated recent projects recorded in filePath, in
// first-occurrence order across Sources.
//
// A missing file yields an empty slice and no error. A file that is not
// well-formed XML yields a *ParseError. Metadata I/O failures other than
// absence are returned as-is, wrapped with the offending path.
func (e *Extractor) Extract(ctx context.Context, filePath string) ([]Project, error) {
	ctx = logging.WithSourceFile(ctx, filePath)
	logger := e.logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}

	info, err := os.Stat(filePath)
	if err != nil || !info.Mode().IsRegular() {
		logger.Debug(ctx, "recent projects file not found, returning empty list")
		return []Project{}, nil
	}

	root, err := readTree(filePath)
	if err != nil {
		return nil, err
	}

	var candidates []string
	for _, src := range Sources {
		raw := src.collect(root)
		logger.Trace(ctx, "collected candidates", zap.Stringer("source", src), zap.Int("count", len(raw)))
		for _, r := range raw {
			p := normalizePath(r)
			if p == "" {
				continue
			}
			candidates = append(candidates, p)
		}
	}

	paths := uniquePaths(candidates)
	logger.Debug(ctx, "deduplicated candidates",
		zap.Int("candidates", len(candidates)),
		zap.Int("unique", len(paths)),
	)

	projects, err := e.resolveAll(ctx, paths)
	if err != nil {
		logger.Error(ctx, "failed to resolve project metadata", zap.Error(err))
		return nil, err
	}

	logger.Info(ctx, "extracted recent projects", zap.Int("projects", len(projects)))
	return projects, nil
}

func readTree(filePath string) (*xmlNode, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open recent projects file %s: %w", filePath, err)
	}
	defer f.Close()

	root, err := parseXML(f)
	if err != nil {
		return nil, &ParseError{Path: filePath, Err: err}
	}
	return root, nil
}

// resolveAll resolves metadata with at most e.workers projects in flight.
// Results are stored by index so the output order matches paths.
func (e *Extractor) resolveAll(ctx context.Context, paths []string) ([]Project, error) {
	projects := make([]Project, len(paths))

	workers := e.workers
	if workers < 1 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, p := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rec, err := Resolve(p)
			if err != nil {
				return err
			}
			projects[i] = rec
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return projects, nil
}
