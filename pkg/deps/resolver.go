package deps

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"
)

// Resolver binds candidates to distribution versions.
type Resolver interface {
	// Resolve looks up every candidate concurrently. Candidates that cannot
	// be resolved are reported in Resolution.Unresolved, never as an error;
	// the error is reserved for cancellation.
	Resolve(ctx context.Context, candidates []Candidate, opts Options) (*Resolution, error)
	// Name returns the resolver's identifier.
	Name() string
}

// Resolution is the outcome of resolving a candidate set.
type Resolution struct {
	Resolved   []ResolvedPackage // Sorted by import name
	Unresolved []Candidate       // Sorted by import name
}

// Resolve implements [Resolver] with a bounded worker pool. Each candidate's
// index fallback runs sequentially inside one worker.
func (r *Registry) Resolve(ctx context.Context, candidates []Candidate, opts Options) (*Resolution, error) {
	opts = opts.WithDefaults()
	p := &pool{
		ctx:     ctx,
		opts:    opts,
		lookup:  r.Lookup,
		jobs:    make(chan Candidate, opts.Workers*2),
		results: make(chan result, opts.Workers*2),
	}
	return p.run(candidates)
}

type pool struct {
	ctx    context.Context
	opts   Options
	lookup func(context.Context, string, Options) (*ResolvedPackage, error)

	jobs    chan Candidate
	results chan result
	wg      sync.WaitGroup

	pending int64
}

type result struct {
	cand Candidate
	pkg  *ResolvedPackage
	err  error
}

func (p *pool) run(candidates []Candidate) (*Resolution, error) {
	res := &Resolution{}
	if len(candidates) == 0 {
		return res, nil
	}

	for range min(p.opts.Workers, len(candidates)) {
		p.wg.Add(1)
		go p.worker()
	}

	atomic.AddInt64(&p.pending, int64(len(candidates)))
	go func() {
		for _, c := range candidates {
			select {
			case p.jobs <- c:
			case <-p.ctx.Done():
				atomic.AddInt64(&p.pending, -1)
			}
		}
		close(p.jobs)
	}()

	err := p.collect(res)
	p.wg.Wait()
	if err != nil {
		return nil, err
	}

	sort.Slice(res.Resolved, func(i, j int) bool { return res.Resolved[i].ImportName < res.Resolved[j].ImportName })
	sort.Slice(res.Unresolved, func(i, j int) bool { return res.Unresolved[i].ImportName < res.Unresolved[j].ImportName })
	return res, nil
}

func (p *pool) worker() {
	defer p.wg.Done()
	for c := range p.jobs {
		if p.ctx.Err() != nil {
			p.results <- result{cand: c, err: p.ctx.Err()}
			continue
		}
		pkg, err := p.lookup(p.ctx, c.Dist, p.opts)
		p.results <- result{cand: c, pkg: pkg, err: err}
	}
}

func (p *pool) collect(res *Resolution) error {
	var firstErr error
	for atomic.LoadInt64(&p.pending) > 0 {
		select {
		case r := <-p.results:
			atomic.AddInt64(&p.pending, -1)
			switch {
			case r.err == nil:
				r.pkg.ImportName = r.cand.ImportName
				res.Resolved = append(res.Resolved, *r.pkg)
			case errors.Is(r.err, ErrUnresolved):
				res.Unresolved = append(res.Unresolved, r.cand)
			case firstErr == nil:
				firstErr = r.err
			}
		case <-p.ctx.Done():
			if firstErr == nil {
				firstErr = p.ctx.Err()
			}
			p.drain()
			return firstErr
		}
	}
	if firstErr == nil {
		firstErr = p.ctx.Err()
	}
	return firstErr
}

// drain consumes results until every worker has exited.
func (p *pool) drain() {
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	for {
		select {
		case <-p.results:
		case <-done:
			return
		}
	}
}
