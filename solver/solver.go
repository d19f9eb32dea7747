// Package solver implements the best-first branch-and-bound driver: a
// priority queue of open subproblems, a restricted-then-relaxed compile at
// each, incumbent/bound tracking, and cooperative time-limit cancellation.
// Structurally this follows a dedicated-engine-struct convention (see
// mdd.Engine) rather than a free function closing over search state.
package solver

import (
	"math"
	"time"

	"github.com/katalvlaran/mddbb/logging"
	"github.com/katalvlaran/mddbb/mdd"
	"github.com/katalvlaran/mddbb/metrics"
	"github.com/katalvlaran/mddbb/node"
	"github.com/katalvlaran/mddbb/problem"
	"github.com/katalvlaran/mddbb/queue"
	"github.com/katalvlaran/mddbb/selector"
)

// Options configures a Solver. The zero value is valid: Width 0 selects
// adaptive width, TimeLimit 0 selects no deadline, and nil selectors fall
// back to the package defaults (selector.SimpleVariableSelector,
// selector.RankMergeSelector, selector.RankDeleteSelector).
type Options struct {
	// Width fixes W(node) for every compile. Zero selects adaptive width:
	// W(node) := nVariables - node.LayerNumber.
	Width int

	// TimeLimit bounds wall-clock search time. Zero means unbounded.
	TimeLimit time.Duration

	VariableSelector selector.VariableSelector
	MergeSelector    selector.MergeSelector
	DeleteSelector   selector.DeleteSelector

	// OnProgress, if non-nil, is invoked whenever the incumbent or the
	// upper bound changes.
	OnProgress func(Progress)

	// Logger receives Info-level incumbent/upper-bound/gap updates and
	// Debug-level cutset enqueueing. The mdd engine's merge and delete
	// decisions are not logged. Defaults to logging.NullLogger.
	Logger logging.Logger

	// Metrics, if non-nil, records queue depth, gap, and compile counts.
	Metrics *metrics.Collector
}

// Progress is a snapshot of search state, delivered to Options.OnProgress.
type Progress struct {
	LowerBound float64
	UpperBound float64
	Gap        float64
	Incumbent  *node.Node
}

// Result is the outcome of a Solve call.
type Result struct {
	// Incumbent is the best complete assignment found, or nil if the
	// search never found a feasible solution.
	Incumbent *node.Node

	LowerBound float64
	UpperBound float64
	Gap        float64

	// Optimal is true iff the search proved optimality (the queue emptied
	// naturally, without hitting the time limit).
	Optimal bool

	Elapsed time.Duration
}

// Solver runs best-first branch-and-bound search over a Problem.
type Solver struct {
	problem problem.Problem
	opts    Options
	engine  *mdd.Engine

	q          *queue.Queue
	lowerBound float64
	upperBound float64
	incumbent  *node.Node

	logger logging.Logger
}

// New builds a Solver for p with the given Options, filling in default
// selectors and a NullLogger where unset.
func New(p problem.Problem, opts Options) *Solver {
	if opts.VariableSelector == nil {
		opts.VariableSelector = selector.SimpleVariableSelector{}
	}
	if opts.MergeSelector == nil {
		opts.MergeSelector = selector.RankMergeSelector{}
	}
	if opts.DeleteSelector == nil {
		opts.DeleteSelector = selector.RankDeleteSelector{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.NullLogger{}
	}

	return &Solver{
		problem: p,
		opts:    opts,
		engine:  mdd.New(opts.VariableSelector, opts.MergeSelector, opts.DeleteSelector),
		logger:  opts.Logger,
	}
}

// Solve runs the main branch-and-bound loop to completion or until the
// time limit trips, whichever comes first.
func (s *Solver) Solve() (Result, error) {
	start := time.Now()

	root, err := s.problem.Root()
	if err != nil {
		return Result{}, err
	}

	n := s.problem.NVariables()

	// Boundary case: n == 0 means root() is already its own terminal; the
	// adaptive-width formula would otherwise compute a zero width and trip
	// mdd.ErrBadWidth, so this is handled before ever touching the engine.
	if n == 0 {
		return Result{
			Incumbent:  root,
			LowerBound: root.Value,
			UpperBound: root.Value,
			Gap:        gap(root.Value, root.Value),
			Optimal:    true,
			Elapsed:    time.Since(start),
		}, nil
	}

	s.lowerBound = math.Inf(-1)
	s.upperBound = math.Inf(1)
	s.incumbent = nil

	s.q = queue.New()
	root.RelaxedValue = math.Inf(1)
	s.q.Push(root)

	var deadline time.Time
	hasDeadline := s.opts.TimeLimit > 0
	if hasDeadline {
		deadline = start.Add(s.opts.TimeLimit)
	}
	timedOut := func() bool {
		return hasDeadline && time.Now().After(deadline)
	}

	optimal := false

search:
	for {
		if s.q.Len() == 0 {
			if s.upperBound != s.lowerBound {
				s.upperBound = s.lowerBound
				s.reportProgress()
			}
			optimal = true
			break
		}

		if timedOut() {
			break search
		}

		sub := s.q.Pop()
		s.recordQueueDepth()
		if s.opts.Metrics != nil {
			s.opts.Metrics.IncNodesPopped()
		}

		if sub.RelaxedValue <= s.lowerBound {
			// Dominance prune: a subproblem whose relaxedValue can't beat the
			// current incumbent is never compiled.
			continue
		}

		w := s.width(sub)

		restrictedStart := time.Now()
		restricted, err := s.engine.Compile(s.problem, sub, w, mdd.Restricted)
		if err != nil {
			return Result{}, err
		}
		if s.opts.Metrics != nil {
			s.opts.Metrics.ObserveCompile("restricted", time.Since(restrictedStart))
		}

		if restricted.Terminal != nil && (s.incumbent == nil || restricted.Terminal.Value > s.lowerBound) {
			s.incumbent = restricted.Terminal
			s.lowerBound = restricted.Terminal.Value
			s.logger.Info("new incumbent value=%v lowerBound=%v gap=%v", s.incumbent.Value, s.lowerBound, gap(s.lowerBound, s.upperBound))
			s.reportProgress()
		}

		if timedOut() {
			break search
		}

		if restricted.Exact {
			// This subtree is closed.
			continue
		}

		relaxedStart := time.Now()
		relaxed, err := s.engine.Compile(s.problem, sub, w, mdd.Relaxed)
		if err != nil {
			return Result{}, err
		}
		if s.opts.Metrics != nil {
			s.opts.Metrics.ObserveCompile("relaxed", time.Since(relaxedStart))
		}

		if timedOut() {
			break search
		}

		if relaxed.Terminal != nil && relaxed.Terminal.Value > s.lowerBound {
			for _, c := range relaxed.Cutset {
				// Every cutset node inherits the whole relaxation's terminal
				// value as its RelaxedValue, rather than a per-node bound
				// computed from that node forward. This is looser than it
				// needs to be (a node near the cutset's tail could carry a
				// tighter bound) but is never unsound: the parent relaxation's
				// value still upper-bounds every node beneath it. Left
				// un-tightened.
				c.RelaxedValue = relaxed.Terminal.Value
				s.q.Push(c)
			}
			s.logger.Debug("enqueued cutset size=%d relaxedValue=%v", len(relaxed.Cutset), relaxed.Terminal.Value)
		}

		if s.q.Len() > 0 {
			if m := s.q.MaxRelaxedValue(); m < s.upperBound {
				s.upperBound = m
				s.logger.Info("new upperBound=%v gap=%v", s.upperBound, gap(s.lowerBound, s.upperBound))
				s.reportProgress()
			}
		}
	}

	elapsed := time.Since(start)
	g := gap(s.lowerBound, s.upperBound)
	if s.opts.Metrics != nil {
		s.opts.Metrics.SetGap(g)
	}

	return Result{
		Incumbent:  s.incumbent,
		LowerBound: s.lowerBound,
		UpperBound: s.upperBound,
		Gap:        g,
		Optimal:    optimal,
		Elapsed:    elapsed,
	}, nil
}

// width computes W(node) per the adaptive-width rule.
func (s *Solver) width(n *node.Node) int {
	if s.opts.Width > 0 {
		return s.opts.Width
	}

	return s.problem.NVariables() - n.LayerNumber
}

func (s *Solver) recordQueueDepth() {
	if s.opts.Metrics != nil {
		s.opts.Metrics.SetQueueDepth(s.q.Len())
	}
}

func (s *Solver) reportProgress() {
	if s.opts.OnProgress == nil {
		return
	}

	s.opts.OnProgress(Progress{
		LowerBound: s.lowerBound,
		UpperBound: s.upperBound,
		Gap:        gap(s.lowerBound, s.upperBound),
		Incumbent:  s.incumbent,
	})
}
