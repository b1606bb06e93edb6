package planner

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

// Defaults applied by Plan when the corresponding Config field is
// zero.
const (
	DefaultMargin        = 0.5
	DefaultMaxIterations = 100000
)

// ErrNoPath is returned when the sampling budget is exhausted before
// any candidate lands within the goal radius.
var ErrNoPath = errors.New("no path found")

// Config describes a planning run.
type Config struct {
	Start      Point
	Goal       Point
	GoalRadius float64
	StepSize   float64 // maximum edge length, d_max
	Width      float64
	Height     float64
	Obstacles  []Obstacle

	// Margin inflates rectangle obstacles during collision checks.
	// Zero selects DefaultMargin.
	Margin float64

	// MaxIterations bounds the sampling loop so an unreachable goal
	// surfaces as ErrNoPath instead of spinning forever. Zero selects
	// DefaultMaxIterations.
	MaxIterations int

	// Rand supplies the sampling source. Nil selects a time-seeded
	// generator; inject a fixed seed for reproducible runs.
	Rand *rand.Rand
}

// Validate rejects degenerate planning inputs before any geometry
// runs on them.
func (c Config) Validate() error {
	if c.GoalRadius <= 0 {
		return errors.Errorf("goal radius must be positive, got %v", c.GoalRadius)
	}
	if c.StepSize <= 0 {
		return errors.Errorf("step size must be positive, got %v", c.StepSize)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("environment dimensions must be positive, got %vx%v", c.Width, c.Height)
	}
	if c.Margin < 0 {
		return errors.Errorf("safety margin must not be negative, got %v", c.Margin)
	}
	if c.MaxIterations < 0 {
		return errors.Errorf("iteration budget must not be negative, got %d", c.MaxIterations)
	}
	for i, obs := range c.Obstacles {
		if err := obs.Validate(); err != nil {
			return errors.Wrapf(err, "obstacle %d", i)
		}
	}
	return nil
}

// PlanningResult is the read-only outcome of a successful planning
// run. Points is the full node sequence in insertion order;
// TargetNodeIndex designates the node that satisfied the goal
// condition.
type PlanningResult struct {
	Goal            Point
	GoalRadius      float64
	Obstacles       []Obstacle
	Points          []PointEntry
	TargetNodeIndex int
}

// Plan grows a rapidly-exploring random tree from Start until a
// committed node lands within GoalRadius of Goal: sample uniformly in
// [0,Width)x[0,Height), steer from the nearest existing node by at
// most StepSize, reject candidates whose edge is blocked, insert the
// rest. A start already within the goal radius succeeds immediately
// with the root as target.
func Plan(cfg Config) (*PlanningResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	margin := cfg.Margin
	if margin == 0 {
		margin = DefaultMargin
	}
	maxIterations := cfg.MaxIterations
	if maxIterations == 0 {
		maxIterations = DefaultMaxIterations
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	checker := NewCollisionChecker(cfg.Obstacles, margin)
	tree := NewKDTree(cfg.Start)

	target := 0
	distToGoal := cfg.Start.Distance(cfg.Goal)

	for iteration := 0; distToGoal > cfg.GoalRadius; iteration++ {
		if iteration >= maxIterations {
			return nil, errors.Wrapf(ErrNoPath, "goal not reached after %d iterations", maxIterations)
		}

		sample := Point{X: rng.Float64() * cfg.Width, Y: rng.Float64() * cfg.Height}
		nearest := tree.NearestNeighbor(sample)
		candidate := Steer(tree.Position(nearest), sample, cfg.StepSize)

		if checker.IsBlocked(tree.Position(nearest), candidate) {
			continue
		}

		// Insert assigns the planning parent from its own
		// nearest-neighbor query on the candidate, which can pick a
		// node other than the one we steered from. The committed edge
		// is the parent edge, so that one must be clear too.
		parent := tree.NearestNeighbor(candidate)
		if parent != nearest && checker.IsBlocked(tree.Position(parent), candidate) {
			continue
		}

		target = tree.Insert(candidate)
		distToGoal = candidate.Distance(cfg.Goal)
	}

	tree.MarkGoalPath(target)

	return &PlanningResult{
		Goal:            cfg.Goal,
		GoalRadius:      cfg.GoalRadius,
		Obstacles:       cfg.Obstacles,
		Points:          tree.ExportSequence(),
		TargetNodeIndex: target,
	}, nil
}

// ExtractPath walks planning-parent links from the target node back
// to the root and returns the visited points, goal end first. Parent
// indexes are strictly decreasing by construction, so the walk always
// terminates within len(Points) steps.
func (r *PlanningResult) ExtractPath() []Point {
	path := make([]Point, 0)
	for cur := r.TargetNodeIndex; cur != noNode; cur = r.Points[cur].ParentIndex {
		path = append(path, Point{X: r.Points[cur].X, Y: r.Points[cur].Y})
	}
	return path
}
