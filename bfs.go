package planner

import (
	"math"

	"github.com/pkg/errors"
)

// GridConfig describes a planning run for the uniform-grid
// breadth-first planner. StepSize is the grid cell size in map units.
type GridConfig struct {
	Start      Point
	Goal       Point
	GoalRadius float64
	StepSize   float64
	Width      float64
	Height     float64
	Obstacles  []Obstacle
}

// Validate rejects degenerate grid inputs.
func (c GridConfig) Validate() error {
	if c.GoalRadius <= 0 {
		return errors.Errorf("goal radius must be positive, got %v", c.GoalRadius)
	}
	if c.StepSize <= 0 {
		return errors.Errorf("step size must be positive, got %v", c.StepSize)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("environment dimensions must be positive, got %vx%v", c.Width, c.Height)
	}
	for i, obs := range c.Obstacles {
		if err := obs.Validate(); err != nil {
			return errors.Wrapf(err, "obstacle %d", i)
		}
	}
	return nil
}

// grid is a dense boolean raster indexed as cells[x][y].
type grid [][]bool

func newGrid(w, h int) grid {
	cells := make(grid, w)
	for i := range cells {
		cells[i] = make([]bool, h)
	}
	return cells
}

func (g grid) inWindow(x, y int) bool {
	return x >= 0 && y >= 0 && x < len(g) && y < len(g[0])
}

// markCircle sets every in-window cell within r cells of (cx, cy).
func (g grid) markCircle(cx, cy, r int) {
	for i := cx - r; i <= cx+r; i++ {
		for j := cy - r; j <= cy+r; j++ {
			if !g.inWindow(i, j) {
				continue
			}
			if (i-cx)*(i-cx)+(j-cy)*(j-cy) <= r*r {
				g[i][j] = true
			}
		}
	}
}

// markRectangle sets every in-window cell in the inclusive cell range.
func (g grid) markRectangle(x1, y1, x2, y2 int) {
	for i := x1; i <= x2; i++ {
		for j := y1; j <= y2; j++ {
			if !g.inWindow(i, j) {
				continue
			}
			g[i][j] = true
		}
	}
}

// markObstacle rasterizes an obstacle onto the grid.
func (g grid) markObstacle(o Obstacle, step float64) {
	switch o.Shape {
	case ShapeRectangle:
		g.markRectangle(
			int(o.Rect.MinX/step), int(o.Rect.MinY/step),
			int(o.Rect.MaxX/step), int(o.Rect.MaxY/step),
		)
	case ShapeCircle:
		g.markCircle(
			int(o.Circle.CX/step), int(o.Circle.CY/step),
			int(math.Ceil(o.Circle.R/step)),
		)
	}
}

// gridNode is one queued cell; parent is the visit-order index of the
// cell it was discovered from, or -1 for the start.
type gridNode struct {
	x, y   int
	parent int
}

// PlanGrid runs breadth-first search over a discretized copy of the
// environment. The result uses the same shape as Plan, with Points
// holding every visited cell in visit order and parent indexes
// referencing visit-order positions, so path extraction and
// visualization are planner-agnostic.
func PlanGrid(cfg GridConfig) (*PlanningResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gridWidth := int(cfg.Width / cfg.StepSize)
	gridHeight := int(cfg.Height / cfg.StepSize)
	if gridWidth < 1 || gridHeight < 1 {
		return nil, errors.Errorf("step size %v leaves no grid cells in %vx%v", cfg.StepSize, cfg.Width, cfg.Height)
	}

	blocked := newGrid(gridWidth, gridHeight)
	for _, obs := range cfg.Obstacles {
		blocked.markObstacle(obs, cfg.StepSize)
	}

	goal := newGrid(gridWidth, gridHeight)
	goal.markCircle(
		int(cfg.Goal.X/cfg.StepSize), int(cfg.Goal.Y/cfg.StepSize),
		int(math.Ceil(cfg.GoalRadius/cfg.StepSize)),
	)

	startX := int(cfg.Start.X / cfg.StepSize)
	startY := int(cfg.Start.Y / cfg.StepSize)
	if !blocked.inWindow(startX, startY) {
		return nil, errors.Errorf("start (%v,%v) is outside the environment", cfg.Start.X, cfg.Start.Y)
	}
	if blocked[startX][startY] {
		return nil, errors.Wrap(ErrNoPath, "start cell is blocked")
	}

	enqueued := newGrid(gridWidth, gridHeight)
	enqueued[startX][startY] = true

	queue := []gridNode{{x: startX, y: startY, parent: noNode}}
	entries := make([]PointEntry, 0)
	target := noNode

	neighbors := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		idx := len(entries)
		entries = append(entries, PointEntry{
			X:           float64(node.x) * cfg.StepSize,
			Y:           float64(node.y) * cfg.StepSize,
			ParentIndex: node.parent,
		})

		if goal[node.x][node.y] {
			target = idx
			break
		}

		for _, d := range neighbors {
			nx, ny := node.x+d[0], node.y+d[1]
			if !blocked.inWindow(nx, ny) {
				continue
			}
			if enqueued[nx][ny] || blocked[nx][ny] {
				continue
			}
			enqueued[nx][ny] = true
			queue = append(queue, gridNode{x: nx, y: ny, parent: idx})
		}
	}

	if target == noNode {
		return nil, errors.Wrap(ErrNoPath, "grid search exhausted without reaching the goal")
	}

	return &PlanningResult{
		Goal:            cfg.Goal,
		GoalRadius:      cfg.GoalRadius,
		Obstacles:       cfg.Obstacles,
		Points:          entries,
		TargetNodeIndex: target,
	}, nil
}
