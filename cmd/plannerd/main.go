package main

import (
	"encoding/json"
	"log"
	"math/rand"
	"net/http"

	"github.com/pkg/errors"

	planner "rrt-planner"
)

type planRequest struct {
	Start      planner.Point      `json:"start"`
	Goal       planner.Point      `json:"goal"`
	GoalRadius float64            `json:"goalRadius"`
	DMax       float64            `json:"d_max"`
	Width      float64            `json:"width"`
	Height     float64            `json:"height"`
	Obstacles  []planner.Obstacle `json:"obstacles"`
	Seed       int64              `json:"seed,omitempty"`       // Optional: fixed seed for reproducible runs
	SaveToFile string             `json:"saveToFile,omitempty"` // Optional: file to save the result to
}

type gridPlanRequest struct {
	Start      planner.Point      `json:"start"`
	Goal       planner.Point      `json:"goal"`
	GoalRadius float64            `json:"goalRadius"`
	StepSize   float64            `json:"step_size"`
	Width      float64            `json:"width"`
	Height     float64            `json:"height"`
	Obstacles  []planner.Obstacle `json:"obstacles"`
}

type planResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message,omitempty"`
	Result  *planner.ResultPayload `json:"result,omitempty"`
	Path    []planner.Point        `json:"path,omitempty"`
}

// corsMiddleware adds CORS headers to allow frontend requests
func corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		// Handle preflight
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// POST /plan - Run the RRT planner
func planHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("📍 Plan request received (RRT)")

	if r.Method != http.MethodPost {
		log.Printf("❌ Method not allowed: %s\n", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Invalid request body: %v\n", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	log.Printf("   Start: (%.2f, %.2f)  Goal: (%.2f, %.2f)  r=%.2f  d_max=%.2f\n",
		req.Start.X, req.Start.Y, req.Goal.X, req.Goal.Y, req.GoalRadius, req.DMax)
	log.Printf("   Obstacles: %d\n", len(req.Obstacles))

	cfg := planner.Config{
		Start:      req.Start,
		Goal:       req.Goal,
		GoalRadius: req.GoalRadius,
		StepSize:   req.DMax,
		Width:      req.Width,
		Height:     req.Height,
		Obstacles:  req.Obstacles,
	}
	if req.Seed != 0 {
		cfg.Rand = rand.New(rand.NewSource(req.Seed))
	}

	result, err := planner.Plan(cfg)
	if err != nil {
		if errors.Is(err, planner.ErrNoPath) {
			log.Printf("❌ No path found: %v\n", err)
			writeJSON(w, planResponse{Success: false, Message: err.Error()})
			return
		}
		log.Printf("❌ Invalid planning input: %v\n", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	path := result.ExtractPath()
	log.Printf("✅ Path found: %d nodes explored, %d waypoints\n", len(result.Points), len(path))

	if req.SaveToFile != "" {
		if err := planner.SaveResult(result, req.SaveToFile); err != nil {
			log.Printf("⚠️  Failed to save result: %v\n", err)
		}
	}

	payload := result.Payload()
	writeJSON(w, planResponse{Success: true, Result: &payload, Path: path})
}

// POST /planGrid - Run the grid BFS planner
func planGridHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("📍 Plan request received (grid BFS)")

	if r.Method != http.MethodPost {
		log.Printf("❌ Method not allowed: %s\n", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req gridPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Invalid request body: %v\n", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.StepSize == 0 {
		req.StepSize = 1
	}

	result, err := planner.PlanGrid(planner.GridConfig{
		Start:      req.Start,
		Goal:       req.Goal,
		GoalRadius: req.GoalRadius,
		StepSize:   req.StepSize,
		Width:      req.Width,
		Height:     req.Height,
		Obstacles:  req.Obstacles,
	})
	if err != nil {
		if errors.Is(err, planner.ErrNoPath) {
			log.Printf("❌ No path found: %v\n", err)
			writeJSON(w, planResponse{Success: false, Message: err.Error()})
			return
		}
		log.Printf("❌ Invalid planning input: %v\n", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	path := result.ExtractPath()
	log.Printf("✅ Path found: %d cells visited, %d waypoints\n", len(result.Points), len(path))

	payload := result.Payload()
	writeJSON(w, planResponse{Success: true, Result: &payload, Path: path})
}

// GET /health - Health check endpoint
func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"status": "ready",
	})
}

func main() {
	log.Println("🚀 RRT Motion Planner Server")

	http.HandleFunc("/plan", corsMiddleware(planHandler))
	http.HandleFunc("/planGrid", corsMiddleware(planGridHandler))
	http.HandleFunc("/health", corsMiddleware(healthHandler))

	log.Println("Server starting on :8080")
	log.Println("")
	log.Println("Endpoints:")
	log.Println("  POST /plan      - Compute a path with the RRT planner")
	log.Println("  POST /planGrid  - Compute a path with the grid BFS planner")
	log.Println("  GET  /health    - Check server status")
	log.Println("")
	log.Println("CORS enabled for all origins")

	if err := http.ListenAndServe(":8080", nil); err != nil {
		log.Fatal(err)
	}
}
