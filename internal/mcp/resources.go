// ABOUTME: MCP resource implementations for the vael store.
// ABOUTME: Provides vael://today and vael://summary dashboard resources.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/vael/internal/models"
	"github.com/harperreed/vael/internal/store"
	"github.com/harperreed/vael/internal/training"
)

func (s *Server) registerResources() {
	// vael://today - today's check-in, habits, meals, and active workout
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "vael://today",
		Name:        "Today",
		Description: "Today's check-in, habit status, meals, and active workout",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// vael://summary - training and body dashboard
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "vael://summary",
		Name:        "Summary Dashboard",
		Description: "Weekly training volume, recent workouts, and latest measurement",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	now := time.Now()
	date := models.DateKey(now)

	result := map[string]interface{}{
		"date": date,
	}

	checkIn, err := s.life.LogFor(date)
	switch {
	case err == nil:
		result["check_in"] = checkIn
	case errors.Is(err, store.ErrNotFound):
		result["check_in"] = nil
	default:
		return nil, fmt.Errorf("failed to load check-in: %w", err)
	}

	habits, err := s.life.Habits(false)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}
	result["habits"] = habits

	totals, err := s.fuel.TotalsOn(now)
	if err != nil {
		return nil, fmt.Errorf("failed to total macros: %w", err)
	}
	result["nutrition"] = map[string]interface{}{
		"calories": totals.Calories,
		"protein":  totals.Protein,
		"carbs":    totals.Carbs,
		"fat":      totals.Fat,
	}

	active, err := s.training.ActiveWorkout()
	switch {
	case err == nil:
		result["active_workout"] = active
	case errors.Is(err, training.ErrNoActiveWorkout):
		result["active_workout"] = nil
	default:
		return nil, fmt.Errorf("failed to load active workout: %w", err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "vael://today",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	now := time.Now()

	weekly, err := s.training.WeeklyVolume(now)
	if err != nil {
		return nil, fmt.Errorf("failed to compute weekly volume: %w", err)
	}

	history, err := s.training.History(10)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	result := map[string]interface{}{
		"generated_at":    now.Format(time.RFC3339),
		"weekly_volume":   weekly,
		"recent_workouts": history,
	}

	latest, err := s.body.Latest()
	switch {
	case err == nil:
		result["latest_measurement"] = latest
	case errors.Is(err, store.ErrNotFound):
		result["latest_measurement"] = nil
	default:
		return nil, fmt.Errorf("failed to load latest measurement: %w", err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "vael://summary",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
