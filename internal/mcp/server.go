// Package mcp exposes the plan generator and the form as MCP tools so an
// assistant can build workout plans for a group.
package mcp

import (
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/aaronromeo/swolecrew/internal/workout"
)

// maxUsers caps the users array of generate_plans.
const maxUsers = 50

// New creates an MCP server with all tools registered.
func New(gen *workout.Generator, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("swolecrew", version,
		server.WithToolCapabilities(false),
		server.WithInstructions("swolecrew builds randomized gym workout plans. Each plan picks distinct machines from a fixed catalog and prescribes sets, reps and rest for a goal (hypertrophy, strength or endurance)."),
	)

	h := &handlers{gen: gen, log: log, now: time.Now}

	s.AddTools(
		server.ServerTool{Tool: toolGeneratePlans, Handler: h.generatePlans},
		server.ServerTool{Tool: toolGeneratePlan, Handler: h.generatePlan},
		server.ServerTool{Tool: toolListEquipment, Handler: h.listEquipment},
		server.ServerTool{Tool: toolListGoals, Handler: h.listGoals},
	)

	return s
}

// handlers holds dependencies for MCP tool handlers.
type handlers struct {
	gen *workout.Generator
	log *slog.Logger
	now func() time.Time
}
