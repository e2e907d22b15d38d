package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/carelinkhq/carectl/internal/api"
)

// registerTools registers all CareLink MCP tools on the given server.
func (s *MCPServer) registerTools(srv *server.MCPServer) {

	srv.AddTool(
		mcp.NewTool("carelink_whoami",
			mcp.WithDescription(
				"Show the signed-in back-office admin: name, email, role, and "+
					"account status. Use this to confirm which staff session the "+
					"gateway is operating under.",
			),
			mcp.WithToolAnnotation(readOnlyAnnotation()),
		),
		s.handleWhoami,
	)

	srv.AddTool(
		mcp.NewTool("carelink_dashboard",
			mcp.WithDescription(
				"Fetch the marketplace overview metrics: caregiver and care-seeker "+
					"totals, bookings, revenue, pending KYC reviews, and open reports, "+
					"each with its change against the previous period.",
			),
			mcp.WithToolAnnotation(readOnlyAnnotation()),
		),
		s.handleDashboard,
	)

	srv.AddTool(
		newListTool("carelink_list_caregivers",
			"List caregiver profiles with pagination and sorting. Returns each "+
				"caregiver's id, name, contact details, KYC status, and account "+
				"flags, plus roster summary metrics.",
		),
		s.handleListCaregivers,
	)

	srv.AddTool(
		mcp.NewTool("carelink_get_caregiver",
			mcp.WithDescription(
				"Get one caregiver's full profile including experience, rating, "+
					"completed jobs, and the state of each KYC document "+
					"(valid ID, work authorization, passport).",
			),
			mcp.WithToolAnnotation(readOnlyAnnotation()),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Caregiver ID as returned by carelink_list_caregivers"),
			),
		),
		s.handleGetCaregiver,
	)

	srv.AddTool(
		newListTool("carelink_list_careseekers",
			"List care-seeker profiles with pagination and sorting, including "+
				"KYC status and account flags, plus roster summary metrics.",
		),
		s.handleListCareSeekers,
	)

	srv.AddTool(
		mcp.NewTool("carelink_get_careseeker",
			mcp.WithDescription(
				"Get one care seeker's full profile including care recipients, "+
					"bookings made, and KYC document states.",
			),
			mcp.WithToolAnnotation(readOnlyAnnotation()),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Care-seeker ID as returned by carelink_list_careseekers"),
			),
		),
		s.handleGetCareSeeker,
	)

	srv.AddTool(
		newListTool("carelink_list_bookings",
			"List care bookings with pagination and sorting. Returns each "+
				"booking's participants, status, schedule, and amount.",
		),
		s.handleListBookings,
	)
}

// newListTool builds a read-only list tool with the shared pagination and
// sorting arguments.
func newListTool(name, description string) mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(description),
		mcp.WithToolAnnotation(readOnlyAnnotation()),
		mcp.WithNumber("page",
			mcp.Description("Page number, starting at 1"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Items per page (default 25, max 100)"),
		),
		mcp.WithString("sortBy",
			mcp.Description("Field to sort by (e.g. created_at)"),
		),
		mcp.WithString("sortOrder",
			mcp.Description("Sort direction: ASC or DESC"),
		),
	}
	return mcp.NewTool(name, opts...)
}

func listParamsFromRequest(request mcp.CallToolRequest) api.ListParams {
	return api.ListParams{
		Page:      request.GetInt("page", 0),
		Limit:     clamp(request.GetInt("limit", 25), 1, 100),
		SortBy:    request.GetString("sortBy", ""),
		SortOrder: request.GetString("sortOrder", ""),
	}
}

// --------------------------------------------------------------------------
// Tool handlers
// --------------------------------------------------------------------------

func (s *MCPServer) handleWhoami(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	env, err := s.client.Profile(ctx)
	if err != nil {
		return toolError("fetch profile: %v", err)
	}
	return successJSON(env.Data)
}

func (s *MCPServer) handleDashboard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	env, err := s.client.Dashboard(ctx)
	if err != nil {
		return toolError("fetch dashboard: %v", err)
	}
	return successJSON(env.Data)
}

func (s *MCPServer) handleListCaregivers(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	env, err := s.client.Caregivers(ctx, listParamsFromRequest(request))
	if err != nil {
		return toolError("list caregivers: %v", err)
	}
	return successJSON(env.Data)
}

func (s *MCPServer) handleGetCaregiver(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return toolError("missing required parameter %q", "id")
	}
	env, err := s.client.Caregiver(ctx, id)
	if err != nil {
		return toolError("get caregiver %s: %v", id, err)
	}
	return successJSON(env.Data)
}

func (s *MCPServer) handleListCareSeekers(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	env, err := s.client.CareSeekers(ctx, listParamsFromRequest(request))
	if err != nil {
		return toolError("list careseekers: %v", err)
	}
	return successJSON(env.Data)
}

func (s *MCPServer) handleGetCareSeeker(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return toolError("missing required parameter %q", "id")
	}
	env, err := s.client.CareSeeker(ctx, id)
	if err != nil {
		return toolError("get careseeker %s: %v", id, err)
	}
	return successJSON(env.Data)
}

func (s *MCPServer) handleListBookings(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	env, err := s.client.Bookings(ctx, listParamsFromRequest(request))
	if err != nil {
		return toolError("list bookings: %v", err)
	}
	return successJSON(env.Data)
}
