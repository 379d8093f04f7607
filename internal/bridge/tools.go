package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"toolctl/internal/skill"
	"toolctl/internal/workspace"
)

// catalogTools declares the read-only tool surface backed by the catalog
// service. Reads go through the cache, so repeated agent calls stay off the
// workspace API.
func (s *Server) catalogTools() []server.ServerTool {
	prefix := s.config.ToolPrefix

	return []server.ServerTool{
		{
			Tool: mcp.NewTool(prefix+"_skill_list",
				mcp.WithDescription("List the skill providers installed in the workspace"),
			),
			Handler: s.handleSkillList,
		},
		{
			Tool: mcp.NewTool(prefix+"_skill_show",
				mcp.WithDescription("Show one skill provider including its scripts and the full SKILL.md body"),
				mcp.WithString("id",
					mcp.Required(),
					mcp.Description("Skill provider id"),
				),
			),
			Handler: s.handleSkillShow,
		},
		{
			Tool: mcp.NewTool(prefix+"_tool_list",
				mcp.WithDescription("List workspace tools, optionally restricted to one provider type"),
				mcp.WithString("type",
					mcp.Description("Provider type to list"),
					mcp.Enum("builtin", "api", "workflow", "mcp", "skill"),
				),
			),
			Handler: s.handleToolList,
		},
		{
			Tool: mcp.NewTool(prefix+"_skill_validate",
				mcp.WithDescription("Validate SKILL.md content locally without installing it"),
				mcp.WithString("content",
					mcp.Required(),
					mcp.Description("Raw SKILL.md content including the frontmatter block"),
				),
			),
			Handler: s.handleSkillValidate,
		},
	}
}

func (s *Server) handleSkillList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	providers, err := s.catalog.SkillProviders(ctx, false)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list skill providers: %v", err)), nil
	}

	result := map[string]interface{}{
		"providers": providers,
		"total":     len(providers),
	}

	resultJSON, _ := json.MarshalIndent(result, "", "  ")
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(string(resultJSON)),
		},
	}, nil
}

func (s *Server) handleSkillShow(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id is required"), nil
	}

	detail, err := s.catalog.SkillProviderDetail(ctx, id)
	if err != nil {
		if errors.Is(err, workspace.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("No skill provider with id '%s'", id)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("Failed to fetch skill provider: %v", err)), nil
	}

	resultJSON, _ := json.MarshalIndent(detail, "", "  ")
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(string(resultJSON)),
		},
	}, nil
}

func (s *Server) handleToolList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind := ""
	if argsMap, ok := req.Params.Arguments.(map[string]interface{}); ok {
		if v, ok := argsMap["type"].(string); ok {
			kind = v
		}
	}

	// Without a type the whole provider catalog is returned.
	if kind == "" {
		providers, err := s.catalog.ToolProviders(ctx, false)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list tool providers: %v", err)), nil
		}

		result := map[string]interface{}{
			"providers": providers,
			"total":     len(providers),
		}

		resultJSON, _ := json.MarshalIndent(result, "", "  ")
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(string(resultJSON)),
			},
		}, nil
	}

	tools, err := s.catalog.Tools(ctx, workspace.ToolKind(kind), false)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list %s tools: %v", kind, err)), nil
	}

	result := map[string]interface{}{
		"type":  kind,
		"tools": tools,
		"total": len(tools),
	}

	resultJSON, _ := json.MarshalIndent(result, "", "  ")
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(string(resultJSON)),
		},
	}, nil
}

func (s *Server) handleSkillValidate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError("content is required"), nil
	}

	verdict := workspace.ValidationResult{Valid: true}
	meta, _, err := skill.Parse(content)
	if err != nil {
		verdict = workspace.ValidationResult{Valid: false, Error: err.Error()}
	} else if err := skill.Validate(meta); err != nil {
		verdict = workspace.ValidationResult{
			Valid:       false,
			Name:        meta.Name,
			Description: meta.Description,
			Error:       err.Error(),
		}
	} else {
		verdict.Name = meta.Name
		verdict.Description = meta.Description
	}

	resultJSON, _ := json.MarshalIndent(verdict, "", "  ")
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(string(resultJSON)),
		},
	}, nil
}
