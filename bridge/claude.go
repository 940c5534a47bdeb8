package bridge

import (
	"github.com/clibridge/mcpbridge/prompt"
	"github.com/clibridge/mcpbridge/tool"
)

// Claude returns the Claude Code bridge profile.
func Claude() *Profile {
	return &Profile{
		Name:        "claude-bridge",
		Version:     "1.0.0",
		Title:       "Claude Code Bridge Server",
		Description: "MCP Bridge Server enabling Gemini CLI to consult with Claude Code\nfor brainstorming and collaborative problem-solving.",
		Program:     "claude",
		BaseArgs:    []string{"--print"},
		InputStyle:  Stdin,
		Timeout:     DefaultTimeout,
		EmptyOutput: "Claude Code completed but returned no output.",
		Tools:       claudeTools(),
	}
}

func claudeTools() []*tool.Spec {
	return []*tool.Spec{
		{
			Name:        "brainstorm_with_claude",
			Description: "Get Claude Code's perspective on complex technical challenges and brainstorm solutions",
			Summary:     "Get Claude's perspective on technical challenges",
			Fields: []tool.Field{
				{Name: problemField, Description: problemDesc, Type: tool.StringField, Required: true},
				{Name: "context", Description: "Additional context about your codebase, constraints, or environment", Type: tool.StringField},
				{Name: "brainstorm_type", Description: "Type of brainstorming session", Type: tool.StringField, Required: true,
					Enum: []string{"architecture", "debugging", "optimization", "design_patterns", "general"}},
				{Name: "include_code_analysis", Description: "Whether to include analysis of current codebase", Type: tool.BooleanField},
			},
			Prompt: func(args tool.Arguments) string {
				return prompt.New(teamOpening+" I'm working on a "+args.String("brainstorm_type")+" challenge and would like your perspective.").
					Line("Problem: "+args.String(problemField)).
					Optional("Context", args.String("context")).
					When(args.Bool("include_code_analysis"), "Please also analyze the relevant code in the current directory and incorporate your findings into the brainstorming session.").
					Close("Please help me brainstorm solutions, approaches, and considerations for this challenge.")
			},
			Render: func(_ tool.Arguments, output string) string {
				return "## Claude Code Brainstorming Session\n\n" + output
			},
		},
		{
			Name:        "get_claude_code_analysis",
			Description: "Have Claude Code analyze specific files or directories for various aspects",
			Summary:     "Have Claude analyze files/directories",
			Fields: []tool.Field{
				{Name: pathField, Description: pathDescription, Type: tool.StringField, Required: true},
				{Name: "analysis_type", Description: "Type of analysis to perform", Type: tool.StringField, Required: true,
					Enum: []string{"security", "performance", "maintainability", "best_practices", "refactoring", "debugging"}},
				{Name: "specific_concerns", Description: "Specific areas or concerns to focus on", Type: tool.StringField},
			},
			Prompt: func(args tool.Arguments) string {
				return prompt.New(teamOpening+" Please perform a "+args.String("analysis_type")+" analysis of: "+args.String(pathField)).
					Optional(concernsLabel, args.String("specific_concerns")).
					Close(insightsClosing)
			},
			Render: analysisRender("## Claude Code Analysis: "),
		},
		{
			Name:        planningTool,
			Description: "Collaborate with Claude Code on implementation planning and architectural decisions",
			Summary:     planningSummary,
			Fields: []tool.Field{
				{Name: "project_description", Description: "Description of the project or feature to plan", Type: tool.StringField, Required: true},
				{Name: "planning_focus", Description: "Focus of the planning session", Type: tool.StringField, Required: true,
					Enum: []string{"implementation_plan", "architecture_review", "risk_assessment", "alternative_approaches"}},
				{Name: "constraints", Description: "Technical or business constraints to consider", Type: tool.StringField},
				{Name: "goals", Description: goalsDescription, Type: tool.StringField},
			},
			Prompt: planningPrompt,
			Render: planningRender,
		},
	}
}
