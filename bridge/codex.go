package bridge

import (
	"github.com/clibridge/mcpbridge/prompt"
	"github.com/clibridge/mcpbridge/tool"
)

// Codex returns the Codex CLI bridge profile.
func Codex() *Profile {
	return &Profile{
		Name:        "codex-bridge",
		Version:     "1.0.0",
		Title:       "Codex CLI Bridge Server",
		Description: "MCP Bridge Server enabling Gemini CLI to consult with Codex CLI\nfor code generation, analysis, and collaborative problem-solving.",
		Program:     "codex",
		BaseArgs:    []string{"-q"},
		InputStyle:  Argument,
		Timeout:     DefaultTimeout,
		Tools:       codexTools(),
	}
}

func codexTools() []*tool.Spec {
	return []*tool.Spec{
		{
			Name:        "brainstorm_with_codex",
			Description: "Get Codex's perspective on technical challenges and coding problems",
			Summary:     "Get Codex's perspective on technical challenges",
			Fields: []tool.Field{
				{Name: problemField, Description: problemDesc, Type: tool.StringField, Required: true},
				{Name: "context", Description: "Additional context about your project, tech stack, or constraints", Type: tool.StringField},
				{Name: "approach_preference", Description: "Any preferred approaches or technologies to consider", Type: tool.StringField},
			},
			Prompt: func(args tool.Arguments) string {
				return prompt.New(teamOpening+" Help me brainstorm solutions for this technical challenge:").
					Line(args.String(problemField)).
					Optional("Context", args.String("context")).
					Optional("Preferred approach", args.String("approach_preference")).
					Close("Please provide multiple solution approaches with pros/cons and implementation considerations.")
			},
			Render: func(args tool.Arguments, output string) string {
				return "## Codex Brainstorming Session\n\n**Challenge:** " + args.String(problemField) + "\n\n" + output
			},
		},
		{
			Name:        "get_codex_code_analysis",
			Description: "Have Codex analyze specific files or directories for code quality, security, or improvements",
			Summary:     "Have Codex analyze files/directories",
			Fields: []tool.Field{
				{Name: pathField, Description: pathDescription, Type: tool.StringField, Required: true},
				{Name: "analysis_type", Description: "Type of analysis: 'security', 'performance', 'architecture', 'refactoring', or 'general' or 'debugging'",
					Type: tool.StringField, Default: "general"},
				{Name: "specific_concerns", Description: "Specific areas of concern or questions about the code", Type: tool.StringField},
			},
			Prompt: func(args tool.Arguments) string {
				return prompt.New(teamOpening+" Analyze this "+args.String("analysis_type")+" for: "+args.String(pathField)).
					Optional(concernsLabel, args.String("specific_concerns")).
					Close(insightsClosing)
			},
			Render: analysisRender("## Codex Code Analysis: "),
		},
		{
			Name:        planningTool,
			Description: "Work with Codex on planning complex implementations and architectures",
			Summary:     planningSummary,
			Fields: []tool.Field{
				{Name: "project_description", Description: "Description of the project or feature you're planning", Type: tool.StringField, Required: true},
				{Name: "planning_focus", Description: "What aspect to plan: 'implementation', 'architecture', 'testing', 'deployment', etc.", Type: tool.StringField, Required: true},
				{Name: "constraints", Description: "Any constraints (time, resources, technology, etc.)", Type: tool.StringField},
				{Name: "goals", Description: goalsDescription, Type: tool.StringField},
			},
			Prompt: planningPrompt,
			Render: planningRender,
		},
	}
}
