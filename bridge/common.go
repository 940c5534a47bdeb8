package bridge

import (
	"time"

	"github.com/clibridge/mcpbridge/prompt"
	"github.com/clibridge/mcpbridge/tool"
)

// DefaultTimeout bounds a single assistant run.
const DefaultTimeout = 280 * time.Second

const (
	teamOpening      = "You are a member of my elite software engineering team."
	insightsClosing  = "Please provide detailed insights and recommendations."
	planningClosing  = "Please help me create a comprehensive plan with actionable steps and considerations."
	planningTool     = "collaborative_planning"
	planningSummary  = "Collaborate on implementation planning"
	concernsLabel    = "Focus on these specific concerns"
	pathField        = "file_or_directory_path"
	pathDescription  = "Path to the file or directory to analyze"
	problemField     = "problem_description"
	problemDesc      = "Detailed description of the technical challenge or problem"
	goalsDescription = "Specific goals or success criteria"
)

func planningPrompt(args tool.Arguments) string {
	return prompt.New(teamOpening+" Let's collaborate on "+args.String("planning_focus")+" for this project:").
		Line("Project: "+args.String("project_description")).
		Optional("Constraints", args.String("constraints")).
		Optional("Goals", args.String("goals")).
		Close(planningClosing)
}

func planningRender(args tool.Arguments, output string) string {
	return "## Collaborative Planning Session\n\n**Focus:** " + args.String("planning_focus") + "\n\n" + output
}

func analysisRender(heading string) func(args tool.Arguments, output string) string {
	return func(args tool.Arguments, output string) string {
		return heading + args.String("analysis_type") + "\n\n**Target:** " + args.String(pathField) + "\n\n" + output
	}
}
