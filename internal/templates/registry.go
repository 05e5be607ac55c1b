package templates

// CommandDefinition describes one workflow command that gets written into an
// agent's command directory.
type CommandDefinition struct {
	// Name is the identifier the agent exposes, e.g. "osddt.spec".
	Name string
	// Description is the one-line summary shown by the agent.
	Description string
	// Template is the embedded body template file.
	Template string
}

// definitions is the command catalogue in workflow order.
var definitions = []CommandDefinition{
	{
		Name:        "osddt.continue",
		Description: "Detect the current workflow phase and prompt the next command to run",
		Template:    "continue.md.tmpl",
	},
	{
		Name:        "osddt.research",
		Description: "Research a topic and write a research file to inform the feature specification",
		Template:    "research.md.tmpl",
	},
	{
		Name:        "osddt.start",
		Description: "Start a new feature by creating a branch and working-on folder",
		Template:    "start.md.tmpl",
	},
	{
		Name:        "osddt.spec",
		Description: "Analyze requirements and write a feature specification",
		Template:    "spec.md.tmpl",
	},
	{
		Name:        "osddt.clarify",
		Description: "Resolve open questions in the spec and record decisions",
		Template:    "clarify.md.tmpl",
	},
	{
		Name:        "osddt.plan",
		Description: "Create a technical implementation plan from a specification",
		Template:    "plan.md.tmpl",
	},
	{
		Name:        "osddt.tasks",
		Description: "Generate actionable tasks from an implementation plan",
		Template:    "tasks.md.tmpl",
	},
	{
		Name:        "osddt.implement",
		Description: "Execute tasks from the task list one by one",
		Template:    "implement.md.tmpl",
	},
	{
		Name:        "osddt.done",
		Description: "Mark a feature as done and move it from working-on to done",
		Template:    "done.md.tmpl",
	},
}

// Definitions returns the command catalogue in workflow order. The returned
// slice is a copy; callers may not alter the registry.
func Definitions() []CommandDefinition {
	out := make([]CommandDefinition, len(definitions))
	copy(out, definitions)
	return out
}

// Lookup finds a definition by name.
func Lookup(name string) (CommandDefinition, bool) {
	for _, d := range definitions {
		if d.Name == name {
			return d, true
		}
	}
	return CommandDefinition{}, false
}
