package features

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Artifact file names written inside a feature working directory.
const (
	ResearchFile = "osddt.research.md"
	SpecFile     = "osddt.spec.md"
	PlanFile     = "osddt.plan.md"
	TasksFile    = "osddt.tasks.md"
)

// Phase is how far a feature has progressed through the workflow.
type Phase string

const (
	PhaseNotStarted   Phase = "not-started"
	PhaseResearchDone Phase = "research-done"
	PhaseSpecDone     Phase = "spec-done"
	PhasePlanningDone Phase = "planning-done"
	PhaseImplementing Phase = "implementing"
	PhaseReadyToClose Phase = "ready-to-close"
	PhaseDone         Phase = "done"
)

// nextCommand maps each phase to the command that moves it forward.
var nextCommand = map[Phase]string{
	PhaseNotStarted:   "osddt.spec",
	PhaseResearchDone: "osddt.spec",
	PhaseSpecDone:     "osddt.plan",
	PhasePlanningDone: "osddt.tasks",
	PhaseImplementing: "osddt.implement",
	PhaseReadyToClose: "osddt.done",
}

// Next returns the command to run next, or "" once a feature is done.
func (p Phase) Next() string {
	return nextCommand[p]
}

// DetectPhase inspects a working directory. The first matching artifact,
// from tasks back to research, decides the phase.
func DetectPhase(dir string) (Phase, error) {
	tasks, err := os.ReadFile(filepath.Join(dir, TasksFile))
	switch {
	case err == nil:
		if strings.Contains(string(tasks), "- [ ]") {
			return PhaseImplementing, nil
		}
		return PhaseReadyToClose, nil
	case !errors.Is(err, os.ErrNotExist):
		return "", fmt.Errorf("reading %s: %w", TasksFile, err)
	}

	for _, step := range []struct {
		file  string
		phase Phase
	}{
		{PlanFile, PhasePlanningDone},
		{SpecFile, PhaseSpecDone},
		{ResearchFile, PhaseResearchDone},
	} {
		if _, err := os.Stat(filepath.Join(dir, step.file)); err == nil {
			return step.phase, nil
		}
	}
	return PhaseNotStarted, nil
}
