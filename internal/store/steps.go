package store

import (
	"fmt"
	"path"
	"path/filepath"

	"github.com/rogersnm/shotdoc/internal/model"
	"go.uber.org/zap"
)

// TempDirName is the directory under the base dir that holds opdoc projects.
const TempDirName = ".temp"

const processedDirName = "processed"

// StepStore persists opdoc steps under <baseDir>/.temp/<project>.
type StepStore struct {
	projectDir
	Project string
	steps   []model.Step
	state   LoadState
}

// OpenSteps creates the project's screenshot and processed directories if
// needed and loads any existing steps.
func OpenSteps(baseDir, project string, log *zap.Logger) (*StepStore, error) {
	if project == "" {
		return nil, fmt.Errorf("project name is required")
	}
	log = orNop(log).With(zap.String("project", project))
	s := &StepStore{
		projectDir: projectDir{dir: filepath.Join(baseDir, TempDirName, project), log: log},
		Project:    project,
	}
	if err := s.ensureDirs(s.ScreenshotsDir(), s.ProcessedDir()); err != nil {
		return nil, err
	}

	var loaded []model.Step
	s.state = s.load(&loaded)
	if s.state == LoadRestored {
		s.steps = loaded
	}
	log.Debug("step store opened", zap.Stringer("state", s.state), zap.Int("steps", len(s.steps)))
	return s, nil
}

func (s *StepStore) ProcessedDir() string {
	return filepath.Join(s.dir, processedDirName)
}

func (s *StepStore) State() LoadState {
	return s.state
}

// Steps returns a copy of the steps in append order.
func (s *StepStore) Steps() []model.Step {
	out := make([]model.Step, len(s.steps))
	copy(out, s.steps)
	return out
}

func (s *StepStore) Len() int {
	return len(s.steps)
}

// NextProcessed returns the absolute and project-relative paths for the
// annotated image of the next step.
func (s *StepStore) NextProcessed() (abs, rel string) {
	name := fmt.Sprintf("step_%03d.png", len(s.steps))
	return filepath.Join(s.ProcessedDir(), name), path.Join(processedDirName, name)
}

// Append adds step to the end of the list and rewrites the store file.
func (s *StepStore) Append(step model.Step) error {
	s.steps = append(s.steps, step)
	if err := s.save(s.stepsForSave()); err != nil {
		return err
	}
	s.log.Debug("step stored", zap.Int("index", len(s.steps)-1))
	return nil
}

func (s *StepStore) stepsForSave() []model.Step {
	if s.steps == nil {
		return []model.Step{}
	}
	return s.steps
}
