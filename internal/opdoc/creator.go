// Package opdoc records UI operation steps with highlighted screenshots and
// renders them into an operations guide.
package opdoc

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rogersnm/shotdoc/internal/annotate"
	"github.com/rogersnm/shotdoc/internal/markdown"
	"github.com/rogersnm/shotdoc/internal/model"
	"github.com/rogersnm/shotdoc/internal/store"
	"go.uber.org/zap"
)

// DocumentName is the file Generate writes in the project directory.
const DocumentName = "OPERATIONS.md"

type Creator struct {
	store    *store.StepStore
	log      *zap.Logger
	annotate []annotate.Option
}

// New opens the step store for project under baseDir. opts are passed to the
// annotator for every step.
func New(baseDir, project string, log *zap.Logger, opts ...annotate.Option) (*Creator, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s, err := store.OpenSteps(baseDir, project, log)
	if err != nil {
		return nil, err
	}
	return &Creator{
		store:    s,
		log:      log.With(zap.String("project", project)),
		annotate: opts,
	}, nil
}

func (c *Creator) Store() *store.StepStore {
	return c.store
}

func (c *Creator) OutputDir() string {
	return c.store.Dir()
}

// AddStep highlights r on a copy of screenshot, stores the step and returns
// the path of the annotated image. Nothing is recorded if annotation fails.
func (c *Creator) AddStep(screenshot string, r model.Rect, caption string) (string, error) {
	abs, rel := c.store.NextProcessed()
	step := model.Step{
		Original:          screenshot,
		Processed:         abs,
		RelativeProcessed: rel,
		Rect:              r,
		Caption:           caption,
	}
	if err := step.Validate(); err != nil {
		return "", err
	}
	if err := annotate.File(screenshot, r, abs, c.annotate...); err != nil {
		return "", fmt.Errorf("annotating %s: %w", screenshot, err)
	}
	if err := c.store.Append(step); err != nil {
		return "", fmt.Errorf("saving step: %w", err)
	}
	c.log.Info("step added", zap.Int("index", c.store.Len()-1), zap.Stringer("rect", r), zap.String("processed", abs))
	return abs, nil
}

// Title returns title, or the default title for the project when empty.
func (c *Creator) Title(title string) string {
	if title == "" {
		return markdown.StepsTitle(c.store.Project)
	}
	return title
}

// Document returns the operations guide for the current steps.
func (c *Creator) Document(title string) string {
	return markdown.Steps(c.Title(title), c.store.Steps())
}

// Generate writes the operations guide and returns its path. With no steps it
// writes nothing and returns "".
func (c *Creator) Generate(title string) (string, error) {
	if c.store.Len() == 0 {
		c.log.Info("no steps, skipping document")
		return "", nil
	}
	path := filepath.Join(c.store.Dir(), DocumentName)
	if err := os.WriteFile(path, []byte(c.Document(title)), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	c.log.Info("document generated", zap.String("path", path), zap.Int("steps", c.store.Len()))
	return path, nil
}
