// Package webdoc records pages discovered while exploring a web UI and
// renders them into a README.
package webdoc

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rogersnm/shotdoc/internal/markdown"
	"github.com/rogersnm/shotdoc/internal/model"
	"github.com/rogersnm/shotdoc/internal/store"
	"go.uber.org/zap"
)

// DocumentName is the file Generate writes in the project directory.
const DocumentName = "README.md"

type Creator struct {
	store *store.PageStore
	log   *zap.Logger
}

// New opens the page store for project under baseDir.
func New(baseDir, project string, log *zap.Logger) (*Creator, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s, err := store.OpenPages(baseDir, project, log)
	if err != nil {
		return nil, err
	}
	return &Creator{store: s, log: log.With(zap.String("project", project))}, nil
}

func (c *Creator) Store() *store.PageStore {
	return c.store
}

func (c *Creator) OutputDir() string {
	return c.store.Dir()
}

// AddPage stores page under id, replacing any page with the same id.
func (c *Creator) AddPage(id string, page model.Page) error {
	if id == "" {
		return fmt.Errorf("page id is required")
	}
	if err := c.store.Put(id, page); err != nil {
		return fmt.Errorf("saving page %s: %w", id, err)
	}
	c.log.Info("page added", zap.String("page_id", id), zap.Int("links", len(page.Links)))
	return nil
}

// Document returns the README content for the current pages.
func (c *Creator) Document() string {
	return markdown.Pages(c.store.Project, c.store.Pages())
}

// Generate writes the README, even when no pages are recorded, and returns
// its path.
func (c *Creator) Generate() (string, error) {
	path := filepath.Join(c.store.Dir(), DocumentName)
	if err := os.WriteFile(path, []byte(c.Document()), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	c.log.Info("document generated", zap.String("path", path), zap.Int("pages", c.store.Pages().Len()))
	return path, nil
}
