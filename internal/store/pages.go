package store

import (
	"fmt"
	"path/filepath"

	"github.com/rogersnm/shotdoc/internal/model"
	"go.uber.org/zap"
)

// PageStore persists webdoc pages under <baseDir>/<project>.
type PageStore struct {
	projectDir
	Project string
	pages   *model.PageSet
	state   LoadState
}

// OpenPages creates the project's screenshot directory if needed and loads
// any existing pages.
func OpenPages(baseDir, project string, log *zap.Logger) (*PageStore, error) {
	if project == "" {
		return nil, fmt.Errorf("project name is required")
	}
	log = orNop(log).With(zap.String("project", project))
	s := &PageStore{
		projectDir: projectDir{dir: filepath.Join(baseDir, project), log: log},
		Project:    project,
		pages:      model.NewPageSet(),
	}
	if err := s.ensureDirs(s.ScreenshotsDir()); err != nil {
		return nil, err
	}

	loaded := model.NewPageSet()
	s.state = s.load(loaded)
	if s.state == LoadRestored {
		s.pages = loaded
	}
	log.Debug("page store opened", zap.Stringer("state", s.state), zap.Int("pages", s.pages.Len()))
	return s, nil
}

func (s *PageStore) State() LoadState {
	return s.state
}

// Pages returns the pages in stored order.
func (s *PageStore) Pages() *model.PageSet {
	return s.pages
}

func (s *PageStore) Get(id string) (model.Page, bool) {
	return s.pages.Get(id)
}

// Put inserts or replaces the page under id and rewrites the store file.
func (s *PageStore) Put(id string, page model.Page) error {
	s.pages.Put(id, page)
	if err := s.save(s.pages); err != nil {
		return err
	}
	s.log.Debug("page stored", zap.String("page_id", id))
	return nil
}
