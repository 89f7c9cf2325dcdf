package service

import (
	"context"

	"github.com/codewave/webhost/internal/modules/model"
	"github.com/codewave/webhost/internal/modules/repo"
	"github.com/codewave/webhost/internal/pkg/apperr"
	"github.com/codewave/webhost/internal/pkg/utils"
	"go.uber.org/zap"
)

type ProjectService interface {
	List(ctx context.Context) ([]model.Project, error)
	Upsert(ctx context.Context, p *model.Project) error
	Delete(ctx context.Context, name string) error
	ListFiles(ctx context.Context, name string) ([]model.StoredFile, error)
}

type projectService struct {
	projects repo.ProjectRepo
	content  repo.ContentRepo
	log      *zap.Logger
	mirror   SiteMirror
	events   EventPublisher
}

func NewProjectService(projects repo.ProjectRepo, content repo.ContentRepo, log *zap.Logger, mirror SiteMirror, events EventPublisher) ProjectService {
	return &projectService{
		projects: projects,
		content:  content,
		log:      log,
		mirror:   mirror,
		events:   events,
	}
}

func (s *projectService) List(ctx context.Context) ([]model.Project, error) {
	return s.projects.List(ctx)
}

// Upsert stores a record as given. Its file list is not checked against
// the project directory.
func (s *projectService) Upsert(ctx context.Context, p *model.Project) error {
	if p == nil || p.Name == "" {
		return apperr.Validation("missing project name")
	}
	if !utils.IsSlug(p.Name) {
		return apperr.Validation("invalid project name")
	}
	if p.Files == nil {
		p.Files = []model.FileSummary{}
	}
	return s.projects.Upsert(ctx, p)
}

// Delete removes the record first, then the directory. Either may already
// be gone.
func (s *projectService) Delete(ctx context.Context, name string) error {
	if err := s.projects.Delete(ctx, name); err != nil {
		return err
	}
	if !utils.IsSlug(name) {
		return nil
	}
	if err := s.content.DeleteProject(ctx, name); err != nil {
		return err
	}

	if s.mirror != nil {
		if err := s.mirror.DeleteProject(ctx, name); err != nil {
			s.log.Sugar().Warnw("mirror delete failed", "project", name, "err", err)
		}
	}
	s.log.Sugar().Infow("project deleted", "project", name)
	publish(ctx, s.events, s.log, model.NewEvent(model.EventProjectDeleted, name))
	return nil
}

func (s *projectService) ListFiles(ctx context.Context, name string) ([]model.StoredFile, error) {
	if !utils.IsSlug(name) {
		return nil, apperr.NotFound("Project not found")
	}
	return s.content.ListFiles(ctx, name)
}
