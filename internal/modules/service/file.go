package service

import (
	"context"

	"github.com/codewave/webhost/internal/modules/model"
	"github.com/codewave/webhost/internal/modules/repo"
	"go.uber.org/zap"
)

// FileService reads and overwrites single files of a hosted project.
// Edits do not touch the project record.
type FileService interface {
	Get(ctx context.Context, project, filename string) (string, error)
	Put(ctx context.Context, project, filename, content string) error
}

type fileService struct {
	content repo.ContentRepo
	log     *zap.Logger
	events  EventPublisher
}

func NewFileService(content repo.ContentRepo, log *zap.Logger, events EventPublisher) FileService {
	return &fileService{
		content: content,
		log:     log,
		events:  events,
	}
}

func (s *fileService) Get(ctx context.Context, project, filename string) (string, error) {
	return s.content.ReadFile(ctx, project, filename)
}

func (s *fileService) Put(ctx context.Context, project, filename, content string) error {
	if err := s.content.OverwriteFile(ctx, project, filename, content); err != nil {
		return err
	}

	s.log.Sugar().Infow("file updated", "project", project, "file", filename, "bytes", len(content))
	ev := model.NewEvent(model.EventFileUpdated, project)
	ev.Filename = filename
	publish(ctx, s.events, s.log, ev)
	return nil
}
