package service

import (
	"context"
	"io/fs"
	"os"

	"github.com/codewave/webhost/internal/modules/repo"
	"github.com/codewave/webhost/internal/pkg/utils"
)

// EntryPoint is the file a project must contain to be served.
const EntryPoint = "index.html"

type SiteState int

const (
	SiteNotFound SiteState = iota
	SiteMissingEntryPoint
	SiteReady
)

func (s SiteState) String() string {
	switch s {
	case SiteNotFound:
		return "ProjectNotFound"
	case SiteMissingEntryPoint:
		return "MissingEntryPoint"
	case SiteReady:
		return "Ready"
	default:
		return "Unknown"
	}
}

// SiteService decides what a request for /<project>/... should get.
type SiteService interface {
	Resolve(ctx context.Context, project string) (SiteState, error)
	Open(ctx context.Context, project, rel string) (*os.File, fs.FileInfo, error)
}

type siteService struct {
	content repo.ContentRepo
}

func NewSiteService(content repo.ContentRepo) SiteService {
	return &siteService{content: content}
}

func (s *siteService) Resolve(ctx context.Context, project string) (SiteState, error) {
	if !utils.IsSlug(project) {
		return SiteNotFound, nil
	}
	exists, err := s.content.ProjectExists(ctx, project)
	if err != nil {
		return SiteNotFound, err
	}
	if !exists {
		return SiteNotFound, nil
	}
	ok, err := s.content.HasFile(ctx, project, EntryPoint)
	if err != nil {
		return SiteNotFound, err
	}
	if !ok {
		return SiteMissingEntryPoint, nil
	}
	return SiteReady, nil
}

// Open serves rel from the project directory; an empty rel or a trailing
// slash maps to the entry point.
func (s *siteService) Open(ctx context.Context, project, rel string) (*os.File, fs.FileInfo, error) {
	if rel == "" || rel[len(rel)-1] == '/' {
		rel += EntryPoint
	}
	return s.content.Open(ctx, project, rel)
}
