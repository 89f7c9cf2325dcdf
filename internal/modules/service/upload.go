package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"github.com/codewave/webhost/internal/config"
	"github.com/codewave/webhost/internal/modules/model"
	"github.com/codewave/webhost/internal/modules/repo"
	"github.com/codewave/webhost/internal/pkg/apperr"
	"github.com/codewave/webhost/internal/pkg/utils"
	"go.uber.org/zap"
)

// reservedNames would be shadowed by service routes if used as project names.
var reservedNames = map[string]struct{}{
	"api":              {},
	"upload":           {},
	"health":           {},
	"swagger":          {},
	"verify-recaptcha": {},
}

func IsReservedName(name string) bool {
	_, ok := reservedNames[name]
	return ok
}

type UploadService interface {
	Upload(ctx context.Context, in UploadInput) (*UploadOutput, error)
}

type UploadInput struct {
	Project string
	Files   []*multipart.FileHeader
	// BaseURL is scheme://host of the request, used to build the project URL.
	BaseURL string
}

type UploadOutput struct {
	Project   string              `json:"project"`
	FileCount int                 `json:"file_count"`
	URL       string              `json:"url"`
	Files     []model.FileSummary `json:"files"`
}

type uploadService struct {
	projects    repo.ProjectRepo
	content     repo.ContentRepo
	log         *zap.Logger
	maxFileSize int64
	maxFiles    int
	mirror      SiteMirror
	events      EventPublisher
	now         func() time.Time
}

func NewUploadService(projects repo.ProjectRepo, content repo.ContentRepo, log *zap.Logger, cfg *config.Config, mirror SiteMirror, events EventPublisher) UploadService {
	return &uploadService{
		projects:    projects,
		content:     content,
		log:         log,
		maxFileSize: cfg.Upload.MaxFileSize,
		maxFiles:    cfg.Upload.MaxFiles,
		mirror:      mirror,
		events:      events,
		now:         time.Now,
	}
}

func (s *uploadService) Upload(ctx context.Context, in UploadInput) (*UploadOutput, error) {
	mediaTypes, err := s.validate(in)
	if err != nil {
		return nil, err
	}

	name, err := utils.SanitizeProjectName(in.Project)
	if err != nil {
		return nil, err
	}
	if IsReservedName(name) {
		return nil, apperr.Validation(fmt.Sprintf("project name is reserved: %s", name))
	}
	for _, fh := range in.Files {
		if !utils.IsSafeFilename(utils.SanitizeFilename(fh.Filename)) {
			return nil, apperr.Validation(fmt.Sprintf("invalid filename: %q", fh.Filename))
		}
	}

	if err := s.content.EnsureDir(ctx, name); err != nil {
		return nil, err
	}

	now := s.now()
	summaries := make([]model.FileSummary, 0, len(in.Files))
	index := make(map[string]int, len(in.Files))
	for i, fh := range in.Files {
		data, err := s.readFile(fh)
		if err != nil {
			return nil, err
		}
		stored, err := s.content.WriteFile(ctx, name, fh.Filename, data)
		if err != nil {
			return nil, err
		}
		s.mirrorFile(ctx, name, stored, mediaTypes[i], data)

		summary := model.FileSummary{Name: stored, Size: int64(len(data)), Uploaded: now}
		// two inputs sanitizing to the same name leave one file on disk
		if at, ok := index[stored]; ok {
			summaries[at] = summary
			continue
		}
		index[stored] = len(summaries)
		summaries = append(summaries, summary)
	}

	url := strings.TrimRight(in.BaseURL, "/") + "/" + name
	project := &model.Project{
		Name:  name,
		URL:   url,
		Date:  now,
		Files: summaries,
	}
	if err := s.projects.Upsert(ctx, project); err != nil {
		return nil, err
	}

	s.log.Sugar().Infow("project uploaded", "project", name, "files", len(summaries))
	ev := model.NewEvent(model.EventProjectUploaded, name)
	ev.FileCount = len(summaries)
	publish(ctx, s.events, s.log, ev)

	return &UploadOutput{
		Project:   name,
		FileCount: len(summaries),
		URL:       url,
		Files:     summaries,
	}, nil
}

// validate checks the whole batch before anything is written and returns
// the declared media type of each file.
func (s *uploadService) validate(in UploadInput) ([]string, error) {
	if in.Project == "" {
		return nil, apperr.Validation("missing project")
	}
	if len(in.Files) == 0 {
		return nil, apperr.Validation("missing files")
	}
	if len(in.Files) > s.maxFiles {
		return nil, apperr.Validation("too many files")
	}

	mediaTypes := make([]string, len(in.Files))
	for i, fh := range in.Files {
		mt, err := checkFileType(fh.Filename, fh.Header.Get("Content-Type"))
		if err != nil {
			return nil, err
		}
		mediaTypes[i] = mt
	}
	for _, fh := range in.Files {
		if fh.Size > s.maxFileSize {
			return nil, apperr.PayloadTooLarge(fmt.Sprintf("file too large: %s", fh.Filename))
		}
	}
	return mediaTypes, nil
}

func (s *uploadService) readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, apperr.IO(fmt.Sprintf("open upload %s", fh.Filename), err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, s.maxFileSize+1))
	if err != nil {
		return nil, apperr.IO(fmt.Sprintf("read upload %s", fh.Filename), err)
	}
	if int64(len(data)) > s.maxFileSize {
		return nil, apperr.PayloadTooLarge(fmt.Sprintf("file too large: %s", fh.Filename))
	}
	return data, nil
}

func (s *uploadService) mirrorFile(ctx context.Context, project, filename, contentType string, data []byte) {
	if s.mirror == nil {
		return
	}
	if err := s.mirror.PutFile(ctx, project, filename, contentType, data); err != nil {
		s.log.Sugar().Warnw("mirror file failed", "project", project, "file", filename, "err", err)
	}
}
