package repo

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/codewave/webhost/internal/modules/model"
	"github.com/codewave/webhost/internal/pkg/apperr"
	"github.com/codewave/webhost/internal/pkg/fsutil"
	"github.com/codewave/webhost/internal/pkg/utils"
)

// ContentRepo owns the bytes of hosted sites, one directory per project
// under the sites root. It never touches the project metadata store.
type ContentRepo interface {
	EnsureDir(ctx context.Context, project string) error
	WriteFile(ctx context.Context, project, filename string, data []byte) (string, error)
	OverwriteFile(ctx context.Context, project, filename, content string) error
	ReadFile(ctx context.Context, project, filename string) (string, error)
	ListFiles(ctx context.Context, project string) ([]model.StoredFile, error)
	DeleteProject(ctx context.Context, project string) error
	ProjectExists(ctx context.Context, project string) (bool, error)
	HasFile(ctx context.Context, project, filename string) (bool, error)
	Open(ctx context.Context, project, rel string) (*os.File, fs.FileInfo, error)
}

type contentRepo struct {
	root string
}

// NewContentRepo returns a filesystem content store rooted at root (e.g. storage/sites).
func NewContentRepo(root string) ContentRepo {
	return &contentRepo{root: root}
}

func (r *contentRepo) projectDir(project string) (string, error) {
	if !utils.IsSlug(project) {
		return "", apperr.InvalidInput("invalid project name")
	}
	return fsutil.JoinWithinRoot(r.root, project)
}

func (r *contentRepo) filePath(project, filename string) (string, error) {
	dir, err := r.projectDir(project)
	if err != nil {
		return "", err
	}
	if !utils.IsSafeFilename(filename) {
		return "", apperr.Validation("invalid filename")
	}
	return filepath.Join(dir, filename), nil
}

func (r *contentRepo) EnsureDir(ctx context.Context, project string) error {
	dir, err := r.projectDir(project)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return apperr.IO("create project directory", err)
	}
	return nil
}

// WriteFile sanitizes filename, then creates or replaces the file. It returns
// the name the file was stored under.
func (r *contentRepo) WriteFile(ctx context.Context, project, filename string, data []byte) (string, error) {
	name := utils.SanitizeFilename(filename)
	p, err := r.filePath(project, name)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return "", apperr.IO("write file", err)
	}
	return name, nil
}

func (r *contentRepo) OverwriteFile(ctx context.Context, project, filename, content string) error {
	p, err := r.existingFile(ctx, project, filename)
	if err != nil {
		return err
	}
	// O_TRUNC without O_CREATE: an edit never creates a file
	f, err := os.OpenFile(p, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return apperr.NotFound("File not found")
		}
		return apperr.IO("open file", err)
	}
	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return apperr.IO("write file", err)
	}
	if err := f.Close(); err != nil {
		return apperr.IO("write file", err)
	}
	return nil
}

func (r *contentRepo) ReadFile(ctx context.Context, project, filename string) (string, error) {
	p, err := r.existingFile(ctx, project, filename)
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", apperr.NotFound("File not found")
		}
		return "", apperr.IO("read file", err)
	}
	return string(b), nil
}

// existingFile resolves a regular file of the project. A missing project, an
// unusable name and a missing entry all read as "File not found" to editors.
func (r *contentRepo) existingFile(ctx context.Context, project, filename string) (string, error) {
	p, err := r.filePath(project, filename)
	if err != nil {
		return "", apperr.NotFound("File not found")
	}
	exists, err := r.ProjectExists(ctx, project)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", apperr.NotFound("File not found")
	}
	st, err := os.Stat(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", apperr.NotFound("File not found")
		}
		return "", apperr.IO("stat file", err)
	}
	if !st.Mode().IsRegular() {
		return "", apperr.NotFound("File not found")
	}
	return p, nil
}

func (r *contentRepo) ListFiles(ctx context.Context, project string) ([]model.StoredFile, error) {
	dir, err := r.projectDir(project)
	if err != nil {
		return nil, apperr.NotFound("Project not found")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperr.NotFound("Project not found")
		}
		return nil, apperr.IO("list project directory", err)
	}
	files := make([]model.StoredFile, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			// removed between ReadDir and Info
			continue
		}
		files = append(files, model.StoredFile{
			Name:     e.Name(),
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

func (r *contentRepo) DeleteProject(ctx context.Context, project string) error {
	dir, err := r.projectDir(project)
	if err != nil {
		// nothing can exist under an invalid name
		return nil
	}
	if err := os.RemoveAll(dir); err != nil {
		return apperr.IO("delete project directory", err)
	}
	return nil
}

func (r *contentRepo) ProjectExists(ctx context.Context, project string) (bool, error) {
	dir, err := r.projectDir(project)
	if err != nil {
		return false, nil
	}
	st, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, apperr.IO("stat project directory", err)
	}
	return st.IsDir(), nil
}

func (r *contentRepo) HasFile(ctx context.Context, project, filename string) (bool, error) {
	p, err := r.filePath(project, filename)
	if err != nil {
		return false, nil
	}
	st, err := os.Stat(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, apperr.IO("stat file", err)
	}
	return st.Mode().IsRegular(), nil
}

// Open resolves rel (which may contain subdirectories) inside the project
// directory and opens it for serving. Directories are reported as not found.
func (r *contentRepo) Open(ctx context.Context, project, rel string) (*os.File, fs.FileInfo, error) {
	dir, err := r.projectDir(project)
	if err != nil {
		return nil, nil, apperr.NotFound("Project not found")
	}
	p, err := fsutil.JoinWithinRoot(dir, rel)
	if err != nil || p == dir {
		return nil, nil, apperr.NotFound("File not found")
	}
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, apperr.NotFound("File not found")
		}
		return nil, nil, apperr.IO("open file", err)
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, nil, apperr.IO("stat file", err)
	}
	if st.IsDir() {
		_ = f.Close()
		return nil, nil, apperr.NotFound("File not found")
	}
	return f, st, nil
}
