package repo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/codewave/webhost/internal/modules/model"
	"github.com/codewave/webhost/internal/pkg/apperr"
)

// ProjectRepo is the project metadata store. Every write replaces the whole
// collection; there is no locking, so concurrent writers may lose updates
// (last writer wins). Backends that need concurrent-writer safety must add
// it behind this interface.
type ProjectRepo interface {
	List(ctx context.Context) ([]model.Project, error)
	Upsert(ctx context.Context, p *model.Project) error
	Delete(ctx context.Context, name string) error
}

// upsertInto replaces the record with the same name or appends it.
func upsertInto(projects []model.Project, p *model.Project) []model.Project {
	for i := range projects {
		if projects[i].Name == p.Name {
			projects[i] = *p
			return projects
		}
	}
	return append(projects, *p)
}

func removeFrom(projects []model.Project, name string) ([]model.Project, bool) {
	for i := range projects {
		if projects[i].Name == name {
			return append(projects[:i], projects[i+1:]...), true
		}
	}
	return projects, false
}

func decodeProjects(raw []byte) ([]model.Project, error) {
	projects := []model.Project{}
	if len(raw) == 0 {
		return projects, nil
	}
	if err := sonic.Unmarshal(raw, &projects); err != nil {
		return nil, apperr.Parse("malformed project store", err)
	}
	return projects, nil
}

func encodeProjects(projects []model.Project) ([]byte, error) {
	if projects == nil {
		projects = []model.Project{}
	}
	b, err := sonic.ConfigStd.MarshalIndent(projects, "", "  ")
	if err != nil {
		return nil, apperr.Parse("encode project store", err)
	}
	return b, nil
}

// fileProjectRepo keeps the collection as a JSON array in a single file.
type fileProjectRepo struct {
	path string
}

func NewFileProjectRepo(path string) ProjectRepo {
	return &fileProjectRepo{path: path}
}

func (r *fileProjectRepo) List(ctx context.Context) ([]model.Project, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []model.Project{}, nil
		}
		return nil, apperr.IO("read project store", err)
	}
	return decodeProjects(raw)
}

func (r *fileProjectRepo) Upsert(ctx context.Context, p *model.Project) error {
	projects, err := r.List(ctx)
	if err != nil {
		return err
	}
	return r.save(upsertInto(projects, p))
}

func (r *fileProjectRepo) Delete(ctx context.Context, name string) error {
	projects, err := r.List(ctx)
	if err != nil {
		return err
	}
	projects, found := removeFrom(projects, name)
	if !found {
		return nil
	}
	return r.save(projects)
}

// save writes to a temp file and renames it over the store so readers never
// observe a partially written document.
func (r *fileProjectRepo) save(projects []model.Project) error {
	b, err := encodeProjects(projects)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return apperr.IO("create store directory", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return apperr.IO("write project store", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return apperr.IO("write project store", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return apperr.IO("write project store", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		_ = os.Remove(tmpName)
		return apperr.IO("write project store", fmt.Errorf("rename: %w", err))
	}
	return nil
}
