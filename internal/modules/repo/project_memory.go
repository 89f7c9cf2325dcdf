package repo

import (
	"context"
	"sync"

	"github.com/codewave/webhost/internal/modules/model"
)

// memoryProjectRepo is an in-process store for tests and throwaway runs.
type memoryProjectRepo struct {
	mu       sync.Mutex
	projects []model.Project
}

func NewMemoryProjectRepo() ProjectRepo {
	return &memoryProjectRepo{projects: []model.Project{}}
}

func (r *memoryProjectRepo) List(ctx context.Context) ([]model.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Project, len(r.projects))
	for i, p := range r.projects {
		p.Files = cloneFiles(p.Files)
		out[i] = p
	}
	return out, nil
}

func (r *memoryProjectRepo) Upsert(ctx context.Context, p *model.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *p
	stored.Files = cloneFiles(p.Files)
	r.projects = upsertInto(r.projects, &stored)
	return nil
}

func (r *memoryProjectRepo) Delete(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects, _ = removeFrom(r.projects, name)
	return nil
}

func cloneFiles(files []model.FileSummary) []model.FileSummary {
	if files == nil {
		return nil
	}
	out := make([]model.FileSummary, len(files))
	copy(out, files)
	return out
}
