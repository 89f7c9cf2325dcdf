package service

import (
	"context"
	"testing"

	"github.com/codewave/webhost/internal/modules/model"
	"github.com/codewave/webhost/internal/modules/repo"
	"github.com/codewave/webhost/internal/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newFileFixture(t *testing.T, events EventPublisher) (repo.ContentRepo, FileService) {
	ctx := context.Background()
	content := repo.NewContentRepo(t.TempDir())
	require.NoError(t, content.EnsureDir(ctx, "site"))
	_, err := content.WriteFile(ctx, "site", "index.html", []byte("<p>old</p>"))
	require.NoError(t, err)
	return content, NewFileService(content, zap.NewNop(), events)
}

func TestFileService_Get(t *testing.T) {
	_, svc := newFileFixture(t, nil)
	ctx := context.Background()

	got, err := svc.Get(ctx, "site", "index.html")
	require.NoError(t, err)
	assert.Equal(t, "<p>old</p>", got)

	_, err = svc.Get(ctx, "site", "missing.html")
	assert.Equal(t, "File not found", apperr.Message(err))

	_, err = svc.Get(ctx, "ghost", "index.html")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestFileService_Put(t *testing.T) {
	events := &MockEventPublisher{}
	events.On("PublishJSON", mock.Anything, mock.MatchedBy(func(ev model.Event) bool {
		return ev.Type == model.EventFileUpdated && ev.Project == "site" && ev.Filename == "index.html"
	})).Return(nil).Once()
	content, svc := newFileFixture(t, events)
	ctx := context.Background()

	require.NoError(t, svc.Put(ctx, "site", "index.html", "<p>new</p>"))
	got, err := content.ReadFile(ctx, "site", "index.html")
	require.NoError(t, err)
	assert.Equal(t, "<p>new</p>", got)

	// no file is created by an edit
	err = svc.Put(ctx, "site", "new.html", "x")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	ok, err := content.HasFile(ctx, "site", "new.html")
	require.NoError(t, err)
	assert.False(t, ok)

	events.AssertExpectations(t)
}
