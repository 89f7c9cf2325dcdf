package service

import (
	"context"
	"io"
	"testing"

	"github.com/codewave/webhost/internal/modules/repo"
	"github.com/codewave/webhost/internal/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteService_Resolve(t *testing.T) {
	ctx := context.Background()
	content := repo.NewContentRepo(t.TempDir())
	require.NoError(t, content.EnsureDir(ctx, "ready"))
	_, err := content.WriteFile(ctx, "ready", "index.html", []byte("<h1>ok</h1>"))
	require.NoError(t, err)
	require.NoError(t, content.EnsureDir(ctx, "noentry"))
	_, err = content.WriteFile(ctx, "noentry", "about.html", []byte("about"))
	require.NoError(t, err)

	svc := NewSiteService(content)

	tests := []struct {
		project string
		want    SiteState
	}{
		{"ready", SiteReady},
		{"noentry", SiteMissingEntryPoint},
		{"ghost", SiteNotFound},
		{"Not A Slug", SiteNotFound},
		{"..", SiteNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.project, func(t *testing.T) {
			got, err := svc.Resolve(ctx, tt.project)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "got %s", got)
		})
	}
}

func TestSiteService_Open(t *testing.T) {
	ctx := context.Background()
	content := repo.NewContentRepo(t.TempDir())
	require.NoError(t, content.EnsureDir(ctx, "site"))
	_, err := content.WriteFile(ctx, "site", "index.html", []byte("home"))
	require.NoError(t, err)
	_, err = content.WriteFile(ctx, "site", "app.js", []byte("js"))
	require.NoError(t, err)
	svc := NewSiteService(content)

	for rel, want := range map[string]string{"": "home", "app.js": "js"} {
		f, info, err := svc.Open(ctx, "site", rel)
		require.NoError(t, err)
		b, err := io.ReadAll(f)
		require.NoError(t, err)
		require.NoError(t, f.Close())
		assert.Equal(t, want, string(b))
		assert.Equal(t, int64(len(want)), info.Size())
	}

	_, _, err = svc.Open(ctx, "site", "missing.css")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	_, _, err = svc.Open(ctx, "site", "../../etc/passwd")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
