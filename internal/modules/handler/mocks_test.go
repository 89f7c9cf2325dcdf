package handler

import (
	"context"
	"io/fs"
	"os"

	"github.com/codewave/webhost/internal/infra/httpclient"
	"github.com/codewave/webhost/internal/modules/model"
	"github.com/codewave/webhost/internal/modules/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(Pages())
	return r
}

// MockUploadService is a mock implementation of UploadService
type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) Upload(ctx context.Context, in service.UploadInput) (*service.UploadOutput, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadOutput), args.Error(1)
}

// MockProjectService is a mock implementation of ProjectService
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) List(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectService) Upsert(ctx context.Context, p *model.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectService) Delete(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockProjectService) ListFiles(ctx context.Context, name string) ([]model.StoredFile, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StoredFile), args.Error(1)
}

// MockFileService is a mock implementation of FileService
type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) Get(ctx context.Context, project, filename string) (string, error) {
	args := m.Called(ctx, project, filename)
	return args.String(0), args.Error(1)
}

func (m *MockFileService) Put(ctx context.Context, project, filename, content string) error {
	args := m.Called(ctx, project, filename, content)
	return args.Error(0)
}

// MockSiteService is a mock implementation of SiteService
type MockSiteService struct {
	mock.Mock
}

func (m *MockSiteService) Resolve(ctx context.Context, project string) (service.SiteState, error) {
	args := m.Called(ctx, project)
	return args.Get(0).(service.SiteState), args.Error(1)
}

func (m *MockSiteService) Open(ctx context.Context, project, rel string) (*os.File, fs.FileInfo, error) {
	args := m.Called(ctx, project, rel)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*os.File), args.Get(1).(fs.FileInfo), args.Error(2)
}

// MockCaptchaVerifier is a mock implementation of CaptchaVerifier
type MockCaptchaVerifier struct {
	mock.Mock
}

func (m *MockCaptchaVerifier) Verify(ctx context.Context, token, remoteIP string) (*httpclient.CaptchaResult, error) {
	args := m.Called(ctx, token, remoteIP)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*httpclient.CaptchaResult), args.Error(1)
}

// MockForkClient is a mock implementation of ForkClient
type MockForkClient struct {
	mock.Mock
}

func (m *MockForkClient) CheckFork(ctx context.Context, owner, repo string) (*httpclient.ForkStatus, error) {
	args := m.Called(ctx, owner, repo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*httpclient.ForkStatus), args.Error(1)
}

func (m *MockForkClient) CreateFork(ctx context.Context, owner, repo string) (*httpclient.Repository, error) {
	args := m.Called(ctx, owner, repo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*httpclient.Repository), args.Error(1)
}
