package repo

import (
	"context"
	"time"

	"github.com/codewave/webhost/internal/modules/model"
	"github.com/codewave/webhost/internal/pkg/apperr"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectRow is the table layout of the postgres backend.
type ProjectRow struct {
	Name  string                                 `gorm:"type:text;primaryKey"`
	URL   string                                 `gorm:"type:text;not null"`
	Date  time.Time                              `gorm:"not null"`
	Files datatypes.JSONSlice[model.FileSummary] `gorm:"type:jsonb;not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ProjectRow) TableName() string { return "projects" }

// gormProjectRepo keeps one row per project. Upserts replace every column of
// the row, matching the whole-record replacement of the other backends.
type gormProjectRepo struct{ db *gorm.DB }

func NewGormProjectRepo(db *gorm.DB) ProjectRepo {
	return &gormProjectRepo{db: db}
}

func (r *gormProjectRepo) List(ctx context.Context) ([]model.Project, error) {
	var rows []ProjectRow
	if err := r.db.WithContext(ctx).Order("created_at ASC, name ASC").Find(&rows).Error; err != nil {
		return nil, apperr.IO("read project store", err)
	}
	projects := make([]model.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, model.Project{
			Name:  row.Name,
			URL:   row.URL,
			Date:  row.Date,
			Files: []model.FileSummary(row.Files),
		})
	}
	return projects, nil
}

func (r *gormProjectRepo) Upsert(ctx context.Context, p *model.Project) error {
	files := p.Files
	if files == nil {
		files = []model.FileSummary{}
	}
	row := ProjectRow{
		Name:  p.Name,
		URL:   p.URL,
		Date:  p.Date,
		Files: datatypes.JSONSlice[model.FileSummary](files),
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"url", "date", "files"}),
	}).Create(&row).Error
	if err != nil {
		return apperr.IO("write project store", err)
	}
	return nil
}

func (r *gormProjectRepo) Delete(ctx context.Context, name string) error {
	if err := r.db.WithContext(ctx).Where("name = ?", name).Delete(&ProjectRow{}).Error; err != nil {
		return apperr.IO("write project store", err)
	}
	return nil
}
