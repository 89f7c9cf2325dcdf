package model

import (
	"time"
)

// Project is the metadata record of a hosted site. Name is the store key and
// also the directory name under the sites root.
type Project struct {
	Name  string        `json:"name" binding:"required" example:"my-site-"`
	URL   string        `json:"url" example:"https://host.example/my-site-"`
	Date  time.Time     `json:"date"`
	Files []FileSummary `json:"files"`
}

// FileSummary is a snapshot of one uploaded file taken at upload time. It is
// not refreshed when the file is edited afterwards.
type FileSummary struct {
	Name     string    `json:"name" example:"index.html"`
	Size     int64     `json:"size" example:"500"`
	Uploaded time.Time `json:"uploaded"`
}

// StoredFile describes a file as it currently exists on disk.
type StoredFile struct {
	Name     string    `json:"name" example:"index.html"`
	Size     int64     `json:"size" example:"500"`
	Modified time.Time `json:"modified"`
}
