package models

import (
	"strings"

	"gorm.io/gorm"
)

type Mediatype string

const (
	MediatypeMedia   Mediatype = "media"
	MediatypeReceipt Mediatype = "receipt"
)

// File is an attachment of a payment. The content itself is kept by the
// file storage of the UI layer.
type File struct {
	DefaultModel
	Filename  string    `json:"filename" example:"bon-tuincentrum.jpg"`
	Mimetype  string    `json:"mimetype" example:"image/jpeg"`
	Mediatype Mediatype `json:"mediatype" example:"receipt"`
}

func (f *File) BeforeSave(_ *gorm.DB) error {
	f.Filename = strings.TrimSpace(f.Filename)
	f.Mimetype = strings.TrimSpace(f.Mimetype)

	return nil
}

func (f *File) AfterSave(_ *gorm.DB) error {
	if f.Mediatype != MediatypeMedia && f.Mediatype != MediatypeReceipt {
		return ErrMediatypeInvalid
	}

	return nil
}
