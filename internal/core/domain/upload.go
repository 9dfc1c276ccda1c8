package domain

import "errors"

// ErrInvalidFile covers disallowed file types, oversized files, and
// over-limit file counts in multipart uploads.
var ErrInvalidFile = errors.New("invalid file")

// ErrUploadFailed covers filesystem staging failures and rejections from the
// external image host.
var ErrUploadFailed = errors.New("image upload failed")
