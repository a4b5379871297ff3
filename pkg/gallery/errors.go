package gallery

import "errors"

var ErrNotFound = errors.New("not found")
var ErrMissingName = errors.New("name must be provided")
var ErrMissingEmail = errors.New("email must be provided")
var ErrInvalidRole = errors.New("role must be viewer or contributor")
var ErrInvalidVisibility = errors.New("visibility must be private or public")
var ErrInvalidSortBy = errors.New("sort_by must be date or name")
var ErrNoMediaSelected = errors.New("at least one media id must be provided")
var ErrUnsupportedMedia = errors.New("only image and video files are supported")
