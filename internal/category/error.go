package category

import "errors"

var (
	ErrNotFound  = errors.New("category not found")
	ErrEmptyName = errors.New("category name cannot be empty")
	ErrDuplicate = errors.New("category name already exists")
	ErrInUse     = errors.New("category has products assigned")
)
