package domain

import "errors"

var (
	ErrRecordNotFound   = errors.New("record not found")
	ErrDuplicateEmail   = errors.New("email already registered")
	ErrStatusTransition = errors.New("theater status can no longer be changed")
	ErrShowNotFound     = errors.New("show not found")
	ErrFoodItemNotFound = errors.New("food item not found")
)
