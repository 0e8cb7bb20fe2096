package repository

import "errors"

var (
	ErrTourNotFound = errors.New("tour not found")

	ErrBookingNotFound = errors.New("booking not found")
)
