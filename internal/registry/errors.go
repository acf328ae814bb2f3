package registry

import "errors"

var (
	// ErrActivityNotFound возвращается, если кружок с таким названием не заведён.
	ErrActivityNotFound = errors.New("activity not found")

	// ErrAlreadySignedUp возвращается при попытке записать студента повторно.
	ErrAlreadySignedUp = errors.New("student already signed up")

	// ErrNotSignedUp возвращается при попытке отписать студента, которого нет в списке.
	ErrNotSignedUp = errors.New("student not signed up")
)
