package handler

import (
	"io"

	domainerrors "perkpass/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// errNoFile is reported when a logo form is submitted without a file.
var errNoFile = domainerrors.ErrValidationFailed.WithDetails("choose an image to upload")

// withUpload opens the multipart file field and hands it to fn, closing it afterwards.
func withUpload(c echo.Context, field string, fn func(file io.Reader) error) error {
	header, err := c.FormFile(field)
	if err != nil {
		return errNoFile
	}

	file, err := header.Open()
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	return fn(file)
}
