package handler

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"saukstas/internal/application/validation"
)

var errBadJSON = validation.Errors{"request body must be a valid JSON object"}

func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

func isJSON(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
}

// readForm reads a multipart, urlencoded or JSON body into a Form. The image
// named by fileField is read from multipart bodies only and may be nil.
func readForm(c echo.Context, fileField string) (validation.Form, *validation.Image, error) {
	switch {
	case isMultipart(c):
		mf, err := c.MultipartForm()
		if err != nil {
			return nil, nil, validation.Errors{"malformed multipart body"}
		}

		img, err := readImage(mf, fileField)
		if err != nil {
			return nil, nil, err
		}

		return validation.NewForm(mf.Value), img, nil
	case isJSON(c):
		body, err := readJSON(c)
		if err != nil {
			return nil, nil, err
		}

		return validation.FormFromJSON(body), nil, nil
	default:
		params, err := c.FormParams()
		if err != nil {
			return nil, nil, validation.Errors{"malformed form body"}
		}

		return validation.NewForm(params), nil, nil
	}
}

func readJSON(c echo.Context) (map[string]any, error) {
	body := make(map[string]any)
	if err := json.NewDecoder(c.Request().Body).Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return body, nil
		}

		return nil, errBadJSON
	}

	return body, nil
}

// readImage opens the first file under field, if any.
func readImage(mf *multipart.Form, field string) (*validation.Image, error) {
	if mf == nil || field == "" || len(mf.File[field]) == 0 {
		return nil, nil
	}

	f, err := mf.File[field][0].Open()
	if err != nil {
		return nil, validation.Errors{"failed to read uploaded file"}
	}
	defer f.Close()

	return validation.ReadImage(f)
}

// bind decodes a JSON or form body into v.
func bind(c echo.Context, v any) error {
	if err := c.Bind(v); err != nil {
		var herr *echo.HTTPError
		if errors.As(err, &herr) && herr.Code == http.StatusUnsupportedMediaType {
			return validation.Errors{"unsupported content type"}
		}

		return errBadJSON
	}

	return nil
}

func queryInt(c echo.Context, name string) int {
	n, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}

	return n
}
