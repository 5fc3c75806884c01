package service

import (
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// RegisterErrorHandler register custom error handler.
func RegisterErrorHandler(e *echo.Echo, logger log.Logger) {
	e.HTTPErrorHandler = NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), logger).Handler
}

// NewErrorCodeToStatusCodeMaps creates an error code to http status mapping.
func NewErrorCodeToStatusCodeMaps() map[string]int {
	return map[string]int{
		ErrBadParameter:        http.StatusBadRequest,
		ErrEntityNotFound:      http.StatusNotFound,
		ErrInternalServerError: http.StatusInternalServerError,
	}
}

// HTTPErrorHandler renders errors returned by echo handlers as ErrResponse.
type HTTPErrorHandler struct {
	errorCodeToHTTPStatusCodeMap map[string]int
	logger                       log.Logger
}

// NewHTTPErrorHandler creates a new instance of the HTTPErrorHandler.
func NewHTTPErrorHandler(errorCodeToStatusCodeMaps map[string]int, logger log.Logger) *HTTPErrorHandler {
	return &HTTPErrorHandler{
		errorCodeToHTTPStatusCodeMap: errorCodeToStatusCodeMaps,
		logger:                       log.WithPrefix(logger, "component", "HTTPErrorHandler"),
	}
}

func (h *HTTPErrorHandler) getStatusCode(errorCode string) int {
	if status, ok := h.errorCodeToHTTPStatusCodeMap[errorCode]; ok {
		return status
	}

	return http.StatusInternalServerError
}

// Handler handles error returned by echo Handlers.
func (h *HTTPErrorHandler) Handler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		myErr      *MyError
		statusCode int
		he         *echo.HTTPError
	)
	if he, _ = err.(*echo.HTTPError); he != nil {
		myErr, statusCode = fromEchoError(he, err)
	} else {
		myErr = ToMyError(err)
		if myErr == nil {
			myErr = NewMyError(ErrInternalServerError, "an internal server error has occurred", err)
		}
		statusCode = h.getStatusCode(myErr.Code)
	}

	logFn := level.Error
	if statusCode < http.StatusInternalServerError {
		logFn = level.Warn
	}
	logFn(h.logger).Log(
		"msg", "HTTP request error",
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"status", statusCode,
		"err", err,
	)

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(statusCode)
		return
	}
	_ = c.JSON(statusCode, ErrResponse{Error: myErr})
}

// fromEchoError classifies echo routing, binding and OpenAPI validation errors.
func fromEchoError(he *echo.HTTPError, err error) (*MyError, int) {
	if herr, ok := he.Internal.(*echo.HTTPError); ok {
		he = herr
	}

	code := ErrInternalServerError
	var requestError *openapi3filter.RequestError
	switch {
	case errors.As(he.Internal, &requestError):
		code = ErrBadParameter
	case he.Code == http.StatusNotFound:
		code = ErrEntityNotFound
	case he.Code >= http.StatusBadRequest && he.Code < http.StatusInternalServerError:
		code = ErrBadParameter
	}

	m, ok := he.Message.(string)
	if !ok {
		m = http.StatusText(he.Code)
	}
	return NewMyError(code, m, err), he.Code
}

// ErrResponse from server.
type ErrResponse struct {
	Error *MyError `json:"error,omitempty"`
}
