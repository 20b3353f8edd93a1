package handler

import (
	"errors"
	"net/http"

	"koperasi-portal/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

// Error codes on the wire, one per HTTP status the RPC endpoint emits
const (
	CodeBadRequest         = "BAD_REQUEST"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeMethodNotSupported = "METHOD_NOT_SUPPORTED"
	CodeInternal           = "INTERNAL_SERVER_ERROR"
)

var codeStatus = map[string]int{
	CodeBadRequest:         http.StatusBadRequest,
	CodeUnauthorized:       http.StatusUnauthorized,
	CodeForbidden:          http.StatusForbidden,
	CodeNotFound:           http.StatusNotFound,
	CodeMethodNotSupported: http.StatusMethodNotAllowed,
	CodeInternal:           http.StatusInternalServerError,
}

// RPCError is a procedure failure that is safe to show to the caller
type RPCError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return e.Message
}

func (e *RPCError) Status() int {
	if status, ok := codeStatus[e.Code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func newRPCError(code, message string) *RPCError {
	return &RPCError{Code: code, Message: message}
}

type errorBody struct {
	Message    string `json:"message"`
	Code       string `json:"code"`
	HTTPStatus int    `json:"httpStatus"`
}

// toRPCError maps service errors onto wire errors. Anything unrecognised is a store
// failure and becomes an opaque internal error.
func toRPCError(err error) (*RPCError, bool) {
	var rpcErr *RPCError
	switch {
	case errors.As(err, &rpcErr):
		return rpcErr, true
	case errors.Is(err, service.ErrNotFound):
		return newRPCError(CodeNotFound, err.Error()), true
	case errors.Is(err, service.ErrInvalidCredentials):
		return newRPCError(CodeUnauthorized, err.Error()), true
	}
	return newRPCError(CodeInternal, "Internal server error"), false
}

func writeError(c *fiber.Ctx, log *logrus.Logger, procedure string, err error) error {
	rpcErr, known := toRPCError(err)
	if !known {
		fields := logrus.Fields{
			"procedure":  procedure,
			"request_id": c.Locals("requestid"),
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			fields["sqlstate"] = pgErr.Code
			if pgErr.ConstraintName != "" {
				fields["constraint"] = pgErr.ConstraintName
			}
		}
		log.WithFields(fields).WithError(err).Error("procedure failed")
	}

	status := rpcErr.Status()
	return c.Status(status).JSON(fiber.Map{
		"error": errorBody{
			Message:    rpcErr.Message,
			Code:       rpcErr.Code,
			HTTPStatus: status,
		},
	})
}

// ErrorHandler renders fiber's own errors (unknown routes, panics) in the RPC envelope
func ErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code := CodeInternal
			for name, status := range codeStatus {
				if status == fiberErr.Code {
					code = name
					break
				}
			}
			return c.Status(fiberErr.Code).JSON(fiber.Map{
				"error": errorBody{Message: fiberErr.Message, Code: code, HTTPStatus: fiberErr.Code},
			})
		}
		return writeError(c, log, c.Path(), err)
	}
}
