package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MessageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type HttpError struct {
	Code    int          `json:"code,omitempty"`
	Message string       `json:"message,omitempty"`
	Detail  *ErrorDetail `json:"detail,omitempty"`
}

func (e *HttpError) Error() string {
	return e.Message
}

func BadRequest(messages ...string) *HttpError {
	message := "Bad Request"
	if len(messages) > 0 {
		message = messages[0]
	}
	return &HttpError{
		Code:    400,
		Message: message,
	}
}

func Unauthorized(messages ...string) *HttpError {
	message := "Invalid JWT Token"
	if len(messages) > 0 {
		message = messages[0]
	}
	return &HttpError{
		Code:    401,
		Message: message,
	}
}

func Forbidden(messages ...string) *HttpError {
	message := "Forbidden"
	if len(messages) > 0 {
		message = messages[0]
	}
	return &HttpError{
		Code:    403,
		Message: message,
	}
}

func NotFound(messages ...string) *HttpError {
	message := "Not Found"
	if len(messages) > 0 {
		message = messages[0]
	}
	return &HttpError{
		Code:    404,
		Message: message,
	}
}

func Conflict(messages ...string) *HttpError {
	message := "Conflict"
	if len(messages) > 0 {
		message = messages[0]
	}
	return &HttpError{
		Code:    409,
		Message: message,
	}
}

func Gone(messages ...string) *HttpError {
	message := "Gone"
	if len(messages) > 0 {
		message = messages[0]
	}
	return &HttpError{
		Code:    410,
		Message: message,
	}
}

func TooManyRequests(messages ...string) *HttpError {
	message := "Too Many Requests"
	if len(messages) > 0 {
		message = messages[0]
	}
	return &HttpError{
		Code:    429,
		Message: message,
	}
}

func InternalServerError(messages ...string) *HttpError {
	message := "Internal Server Error"
	if len(messages) > 0 {
		message = messages[0]
	}
	return &HttpError{
		Code:    500,
		Message: message,
	}
}

func ServiceUnavailable(messages ...string) *HttpError {
	message := "Service Unavailable"
	if len(messages) > 0 {
		message = messages[0]
	}
	return &HttpError{
		Code:    503,
		Message: message,
	}
}

// redemption error taxonomy
//
// unknown and revoked codes share one message on purpose, so that the endpoint
// cannot be used to probe which codes exist
var (
	ErrInviteCodeInvalid  = NotFound("invalid invitation code")
	ErrInviteExpired      = Gone("invitation code expired")
	ErrInviteExhausted    = Gone("invitation code has no uses left")
	ErrEmailRegistered    = Conflict("email address already registered in this school")
	ErrEmailBlacklisted   = BadRequest("email domain not allowed")
	ErrStorageUnavailable = ServiceUnavailable("storage temporarily unavailable, please retry")
)

func MyErrorHandler(ctx *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	httpError := HttpError{
		Code:    500,
		Message: err.Error(),
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		httpError.Code = 404
	} else {
		switch e := err.(type) {
		case *HttpError:
			httpError = *e
		case *fiber.Error:
			httpError.Code = e.Code
		case *ErrorDetail:
			httpError.Code = 400
			httpError.Detail = e
		case fiber.MultiError:
			httpError.Code = 400
			httpError.Message = ""
			for _, err = range e {
				httpError.Message += err.Error() + "\n"
			}
		}
	}

	return ctx.Status(httpError.Code).JSON(&httpError)
}
