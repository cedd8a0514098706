package routes

import (
	"errors"
	"fmt"

	"storefront/dto"
	"storefront/usecases"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// parseBody decodes the JSON body into out and validates it. An empty body
// leaves out untouched.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if len(c.Body()) > 0 {
		if err := c.BodyParser(out); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Failed to parse request body")
		}
	}
	return dto.Validate(out)
}

// ErrorHandler renders every error escaping a handler as
// {"error": true, "message": ...}.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"
		var details interface{}

		var fe *fiber.Error
		var verrs validator.ValidationErrors
		switch {
		case errors.As(err, &fe):
			code = fe.Code
			message = fe.Message
		case errors.As(err, &verrs):
			code = fiber.StatusBadRequest
			message = "Validation failed"
			details = validationDetails(verrs)
		case errors.Is(err, usecases.ErrNotFound):
			code = fiber.StatusNotFound
			message = err.Error()
		case errors.Is(err, usecases.ErrInvalidReference):
			code = fiber.StatusBadRequest
			message = err.Error()
		case errors.Is(err, usecases.ErrConflict):
			code = fiber.StatusConflict
			message = err.Error()
		}

		if code >= fiber.StatusInternalServerError {
			log.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err))
		}

		body := fiber.Map{"error": true, "message": message}
		if details != nil {
			body["details"] = details
		}
		return c.Status(code).JSON(body)
	}
}

func validationDetails(verrs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		out[fe.Field()] = fmt.Sprintf("failed on %s", rule)
	}
	return out
}
