package response

import "github.com/gofiber/fiber/v3"

// ErrorResponse is the error envelope every surface returns.
type ErrorResponse struct {
	Error string `json:"error"`
}

const MessageInternalServerError = "internal server error"

// JSON writes a payload unwrapped; search results are their own wire shape.
func JSON(c fiber.Ctx, status int, data interface{}) error {
	return c.Status(normalizeStatus(status)).JSON(data)
}

// Error writes the {"error": message} envelope.
func Error(c fiber.Ctx, status int, message string) error {
	if message == "" {
		message = MessageInternalServerError
	}
	return c.Status(normalizeStatus(status)).JSON(ErrorResponse{Error: message})
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}
