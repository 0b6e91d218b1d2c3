package response

import "github.com/gofiber/fiber/v3"

const (
	MessageBadRequest          = "Bad request"
	MessageUnauthorized        = "Unauthorized"
	MessageNotFound            = "Not found"
	MessageInternalServerError = "Internal server error"
)

// JSON writes a response body as-is. Bodies follow the portal's flat
// envelope: a message (or success flag) plus the payload fields.
func JSON(c fiber.Ctx, status int, body any) error {
	return c.Status(status).JSON(body)
}

// Message is the minimal body shape shared by simple confirmations and
// errors.
type Message struct {
	Message string `json:"message"`
}

func DefaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusUnauthorized:
		return MessageUnauthorized
	case fiber.StatusNotFound:
		return MessageNotFound
	default:
		if status >= 500 {
			return MessageInternalServerError
		}
		return MessageBadRequest
	}
}
