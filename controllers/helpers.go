package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/iskiospa/iskio-api/utils"
	"github.com/sirupsen/logrus"
)

// requestError carries an HTTP status out of a transaction closure.
type requestError struct {
	Status  int
	Message string
}

func (e *requestError) Error() string { return e.Message }

func conflict(message string) error {
	return &requestError{Status: fiber.StatusConflict, Message: message}
}

func badRequest(message string) error {
	return &requestError{Status: fiber.StatusBadRequest, Message: message}
}

func notFound(message string) error {
	return &requestError{Status: fiber.StatusNotFound, Message: message}
}

// respond maps a handler error to a response; unknown errors become 500.
func respond(c *fiber.Ctx, err error, fallback string) error {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		return utils.Fail(c, reqErr.Status, reqErr.Message, nil)
	}
	logrus.WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
	}).WithError(err).Error(fallback)
	return utils.Fail(c, fiber.StatusInternalServerError, fallback, err)
}

// queryID reads the ?id= parameter used by the citas, home-content and instagram endpoints.
func queryID(c *fiber.Ctx) (uint, error) {
	raw := strings.TrimSpace(c.Query("id"))
	if raw == "" {
		raw = c.Params("id")
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, badRequest("ID inválido")
	}
	return uint(id), nil
}

// optionalText trims the value and maps blanks to nil.
func optionalText(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// nullableID distinguishes an absent field from an explicit null.
type nullableID struct {
	Set   bool
	Value *uint
}

func (n *nullableID) UnmarshalJSON(data []byte) error {
	n.Set = true
	text := strings.TrimSpace(string(data))
	if text == "null" || text == `""` {
		n.Value = nil
		return nil
	}
	parsed, err := strconv.ParseUint(strings.Trim(text, `"`), 10, 64)
	if err != nil {
		return err
	}
	if parsed == 0 {
		n.Value = nil
		return nil
	}
	id := uint(parsed)
	n.Value = &id
	return nil
}
