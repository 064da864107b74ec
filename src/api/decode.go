// decode.go - Strict decoder for the /text/all response body.
// The remote API prefixes its bookkeeping fields with an underscore; the
// decoder requires all five documented fields and rejects the whole batch on
// the first missing or mistyped one. Unknown extra fields are ignored.

package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"msgboard/src/models"
)

// rawMessage mirrors one element of the response array. Pointer fields
// distinguish a missing key from a zero value.
type rawMessage struct {
	ID        *string `json:"id"`
	CreatedAt *string `json:"_created_at"`
	UpdatedAt *string `json:"_updated_at"`
	UserID    *string `json:"_user_id"`
	Text      *string `json:"text"`
}

// DecodeMessages validates a JSON value as an ordered list of board messages.
// It never returns a partial list: any bad element fails the batch, and the
// returned *models.DecodeError names the element and field at fault.
func DecodeMessages(data []byte) ([]models.Message, error) {
	// json.Unmarshal quietly turns a top-level null into a nil slice, so the
	// array check has to look at the raw value.
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &models.DecodeError{Index: -1, Message: "expected a JSON array"}
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, &models.DecodeError{Index: -1, Message: "expected a JSON array"}
	}

	msgs := make([]models.Message, 0, len(elements))
	for i, element := range elements {
		var raw rawMessage
		if err := json.Unmarshal(element, &raw); err != nil {
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) && typeErr.Field != "" {
				return nil, &models.DecodeError{Index: i, Field: typeErr.Field, Message: "expected a string"}
			}
			return nil, &models.DecodeError{Index: i, Message: "expected a JSON object"}
		}

		if err := raw.checkRequired(i); err != nil {
			return nil, err
		}

		createdAt, err := time.Parse(time.RFC3339, *raw.CreatedAt)
		if err != nil {
			return nil, &models.DecodeError{Index: i, Field: "_created_at", Message: "not an ISO-8601 date-time"}
		}
		updatedAt, err := time.Parse(time.RFC3339, *raw.UpdatedAt)
		if err != nil {
			return nil, &models.DecodeError{Index: i, Field: "_updated_at", Message: "not an ISO-8601 date-time"}
		}

		msgs = append(msgs, models.Message{
			ID:        *raw.ID,
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
			UserID:    *raw.UserID,
			Text:      *raw.Text,
		})
	}

	return msgs, nil
}

func (r *rawMessage) checkRequired(index int) error {
	required := []struct {
		field string
		value *string
	}{
		{"id", r.ID},
		{"_created_at", r.CreatedAt},
		{"_updated_at", r.UpdatedAt},
		{"_user_id", r.UserID},
		{"text", r.Text},
	}
	for _, req := range required {
		if req.value == nil {
			return &models.DecodeError{Index: index, Field: req.field, Message: "missing"}
		}
	}
	return nil
}
