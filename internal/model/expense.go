package model

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a single dated expense owned by a user
type Expense struct {
	ID     int64           `json:"id"`
	UserID int64           `json:"-"`
	Item   string          `json:"item"`
	Paid   decimal.Decimal `json:"paid"`
	Date   time.Time       `json:"date"`
}

// MarshalJSON writes paid as a bare JSON number without touching the
// package-level decimal settings.
func (e Expense) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int64       `json:"id"`
		Item string      `json:"item"`
		Paid json.Number `json:"paid"`
		Date time.Time   `json:"date"`
	}{
		ID:   e.ID,
		Item: e.Item,
		Paid: json.Number(e.Paid.String()),
		Date: e.Date,
	})
}

// NumericText holds a numeric field exactly as the client sent it. JSON
// numbers and strings are both accepted and null decodes to "", so the
// handler decides whether the value parses instead of the decoder.
type NumericText string

func (n *NumericText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumericText(s)
		return nil
	}
	*n = NumericText(data)
	return nil
}

func (n NumericText) String() string { return string(n) }

// CreateExpenseRequest is the add-expense payload. UserID is only read from
// the body when the owner id is not part of the path.
type CreateExpenseRequest struct {
	UserID NumericText `json:"user_id" form:"user_id"`
	Item   string      `json:"item" form:"item" binding:"required"`
	Paid   NumericText `json:"paid" form:"paid" binding:"required"`
}
