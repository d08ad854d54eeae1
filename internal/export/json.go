// Package export writes the app state out as a JSON snapshot, a CSV report
// or an XLSX workbook, and reads JSON snapshots back in.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/theirongolddev/rebalance/internal/model"
)

var (
	// ErrMissingKeys is returned by Import when a required top-level key is
	// absent or null.
	ErrMissingKeys = &model.ValidationError{Op: "import", Reason: "payload is missing required keys"}

	// ErrMalformedPayload is returned by Import for input that is not a JSON
	// snapshot.
	ErrMalformedPayload = &model.ValidationError{Op: "import", Reason: "payload is not a valid snapshot"}
)

var requiredKeys = []string{"transactions", "debts", "settings"}

// JSON encodes data as an indented snapshot.
func JSON(data model.AppData) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}

// WriteJSON writes the snapshot to w.
func WriteJSON(w io.Writer, data model.AppData) error {
	b, err := JSON(data)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// Import decodes a snapshot. Payloads without transactions, debts or
// settings are rejected with ErrMissingKeys; anything that is not valid
// JSON of the right shape with ErrMalformedPayload.
func Import(payload []byte) (model.AppData, error) {
	payload = bytes.TrimPrefix(payload, []byte(BOM))

	var top map[string]json.RawMessage
	if err := json.Unmarshal(payload, &top); err != nil {
		return model.AppData{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	var missing []string
	for _, k := range requiredKeys {
		raw, ok := top[k]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return model.AppData{}, fmt.Errorf("%w: %s", ErrMissingKeys, strings.Join(missing, ", "))
	}

	var data model.AppData
	if err := json.Unmarshal(payload, &data); err != nil {
		return model.AppData{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if data.Debts == nil {
		data.Debts = []model.Debt{}
	}
	if data.Transactions == nil {
		data.Transactions = []model.Transaction{}
	}
	return data, nil
}
