package dto

import "encoding/json"

// BridgeEnvelope is the inbound textual message from the embedded UI:
// a correlation id, an operation-kind tag and an operation-specific payload.
type BridgeEnvelope struct {
	ID      string          `json:"id"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// BridgeResponse is the outbound counterpart: the same correlation id and a
// result the UI observes as a message event.
type BridgeResponse struct {
	ID     string `json:"id"`
	Result any    `json:"result"`
}

// OperationResult is the generic `{success, error?}` result shape shared by
// write operations.
type OperationResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// ImportCounts reports how many rows an import actually inserted; entries
// skipped for blank names/ids are excluded.
type ImportCounts struct {
	Partners     int `json:"partners"`
	Transactions int `json:"transactions"`
}

// ImportResult is the IMPORT_DATA result.
type ImportResult struct {
	Success bool         `json:"success"`
	Counts  ImportCounts `json:"counts"`
	Error   string       `json:"error,omitempty"`
}

// ImportState is a full exported snapshot: everything currently stored.
type ImportState struct {
	Transactions []SaveTransactionRequest `json:"transactions"`
	Partners     []SavePartnerRequest     `json:"partners"`
}

// MockDataResult is the SET_MOCK_DATA result.
type MockDataResult struct {
	Success bool   `json:"success"`
	Enabled bool   `json:"enabled"`
	Error   string `json:"error,omitempty"`
}

// ScheduleReminderResult is the SCHEDULE_DEBT_REMINDER result.
type ScheduleReminderResult struct {
	Success    bool   `json:"success"`
	ReminderID string `json:"reminderId,omitempty"`
	Error      string `json:"error,omitempty"`
}

// FileContentResult is the PICK_FILE / CLOUD_RESTORE result.
type FileContentResult struct {
	Success bool   `json:"success"`
	Content string `json:"content,omitempty"`
	Error   string `json:"error,omitempty"`
}

// UnlockStateResult is the security unlock-state result.
type UnlockStateResult struct {
	Success  bool `json:"success"`
	Unlocked bool `json:"unlocked"`
}

// Operation payloads.

type DeleteTransactionPayload struct {
	ID string `json:"id"`
}

type DeletePartnerPayload struct {
	ID int64 `json:"id"`
}

// ImportPayload carries either a serialized snapshot (file content) or an
// already-parsed state object.
type ImportPayload struct {
	Content string       `json:"content,omitempty"`
	State   *ImportState `json:"state,omitempty"`
}

type ScheduleReminderPayload struct {
	Timestamp float64 `json:"timestamp"` // Epoch millis
	Title     string  `json:"title"`
	Body      string  `json:"body"`
	TxID      string  `json:"txId"`
}

type CancelReminderPayload struct {
	ID string `json:"id"`
}

type MockDataPayload struct {
	Enabled bool `json:"enabled"`
}

type SaveFilePayload struct {
	FileName string `json:"fileName"`
	MimeType string `json:"mimeType"`
	Content  string `json:"content"`
}

type ShareTextPayload struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

type OpenExternalPayload struct {
	URL string `json:"url"`
}

type CloudBackupPayload struct {
	UserID  string `json:"userId"`
	Content string `json:"content"`
}

type CloudRestorePayload struct {
	UserID string `json:"userId"`
}

type SetUnlockPayload struct {
	Unlocked bool `json:"unlocked"`
}
