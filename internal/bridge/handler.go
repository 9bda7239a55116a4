package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tijarati/tijarati_host/internal/apperrors"
	portssvc "github.com/tijarati/tijarati_host/internal/core/ports/services"
	"github.com/tijarati/tijarati_host/internal/dto"
)

// Handler processes inbound bridge messages. Each message runs Received →
// Parsed → Dispatched → Responded to completion; independent messages may be
// in flight concurrently.
type Handler struct {
	services *portssvc.ServiceContainer
	log      *slog.Logger

	// Exit is invoked for EXIT_APP. Defaults to a log line; the host shell
	// hooks its own shutdown here.
	Exit func()
}

func NewHandler(services *portssvc.ServiceContainer, logger *slog.Logger) *Handler {
	return &Handler{services: services, log: logger}
}

// HandleMessage parses one inbound message, dispatches it and delivers the
// correlated response. If the message carried a correlation id, exactly one
// response with that id is sent regardless of parse failures, handler errors
// or panics; a request that never gets a response would strand the UI
// awaiting it forever.
func (h *Handler) HandleMessage(ctx context.Context, raw []byte, responder Responder) {
	var env dto.BridgeEnvelope
	parseErr := json.Unmarshal(raw, &env)
	if parseErr != nil && env.ID == "" {
		// Without an envelope there is no correlation id to answer.
		h.log.Error("Dropping unparseable bridge message", slog.String("error", parseErr.Error()))
		return
	}

	var result any
	func() {
		defer func() {
			if rec := recover(); rec != nil {
				h.log.Error("Bridge dispatch panicked",
					slog.String("type", env.Type),
					slog.Any("panic", rec),
				)
				result = dto.OperationResult{Success: false, Error: fmt.Sprintf("%v", rec)}
			}
		}()
		if parseErr != nil {
			result = dto.OperationResult{Success: false, Error: apperrors.ErrProtocol.Error()}
			return
		}
		result = h.dispatch(ctx, env)
	}()

	if env.ID == "" {
		// Fire-and-forget message; nothing to correlate.
		return
	}
	if err := responder.Respond(ctx, env.ID, result); err != nil {
		h.log.Error("Failed to deliver bridge response",
			slog.String("id", env.ID),
			slog.String("type", env.Type),
			slog.String("error", err.Error()),
		)
	}
}

func failure(err error) dto.OperationResult {
	return dto.OperationResult{Success: false, Error: err.Error()}
}

// unmarshalPayload decodes into dst; an absent payload leaves the zero
// value, a malformed one is a protocol error.
func unmarshalPayload(raw json.RawMessage, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("malformed payload: %w", apperrors.ErrProtocol)
	}
	return nil
}

// dispatch routes the kind tag to exactly one operation. Read operations
// return the record list directly; writes return `{success, ...}` shapes.
func (h *Handler) dispatch(ctx context.Context, env dto.BridgeEnvelope) any {
	switch env.Type {
	case TypeGetTransactions:
		txns, err := h.services.Transaction.ListTransactions(ctx)
		if err != nil {
			return failure(err)
		}
		return txns

	case TypeSaveTransaction:
		var req dto.SaveTransactionRequest
		if err := unmarshalPayload(env.Payload, &req); err != nil {
			return failure(err)
		}
		if err := h.services.Transaction.SaveTransaction(ctx, req); err != nil {
			return failure(err)
		}
		return dto.OperationResult{Success: true}

	case TypeDeleteTransaction:
		var req dto.DeleteTransactionPayload
		if err := unmarshalPayload(env.Payload, &req); err != nil {
			return failure(err)
		}
		if err := h.services.Transaction.DeleteTransaction(ctx, req.ID); err != nil {
			return failure(err)
		}
		return dto.OperationResult{Success: true}

	case TypeGetPartners:
		partners, err := h.services.Partner.ListPartners(ctx)
		if err != nil {
			return failure(err)
		}
		return partners

	case TypeSavePartner:
		var req dto.SavePartnerRequest
		if err := unmarshalPayload(env.Payload, &req); err != nil {
			return failure(err)
		}
		id, err := h.services.Partner.SavePartner(ctx, req)
		if err != nil {
			return failure(err)
		}
		return dto.SavePartnerResponse{Success: true, ID: id}

	case TypeDeletePartner:
		var req dto.DeletePartnerPayload
		if err := unmarshalPayload(env.Payload, &req); err != nil {
			return failure(err)
		}
		if err := h.services.Partner.DeletePartner(ctx, req.ID); err != nil {
			return failure(err)
		}
		return dto.OperationResult{Success: true}

	case TypeClearAllData:
		if err := h.services.Maintenance.ClearAll(ctx); err != nil {
			return failure(err)
		}
		return dto.OperationResult{Success: true}

	case TypeImportData:
		return h.dispatchImport(ctx, env.Payload)

	case TypeSetMockData:
		var req dto.MockDataPayload
		if err := unmarshalPayload(env.Payload, &req); err != nil {
			return failure(err)
		}
		if err := h.services.Maintenance.SetMockData(ctx, req.Enabled); err != nil {
			return dto.MockDataResult{Success: false, Enabled: req.Enabled, Error: err.Error()}
		}
		return dto.MockDataResult{Success: true, Enabled: req.Enabled}

	case TypeScheduleReminder:
		var req dto.ScheduleReminderPayload
		if err := unmarshalPayload(env.Payload, &req); err != nil {
			return failure(err)
		}
		handle, err := h.services.Reminder.Schedule(ctx, req)
		if err != nil {
			return dto.ScheduleReminderResult{Success: false, Error: err.Error()}
		}
		return dto.ScheduleReminderResult{Success: true, ReminderID: handle}

	case TypeCancelReminder:
		var req dto.CancelReminderPayload
		if err := unmarshalPayload(env.Payload, &req); err != nil {
			return failure(err)
		}
		h.services.Reminder.Cancel(ctx, req.ID)
		return dto.OperationResult{Success: true}

	case TypeSaveFile:
		var req dto.SaveFilePayload
		if err := unmarshalPayload(env.Payload, &req); err != nil {
			return failure(err)
		}
		msg, err := h.services.Device.SaveFile(ctx, req.FileName, req.MimeType, req.Content)
		if err != nil {
			return dto.OperationResult{Success: false, Message: err.Error()}
		}
		return dto.OperationResult{Success: true, Message: msg}

	case TypePickFile:
		content, ok, err := h.services.Device.PickFile(ctx)
		if err != nil {
			return dto.FileContentResult{Success: false, Error: err.Error()}
		}
		if !ok {
			return dto.FileContentResult{Success: false}
		}
		return dto.FileContentResult{Success: true, Content: content}

	case TypeShareText:
		var req dto.ShareTextPayload
		if err := unmarshalPayload(env.Payload, &req); err != nil {
			return failure(err)
		}
		msg, err := h.services.Device.ShareText(ctx, req.Title, req.Text)
		if err != nil {
			return dto.OperationResult{Success: false, Message: err.Error()}
		}
		return dto.OperationResult{Success: true, Message: msg}

	case TypeOpenExternal:
		var req dto.OpenExternalPayload
		if err := unmarshalPayload(env.Payload, &req); err != nil {
			return failure(err)
		}
		if err := h.services.Device.OpenExternal(ctx, req.URL); err != nil {
			return failure(err)
		}
		return dto.OperationResult{Success: true}

	case TypeExitApp:
		if h.Exit != nil {
			h.Exit()
		} else {
			h.log.Info("Exit requested")
		}
		return dto.OperationResult{Success: true}

	case TypeCloudBackup:
		var req dto.CloudBackupPayload
		if err := unmarshalPayload(env.Payload, &req); err != nil {
			return failure(err)
		}
		if err := h.services.Device.CloudBackup(ctx, req.UserID, req.Content); err != nil {
			return failure(err)
		}
		return dto.OperationResult{Success: true}

	case TypeCloudRestore:
		var req dto.CloudRestorePayload
		if err := unmarshalPayload(env.Payload, &req); err != nil {
			return failure(err)
		}
		content, err := h.services.Device.CloudRestore(ctx, req.UserID)
		if err != nil {
			return dto.FileContentResult{Success: false, Error: err.Error()}
		}
		return dto.FileContentResult{Success: true, Content: content}

	case TypeGetUnlockState:
		unlocked, err := h.services.Device.UnlockState(ctx)
		if err != nil {
			return failure(err)
		}
		return dto.UnlockStateResult{Success: true, Unlocked: unlocked}

	case TypeSetUnlockState:
		var req dto.SetUnlockPayload
		if err := unmarshalPayload(env.Payload, &req); err != nil {
			return failure(err)
		}
		if err := h.services.Device.SetUnlockState(ctx, req.Unlocked); err != nil {
			return failure(err)
		}
		return dto.UnlockStateResult{Success: true, Unlocked: req.Unlocked}

	default:
		h.log.Warn("Unknown bridge operation", slog.String("type", env.Type))
		return nil
	}
}

// dispatchImport accepts either a serialized snapshot string, a parsed state
// object, or (for older bundles) the state as the payload itself.
func (h *Handler) dispatchImport(ctx context.Context, payload json.RawMessage) any {
	var req dto.ImportPayload
	if err := unmarshalPayload(payload, &req); err != nil {
		return dto.ImportResult{Success: false, Error: err.Error()}
	}

	var state dto.ImportState
	switch {
	case req.Content != "":
		if err := json.Unmarshal([]byte(req.Content), &state); err != nil {
			return dto.ImportResult{Success: false, Error: errors.Join(apperrors.ErrProtocol, err).Error()}
		}
	case req.State != nil:
		state = *req.State
	case len(payload) > 0:
		if err := json.Unmarshal(payload, &state); err != nil {
			return dto.ImportResult{Success: false, Error: errors.Join(apperrors.ErrProtocol, err).Error()}
		}
	}

	counts, err := h.services.Maintenance.ImportReplace(ctx, state)
	if err != nil {
		return dto.ImportResult{Success: false, Error: err.Error()}
	}
	return dto.ImportResult{Success: true, Counts: counts}
}
