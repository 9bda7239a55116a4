package services

import "context"

// DeviceSvcFacade groups the device-capability passthroughs. None of them
// touch the record store; failures surface as apperrors.ErrCapability with a
// human-readable reason and are never fatal to the process.
type DeviceSvcFacade interface {
	// SaveFile writes content to the device document location and returns a
	// user-facing message.
	SaveFile(ctx context.Context, fileName, mimeType, content string) (string, error)
	// PickFile returns the content of a user-selected file; ok is false when
	// the pick was cancelled or nothing matched.
	PickFile(ctx context.Context) (content string, ok bool, err error)
	// ShareText writes the text to a shareable file and hands it to the
	// platform share sheet.
	ShareText(ctx context.Context, title, text string) (string, error)
	// OpenExternal opens an allow-listed external link (http, https, mailto,
	// tel). Anything else is rejected.
	OpenExternal(ctx context.Context, rawURL string) error
	// CloudBackup / CloudRestore move an opaque snapshot blob keyed by user
	// identity.
	CloudBackup(ctx context.Context, userID, content string) error
	CloudRestore(ctx context.Context, userID string) (string, error)
	// UnlockState reports and updates the security unlock flag.
	UnlockState(ctx context.Context) (bool, error)
	SetUnlockState(ctx context.Context, unlocked bool) error
}
