package bridge

// Operation kinds recognized on the bridge channel. Unknown kinds are not
// dispatched but still receive a correlated response.
const (
	TypeGetTransactions    = "GET_TRANSACTIONS"
	TypeSaveTransaction    = "SAVE_TRANSACTION"
	TypeDeleteTransaction  = "DELETE_TRANSACTION"
	TypeGetPartners        = "GET_PARTNERS"
	TypeSavePartner        = "SAVE_PARTNER"
	TypeDeletePartner      = "DELETE_PARTNER"
	TypeClearAllData       = "CLEAR_ALL_DATA"
	TypeImportData         = "IMPORT_DATA"
	TypeSetMockData        = "SET_MOCK_DATA"
	TypeScheduleReminder   = "SCHEDULE_DEBT_REMINDER"
	TypeCancelReminder     = "CANCEL_DEBT_REMINDER"
	TypeSaveFile           = "SAVE_FILE"
	TypePickFile           = "PICK_FILE"
	TypeShareText          = "SHARE_TEXT"
	TypeOpenExternal       = "OPEN_EXTERNAL"
	TypeExitApp            = "EXIT_APP"
	TypeCloudBackup        = "CLOUD_BACKUP"
	TypeCloudRestore       = "CLOUD_RESTORE"
	TypeGetUnlockState     = "GET_UNLOCK_STATE"
	TypeSetUnlockState     = "SET_UNLOCK_STATE"
)
