package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Account Operations
const (
	ErrMsgFailedToGetAccount     = "failed to get account"
	ErrMsgFailedToInsertAccount  = "failed to insert account"
	ErrMsgFailedToUpdateAccount  = "failed to update account"
	ErrMsgFailedToGetLinks       = "failed to get platform links"
	ErrMsgFailedToInsertLink     = "failed to insert platform link"
	ErrMsgFailedToGetPlots       = "failed to get plots"
	ErrMsgFailedToUpsertPlot     = "failed to upsert plot"
	ErrMsgFailedToGetBalances    = "failed to get balances"
	ErrMsgFailedToUpsertBalance  = "failed to upsert balance"
	ErrMsgFailedToInsertEntry    = "failed to insert ledger entry"
	ErrMsgFailedToGetEntries     = "failed to get ledger entries"
	ErrMsgFailedToUpsertCropDef  = "failed to upsert crop definition"
	ErrMsgFailedToGetCropDefs    = "failed to get crop definitions"
)
