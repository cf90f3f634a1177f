package farm

// maxSaveAttempts bounds the optimistic-save retry loop. A conflict means
// another process instance saved the aggregate between our load and save;
// after this many attempts the operation surfaces a transient failure.
const maxSaveAttempts = 3

// defaultLedgerLimit caps ledger history responses when no limit is given.
const defaultLedgerLimit = 20

// User-facing messages for farm operations
const (
	MsgPlantSuccess   = "Crop planted!"
	MsgHarvestSuccess = "Harvest successful!"
	MsgTryAgain       = "The farm is busy right now. Please try again."
)
