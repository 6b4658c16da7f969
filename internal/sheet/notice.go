package sheet

// Severity classifies a user-facing notice.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// Notice is a recoverable condition reported to the user.
type Notice struct {
	Severity Severity
	Message  string
}

// Messages for the recoverable I/O failures the sheet reports.
const (
	MsgLoadFailed  = "Failed to load from local storage"
	MsgFetchFailed = "Failed to fetch rows"
	MsgSaveFailed  = "Failed to save spreadsheet data"
)
