package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"
	ErrMsgMissingCallerID       = "Missing " + HeaderUserID + " header"
	ErrMsgInvalidTaskID         = "Invalid task id"

	ErrMsgGenericServerError        = "Something went wrong"
	ErrMsgUnknownError              = "Unknown error"
	ErrMsgInvalidRequestError       = "Invalid request. Please check your inputs."
	ErrMsgForbiddenError            = "You are not allowed to modify another user's progress"
	ErrMsgUserNotFoundError         = "User not found"
	ErrMsgTaskNotFoundError         = "Task not found"
	ErrMsgTaskAlreadyCompletedError = "Task is already completed"

	ErrMsgLoadCatalogFailed = "Failed to load achievement catalog"
)

// Success messages
const (
	MsgCatalogReloaded = "Achievement catalog reloaded"
)

// Log messages
const (
	LogMsgEncodeResponseFailed = "Failed to encode JSON response"
	LogMsgWriteResponseFailed  = "Failed to write response buffer"
	LogMsgReadinessFailed      = "Readiness check failed"
	LogMsgXPAwarded            = "XP awarded"
	LogMsgTaskCompleted        = "Task completed"
	LogMsgFreezesGranted       = "Streak freezes granted"
	LogMsgCatalogReloaded      = "Achievement catalog reloaded"
)

// Request and response conventions
const (
	// HeaderUserID carries the authenticated caller's user id
	HeaderUserID = "X-User-ID"

	ParamUserID           = "user_id"
	ParamLimit            = "limit"
	ParamIncludeCompleted = "include_completed"
	ParamTaskID           = "id"

	maxClientErrorLength = 200
)
