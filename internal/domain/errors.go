package domain

import "errors"

// Domain errors.
var (
	ErrDialogNotFound    = errors.New("dialog not found")
	ErrDialogExists      = errors.New("dialog already registered")
	ErrNoActiveDialog    = errors.New("no active dialog for this conversation")
	ErrInvalidExpression = errors.New("invalid expression")
	ErrUnknownListStyle  = errors.New("unknown list style")
	ErrStateNotFound     = errors.New("conversation state not found")
)

var codes = map[error]string{
	ErrDialogNotFound:    "dialog_not_found",
	ErrDialogExists:      "dialog_exists",
	ErrNoActiveDialog:    "no_active_dialog",
	ErrInvalidExpression: "invalid_expression",
	ErrUnknownListStyle:  "unknown_list_style",
	ErrStateNotFound:     "state_not_found",
}

// Code returns the stable code of the first domain error found in err's chain,
// or "" when err does not wrap a domain error.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for sentinel, code := range codes {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return ""
}
