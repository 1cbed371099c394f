package core

// error_messages.go maps run-level errors to user-friendly messages with codes.
//
// Row-level problems never reach this table; they are counted in
// Result.Rejected. Only errors that end a run are mapped here:
//
//	FILE001 - Input file not found
//	FILE002 - Permission denied
//	FILE003 - Unsupported input encoding
//	FILE004 - Output could not be verified
//	FILE005 - Output could not be written
//	FILE006 - Input could not be read
//	CFG001  - Unknown source layout
//	CFG002  - Invalid configuration
//	RUN001  - Run cancelled
//	RUN002  - Run timed out
//	ERR000  - Unknown error (fallback)
//
// Errors are matched by the stage prefix their wrapper adds ("open input:",
// "verify output:", ...), so paths inside the message never decide the code.
// Within a stage, wrapped fs errors pick a more specific message. Errors with
// no known stage fall back to errors.Is on the sentinel targets.

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
	Detail  bool   // Append the technical error, which names what to fix
}

type errorTarget struct {
	target error
	msg    UserMessage
}

// errorStage matches errors by the prefix added where they were wrapped.
type errorStage struct {
	prefixes []string
	msg      UserMessage
	notExist *UserMessage // used when the cause is fs.ErrNotExist
}

var (
	msgInputNotFound = UserMessage{
		Message: "Input file not found",
		Action:  "Check that CUTOFF_INPUT_PATH points at the exported cutoff CSV",
		Code:    "FILE001",
	}
	msgPermission = UserMessage{
		Message: "Permission denied",
		Action:  "Check read access to the input and write access to the output directory",
		Code:    "FILE002",
	}
)

var errorStages = []errorStage{
	{
		prefixes: []string{"open input:", "read input:"},
		msg: UserMessage{
			Message: "The input file could not be read",
			Action:  "Check that CUTOFF_INPUT_PATH is a readable CSV file",
			Code:    "FILE006",
		},
		notExist: &msgInputNotFound,
	},
	{
		prefixes: []string{"unsupported input encoding"},
		msg: UserMessage{
			Message: "The input encoding is not supported",
			Action:  "Set CUTOFF_INPUT_ENCODING to utf-8, windows-1252 or iso-8859-1",
			Code:    "FILE003",
		},
	},
	{
		prefixes: []string{"verify output:"},
		msg: UserMessage{
			Message: "The cleaned CSV could not be read back",
			Action:  "Check free disk space and rerun the cleaner",
			Code:    "FILE004",
		},
	},
	{
		prefixes: []string{"create output", "write output", "close output"},
		msg: UserMessage{
			Message: "The cleaned CSV could not be written",
			Action:  "Check CUTOFF_OUTPUT_PATH and that its directory is writable",
			Code:    "FILE005",
		},
	},
	{
		prefixes: []string{"unknown layout"},
		msg: UserMessage{
			Message: "The source layout is not known",
			Action:  "Set CUTOFF_LAYOUT to a registered layout",
			Code:    "CFG001",
			Detail:  true,
		},
	},
	{
		prefixes: []string{"config load:", "config validation:"},
		msg: UserMessage{
			Message: "The configuration is invalid",
			Action:  "Fix the environment variables listed below",
			Code:    "CFG002",
			Detail:  true,
		},
	},
}

var errorTargets = []errorTarget{
	{
		target: context.Canceled,
		msg: UserMessage{
			Message: "Run was cancelled",
			Action:  "Run the cleaner again when ready",
			Code:    "RUN001",
		},
	},
	{
		target: context.DeadlineExceeded,
		msg: UserMessage{
			Message: "Run timed out",
			Action:  "Check the input file size and try again",
			Code:    "RUN002",
		},
	},
	{target: fs.ErrPermission, msg: msgPermission},
	{target: fs.ErrNotExist, msg: msgInputNotFound},
}

var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Check the log output for details",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// Returns an empty UserMessage for nil errors.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return matchTarget(err)
	}

	errStr := strings.ToLower(err.Error())
	for _, st := range errorStages {
		for _, prefix := range st.prefixes {
			if !strings.HasPrefix(errStr, prefix) {
				continue
			}
			switch {
			case errors.Is(err, fs.ErrPermission):
				return msgPermission
			case st.notExist != nil && errors.Is(err, fs.ErrNotExist):
				return *st.notExist
			}
			return st.msg
		}
	}

	return matchTarget(err)
}

func matchTarget(err error) UserMessage {
	for _, t := range errorTargets {
		if errors.Is(err, t.target) {
			return t.msg
		}
	}
	return defaultMessage
}

// FormatUserError returns a formatted user-friendly error string.
// Unrecognized errors keep their technical text so nothing is hidden.
func FormatUserError(err error) string {
	if err == nil {
		return ""
	}
	msg := MapError(err)
	switch {
	case !IsUserFacing(err):
		return fmt.Sprintf("%v (Code: %s). %s", err, msg.Code, msg.Action)
	case msg.Detail:
		return fmt.Sprintf("%s (Code: %s). %s:\n%v", msg.Message, msg.Code, msg.Action, err)
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err matches a known error and not the ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
