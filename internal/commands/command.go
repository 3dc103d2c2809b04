// Package commands parses the dashboard's command palette input into
// typed commands.
package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeToggle   Type = "toggle"
	TypeReset    Type = "reset"
	TypeGenerate Type = "generate"
	TypeMessage  Type = "message"
	TypeShow     Type = "show"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type ToggleArgs struct {
	// Index is the 1-based schedule position as typed by the user.
	Index int
}

type MessageArgs struct {
	Text string
}

type ShowArgs struct {
	View string
}

type Command struct {
	Type    Type
	Raw     string
	Toggle  *ToggleArgs
	Message *MessageArgs
	Show    *ShowArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeToggle:
		return parseToggle(input, args)
	case TypeReset:
		return Command{Type: TypeReset, Raw: input}, nil
	case TypeGenerate:
		return Command{Type: TypeGenerate, Raw: input}, nil
	case TypeMessage:
		return parseMessage(input, args)
	case TypeShow:
		return parseShow(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseToggle(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "toggle requires a schedule position"}
	}
	idx, err := strconv.Atoi(args[0])
	if err != nil || idx < 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid schedule position: %s", args[0])}
	}
	return Command{Type: TypeToggle, Raw: raw, Toggle: &ToggleArgs{Index: idx}}, nil
}

func parseMessage(raw string, args []string) (Command, error) {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "message requires text"}
	}
	return Command{Type: TypeMessage, Raw: raw, Message: &MessageArgs{Text: text}}, nil
}

func parseShow(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "show requires a view name"}
	}
	view := strings.ToLower(args[0])
	switch view {
	case "schedule", "progress", "reports":
		return Command{Type: TypeShow, Raw: raw, Show: &ShowArgs{View: view}}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown view: %s", view)}
	}
}
