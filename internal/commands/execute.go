package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Toggle   func(ToggleArgs) (Result, error)
	Reset    func() (Result, error)
	Generate func() (Result, error)
	Message  func(MessageArgs) (Result, error)
	Show     func(ShowArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeToggle:
		if handlers.Toggle == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "toggle handler not configured"}
		}
		return handlers.Toggle(*cmd.Toggle)
	case TypeReset:
		if handlers.Reset == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "reset handler not configured"}
		}
		return handlers.Reset()
	case TypeGenerate:
		if handlers.Generate == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "generate handler not configured"}
		}
		return handlers.Generate()
	case TypeMessage:
		if handlers.Message == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "message handler not configured"}
		}
		return handlers.Message(*cmd.Message)
	case TypeShow:
		if handlers.Show == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "show handler not configured"}
		}
		return handlers.Show(*cmd.Show)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
