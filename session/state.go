package session

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnknownAction reports an action type Reduce does not handle.
var ErrUnknownAction = errors.New("unknown action")

// Auth is the authenticated account collaborator.
type Auth interface {
	Permissions() []Permission
	CurrentUser() User
	LogOut(ctx context.Context) error
}

// API is the tracker client the session talks to.
type API interface {
	BaseURL() string
}

// State is the session state. The zero value is the initial state.
type State struct {
	API              API
	Auth             Auth
	IssuePermissions *IssuePermissions
	ShowMenu         bool
}

// ActionType enumerates the session transitions.
type ActionType string

const (
	InitializeAuth ActionType = "INITIALIZE_AUTH"
	SetPermissions ActionType = "SET_PERMISSIONS"
	InitializeAPI  ActionType = "INITIALIZE_API"
	LogOut         ActionType = "LOG_OUT"
	OpenMenu       ActionType = "OPEN_MENU"
	CloseMenu      ActionType = "CLOSE_MENU"
)

// Action is a transition with its payload.
type Action struct {
	Type ActionType
	Auth Auth
	API  API
}

// Effect describes work Reduce asks the caller to perform.
type Effect struct {
	// LogOut is the account to log out, if any.
	LogOut Auth
}

// Reduce returns the state following s after a.
func Reduce(s State, a Action) (State, Effect, error) {
	switch a.Type {
	case InitializeAuth:
		s.Auth = a.Auth
	case SetPermissions:
		if a.Auth == nil {
			s.IssuePermissions = nil
			break
		}
		s.IssuePermissions = NewIssuePermissions(a.Auth.Permissions(), a.Auth.CurrentUser())
	case InitializeAPI:
		s.API = a.API
	case LogOut:
		eff := Effect{LogOut: s.Auth}
		s.API = nil
		s.Auth = nil
		return s, eff, nil
	case OpenMenu:
		s.ShowMenu = true
	case CloseMenu:
		s.ShowMenu = false
	default:
		return s, Effect{}, fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
	}
	return s, Effect{}, nil
}
