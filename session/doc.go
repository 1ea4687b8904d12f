// Package session holds the client session state: the API handle, the
// authenticated account, issue permissions derived from it and whether the
// navigation menu is open.
//
// State changes only through Reduce. Reduce is pure; the one side effect of the
// action set, logging the account out, is returned as an Effect and carried out
// by Store.Dispatch.
package session
