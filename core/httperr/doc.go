// Package httperr provides structured, status-coded HTTP errors for
// middleware. Errors carry an expose flag deciding whether the message may
// be shown to clients; the framework's error path honors both the status
// and the flag, so middleware can raise precise HTTP failures without a
// separate error-construction library.
//
//	return httperr.ErrNotFound
//
//	return httperr.Newf(http.StatusForbidden, "account %s is suspended", id)
package httperr
