// Package session provides the dashboard's user fixture: a static Directory of
// users and a Session holding the current user.
//
//	sess := session.New(session.DefaultDirectory())
//	me, _ := sess.Me(ctx)
//	_, err := sess.Login(ctx, email, password) // ValidationError if either is empty
//
// No authentication is performed; any non-empty credentials are accepted.
package session
