// Package auth defines the credential-verification collaborator the
// session core delegates to at login. The core only consumes the
// Authenticator interface; StaticAuthenticator is a bcrypt-backed
// in-memory implementation for demos and tests.
package auth
