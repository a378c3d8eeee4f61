// Package inkwell implements a multi-user content service: users register and
// authenticate against a relational store, receive signed bearer tokens, and
// manage posts they own.
//
// The heart of the package is the authentication core:
//   - Auther verifies credentials through an IdentityProvider and issues JWTs.
//   - TokenService signs and validates tokens; a validated token is converted
//     back into an Identity without touching the store.
//   - Owns/RequireOwnership gate every mutating operation on posts and users.
//   - ctx helpers carry the authenticated Identity through the request chain,
//     scoped per request, never in process-wide state.
//
// Everything else (bun repositories, go-router controllers, payload validation)
// is conventional glue around that core.
package inkwell
