// Package security holds the authentication and authorization core: password
// hashing, signed token issuance and verification, and the role guard applied
// to every protected operation.
//
// Everything here is stateless apart from the signing key, which is injected at
// construction and never mutated, so all types are safe for concurrent use.
package security
