// Package certificates is the client-local fallback store: one fixed key in
// a SQLite-backed key-value table holds the JSON-serialized sequence of
// certificate records. It is the database the certificate service falls back
// to when the remote API is unreachable.
package certificates
