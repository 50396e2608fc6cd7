package common

// CertificateStorageKey is the fixed key under which the client-local store
// keeps the JSON-serialized sequence of certificate records.
const CertificateStorageKey = "blockchain_certificates"
