// Package credstore provides persistent credential storage for the biztrack
// SDK: the session token and the cached user profile, stored under two fixed
// keys that survive process restarts.
//
// Four backends are provided. Memory is the default and the test store. File
// encrypts each entry with a passphrase-derived key before writing it to
// disk. Redis shares credentials between processes through a Redis server.
// Keyring stores entries in the operating system keyring (macOS Keychain,
// Windows Credential Manager, Linux Secret Service).
//
// All backends implement [Store]. Reads of absent keys return [ErrNotFound];
// deletes of absent keys succeed. The SDK treats every storage failure as
// non-fatal: in-memory session state stays authoritative and persistence is
// best-effort mirroring for restart continuity.
package credstore
