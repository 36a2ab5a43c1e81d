// Package notes persists the panel's single research note.
//
// The note is one opaque string under the fixed key "researchNotes". It is
// read once when a panel loads and overwritten wholesale on every save; there
// is no history, deletion path, or second note.
//
// Backends (STORAGE_DRIVER):
//   - file: <STORAGE_PATH>/storage/<namespace>/<key>.json, atomic rename on write
//   - sqlite: <STORAGE_PATH>/notes.db, upsert into a kv table
//   - redis: "<namespace>:<key>" string keys without expiry
//   - memory: in-process cache, lost on exit
package notes
