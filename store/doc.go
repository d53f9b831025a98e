// Package store persists reconstructed table rows into SQLite.
//
// It is the persistence collaborator of the reconstruction engine: rows
// arrive as header-keyed maps, column names are derived from the header
// texts, and tables are created on demand. The engine itself never
// touches storage.
//
// Typical use:
//
//	s, err := store.Open("invoices.db")
//	if err != nil { ... }
//	defer s.Close()
//	ids, err := s.SaveRows("items", headers, rows, store.InsertOptions{})
package store
