// Package storage provides durable key/value storages: a JSON file, in the
// spirit of a browser local storage, and a SQLite database.
package storage
