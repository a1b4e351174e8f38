// Package catalog loads the food database from its caret-delimited text
// format and keeps the loaded items in a concurrency-safe in-memory store.
package catalog
