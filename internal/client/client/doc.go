// Package client contains the backend access layer of the spycats CLI.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering the
//     five roster operations: ListCats, GetCat, CreateCat, UpdateCat, DeleteCat.
//  2. A concrete REST implementation (see HTTPClient) that talks JSON to the
//     /api/v1/cats endpoints, tags each request with an X-Request-ID and
//     reports completed calls to an optional Recorder and Monitor.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) for the call
//     journal, wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Every failure produced by HTTPClient is an *APIError carrying the HTTP
// status (0 when no response arrived) and a human-readable message. Callers
// extract display text with MessageOf and never see raw transport errors.
//
// Concurrency & Contexts
//
// HTTPClient and Monitor are safe for concurrent use. All operations accept a
// context.Context and honor cancellation and deadlines.
package client
