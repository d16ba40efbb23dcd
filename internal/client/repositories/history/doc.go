// Package history persists the client's API call journal.
//
// Every request made by the API client is reported as a models.CallRecord and
// stored in the local SQLite table api_calls (see internal/client/migrations).
// The journal is bounded: each insert prunes everything but the newest rows,
// inside the same transaction.
//
//	repo := history.NewSQLiteRepository(db, cfg.HistoryLimit)
//	httpClient, _ := client.NewHTTPClient(url, timeout, client.WithRecorder(repo))
//	recent, _ := repo.Recent(ctx, 20)
package history
