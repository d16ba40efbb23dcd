// Package models defines the client-side data models of the spy cat roster:
// the Cat record as served by the backend, the create/update payloads the
// client submits, and the API call record kept in the local journal.
package models
