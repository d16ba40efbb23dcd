// Package devserver is an in-memory implementation of the spy cats REST
// backend for local development and end-to-end tests of the client.
//
// It serves /api/v1/cats with the same status codes, error bodies and
// validation rules as the production backend: FastAPI style {"detail": ...}
// errors, 201 on create, 204 on delete, 422 for invalid payloads and 404 for
// unknown ids. Salaries are encoded as decimal strings with two places.
package devserver
