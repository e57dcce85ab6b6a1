// Package middleware groups the HTTP middleware of the terminal API.
//
//   - auth: rejects requests without the configured API key.
//   - rayid: tags every request with a unique RayID, stored in the Fiber
//     locals under "ray_id" and echoed in the X-Ray-ID response header.
//
// RayID must be registered first so that auth failures are traceable.
package middleware
