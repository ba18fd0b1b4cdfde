// Package server exposes the daygrid pipeline over HTTP.
//
// # Endpoints
//
//	GET  /health                 liveness check, returns {"status":"ok"}
//	POST /api/layout             day + options → layout JSON
//	POST /api/render?format=svg  day + options → artifact bytes (svg, png, pdf, json)
//
// Both POST endpoints take the same body. The day uses the day-file schema
// of package io; options are [pipeline.Options] fields and are applied on
// top of the server's defaults:
//
//	{
//	  "day": {"events": [{"title": "Standup", "start": "09:00", "end": "09:15"}]},
//	  "options": {"width": 600, "direction": "rtl", "grid": {"start_hour": 8, "end_hour": 18}}
//	}
//
// Note that a "grid" object replaces only the keys it names.
//
// # Errors
//
// Failures are returned as JSON with the structured error code:
//
//	{"error": "invalid format: \"gif\" ...", "code": "INVALID_FORMAT", "request_id": "..."}
//
// The status is derived from the code by errors.HTTPStatus.
//
// # Request IDs
//
// Every response carries an X-Request-ID header. A client-supplied ID is
// echoed back; otherwise a random UUID is generated.
package server
