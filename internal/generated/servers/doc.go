// Package servers holds the HTTP contract of the eligibility API: request and response types,
// the ServerInterface handlers implement, and route registration for echo.
//
// The layout follows oapi-codegen's echo server output for openapi.yaml in this directory;
// keep the two in sync when the contract changes.
package servers
