// Package models defines the JSON request and response bodies of the
// terminal API.
package models
