// Package utils converts loosely typed values, such as columns scanned into
// `any` by database/sql, into Go scalars.
package utils
