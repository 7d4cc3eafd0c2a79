// Package types defines the entities of the proompt dataset, the table and
// index names the maintenance tools operate on, and the standard errors they
// return.
package types
