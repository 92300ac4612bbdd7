// Package repository implements data access for the accounts service on
// top of database/sql. Sentinel errors let the service layer distinguish
// constraint violations from connectivity failures without inspecting
// driver-specific error types itself.
package repository

import "errors"

// ErrDuplicateEmail is returned by Create when the email unique key is
// violated, i.e. a concurrent registration already claimed the address.
var ErrDuplicateEmail = errors.New("duplicate email")
