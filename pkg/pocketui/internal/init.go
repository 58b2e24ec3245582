// Package internal contains the core infrastructure for the pocketui navigation shell.
// This includes SDL initialization, pointer and button input processing, theming,
// and rendering utilities. Types and functions in this package are not part of the
// public API.
package internal

import _ "github.com/BrandonKowalski/certifiable" // Add CA certificates to the default trust store
