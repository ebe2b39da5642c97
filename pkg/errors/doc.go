// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeIO,
//	    "failed to copy package folder",
//	    cause,
//	    map[string]any{
//	        "folder":  name,
//	        "variant": "Safe",
//	    },
//	)
//
// Callers branch on the code rather than on message text:
//
//	if errors.IsCode(err, errors.ErrCodeNotFound) {
//	    // record the folder as missing its manifest
//	}
package errors
