// Package generator invokes the external scaffolding executables that
// produce the frontend and backend applications. A generator's exit status
// is reported, not enforced: callers decide what a failed scaffold means.
package generator
