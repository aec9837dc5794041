// Package doctor runs the diagnostic checks behind `webgen doctor`:
// generator executables and versions, template set completeness, project
// configuration validity, settings directory, and symlink support. Each
// check writes a report to an io.Writer and returns its problem count.
package doctor
