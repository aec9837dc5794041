// Package scaffold stages a fullstack project. It creates the project
// skeleton, runs the external frontend and backend generators, relocates
// their output into place, overlays the template set with the project's
// branding, and writes the project README.
package scaffold
