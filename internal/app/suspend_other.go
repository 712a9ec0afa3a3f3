//go:build !darwin && !dragonfly && !freebsd && !linux && !netbsd && !openbsd && !solaris && !aix && !zos

package app

// Bubble Tea ignores tea.Suspend here, so no tea.ResumeMsg would ever bring
// the console back.
const canSuspend = false
