//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || aix || zos

package app

// canSuspend matches the platforms where Bubble Tea acts on tea.Suspend and
// answers with tea.ResumeMsg.
const canSuspend = true
