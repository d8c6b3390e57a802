// Package launcher implements profile-isolated qutebrowser launches.
//
// A launch is a single linear pass: classify the argument list, resolve a
// profile name, materialize the profile's session directory, and exec
// qutebrowser.
//
// The classifier ([Config.Classify]) partitions the raw arguments into
// launcher-owned flags and pass-through arguments for qutebrowser, stripping
// the session-restore flags that would conflict with per-profile session
// directories. The resolver ([Resolver]) maps the selected mode to a
// concrete profile name, delegating interactive choice to a
// [selector.Selector]. The session director ([Session]) builds the
// per-profile directory tree under the XDG runtime dir with symlinks into
// the shared config and per-profile cache/data locations, and computes the
// qutebrowser argument list. [Launcher.Run] ties the stages together.
//
// Every error is terminal and surfaces before qutebrowser is launched; the
// filesystem work is idempotent, so concurrent launches of the same profile
// are tolerated without locking.
//
// [selector.Selector]: https://pkg.go.dev/github.com/Noname672/qutebrowser-profile/selector#Selector
package launcher
