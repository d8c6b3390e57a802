// Package selector abstracts interactive profile selection.
//
// A [Selector] receives candidate names and returns the user's choice.
// [Command] drives an external menu utility (dmenu, rofi, fuzzel, fzf, ...)
// through a stdin/stdout contract: candidates go in as a newline-separated
// list, the first line of output comes back as the choice. [Menu] is a
// built-in Bubble Tea picker for plain terminal sessions where no menu
// utility is configured. [Func] adapts a function for tests.
//
// Cancellation, a non-zero selector exit, and empty output all surface as
// [ErrAborted].
package selector
