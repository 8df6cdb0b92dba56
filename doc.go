// The tasks package contains an in-memory task list and the interactive session that drives it from
// line-oriented input, such as a terminal. At the time of writing the only consumer is the program in the
// cmd/tasks subdirectory.
//
// A session shows a menu, reads the user's choice, and adds, lists, or removes tasks until the user picks the
// exit option or the input ends. Nothing is saved: the list lives as long as the session. The optional
// transcript (see WithTranscript) records what each command did, for debugging, and is never read back.
package tasks // import "github.com/nicolagi/tasks"
