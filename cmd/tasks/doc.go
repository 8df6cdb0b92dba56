// The tasks program is an interactive task list for the terminal.
//
// It shows a menu on standard output and reads one choice per line from standard input: 1 adds a task (the
// next line is its text), 2 lists the tasks with their numbers, 3 removes a task (the next line is its number),
// and 4 exits. Anything else redisplays the menu. Task numbers start at 1 and shift after a removal, so list
// again before removing more. Removing a number that isn't listed does nothing; typing something that isn't a
// number at all ends the program with an error.
//
// The list is gone when the program exits. Logs go to standard error; pass -debug to see every command, and
// -transcript to append a JSON line per command to a file.
package main // import "github.com/nicolagi/tasks/cmd/tasks"
