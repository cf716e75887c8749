package eval

import "strconv"

// Exit is returned by the exit command. It is not an error condition; the
// caller of Eval uses it to terminate its read-eval loop with Status.
type Exit struct {
	Status int
}

func (e Exit) Error() string {
	return "exit " + strconv.Itoa(e.Status)
}
