package engine

// Commands buffers input for a session until the end of a frame, so that
// systems never mutate the board while another system is reading it.
type Commands struct {
	pending []Command
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Push queues a command.
func (c *Commands) Push(cmd Command) {
	c.pending = append(c.pending, cmd)
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len is the number of queued commands.
func (c *Commands) Len() int {
	return len(c.pending)
}

// Flush applies queued commands to session in push order, then runs the
// deferred functions, and resets the buffer.
func (c *Commands) Flush(session *Session) {
	for _, cmd := range c.pending {
		session.Apply(cmd)
	}

	for _, fn := range c.defers {
		fn()
	}

	c.pending = c.pending[:0]
	c.defers = c.defers[:0]
}
