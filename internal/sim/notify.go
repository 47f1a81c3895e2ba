package sim

// Flag is a transient boolean with a tick deadline and a monotonic token.
// Only the deadline belonging to the latest Set may clear it, so a stale
// expiry can never un-set a newer state.
type Flag struct {
	token    uint64
	deadline uint64
	on       bool
}

// Set raises the flag until the given tick and returns the new token.
func (f *Flag) Set(deadline uint64) uint64 {
	f.token++
	f.deadline = deadline
	f.on = true
	return f.token
}

// Expire lowers the flag once its own deadline has passed.
func (f *Flag) Expire(now uint64) {
	if f.on && now >= f.deadline {
		f.on = false
	}
}

// ClearIf lowers the flag only when the caller holds the current token.
func (f *Flag) ClearIf(token uint64) {
	if f.on && token == f.token {
		f.on = false
	}
}

// On reports the flag state.
func (f *Flag) On() bool { return f.on }

// Notice is one banner message with its expiry tick.
type Notice struct {
	Text     string
	token    uint64
	deadline uint64
}

// Notifier keeps at most one visible banner. Posting replaces the current
// banner and bumps the token, so timers for an older banner cannot dismiss
// a newer one.
type Notifier struct {
	seq     uint64
	current *Notice
}

// Post shows a banner until the given tick and returns its token.
func (n *Notifier) Post(text string, deadline uint64) uint64 {
	n.seq++
	n.current = &Notice{Text: text, token: n.seq, deadline: deadline}
	return n.seq
}

// Expire dismisses the current banner once its deadline has passed.
func (n *Notifier) Expire(now uint64) {
	if n.current != nil && now >= n.current.deadline {
		n.current = nil
	}
}

// DismissIf hides the banner only if the token still matches.
func (n *Notifier) DismissIf(token uint64) {
	if n.current != nil && n.current.token == token {
		n.current = nil
	}
}

// Current returns the visible banner text, or "" when none is showing.
func (n *Notifier) Current() string {
	if n.current == nil {
		return ""
	}
	return n.current.Text
}
