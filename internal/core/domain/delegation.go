package domain

// Delegation authorizes a delegate to spend against an owner's account up
// to a fixed allowance. Keyed by (owner, delegate).
type Delegation struct {
	Owner    string `json:"owner"`
	Delegate string `json:"delegate"`
	Limit    int64  `json:"limit"`
	Spent    int64  `json:"spent"`
}

// Remaining returns the unspent portion of the allowance, never negative.
func (d *Delegation) Remaining() int64 {
	if d.Spent >= d.Limit {
		return 0
	}
	return d.Limit - d.Spent
}
