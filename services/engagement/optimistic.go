package engagement

// Mutation runs an optimistic update: the local change applies first,
// the remote call follows, and a failed remote call rolls the local
// change back before the error surfaces.
type Mutation[S any] struct {
	ApplyLocal    func(state S) S
	CommitRemote  func() error
	RollbackLocal func(state S) S
}

// Run applies the mutation to state. On remote failure the returned
// state equals the rolled-back value and the error is the remote one,
// untouched.
func (m Mutation[S]) Run(state S) (S, error) {
	next := m.ApplyLocal(state)
	if err := m.CommitRemote(); err != nil {
		return m.RollbackLocal(next), err
	}
	return next, nil
}
