package engagement

import (
	"errors"
	"testing"
)

type likeState struct {
	liked bool
	count int
}

func likeMutation(commit func() error) Mutation[likeState] {
	return Mutation[likeState]{
		ApplyLocal: func(s likeState) likeState {
			s.liked = true
			s.count++
			return s
		},
		CommitRemote: commit,
		RollbackLocal: func(s likeState) likeState {
			s.liked = false
			s.count--
			return s
		},
	}
}

func TestMutation_CommitKeepsLocalChange(t *testing.T) {
	m := likeMutation(func() error { return nil })

	got, err := m.Run(likeState{liked: false, count: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.liked || got.count != 5 {
		t.Errorf("state after commit = %+v, want liked with count 5", got)
	}
}

func TestMutation_RemoteFailureRollsBack(t *testing.T) {
	remoteErr := errors.New("network down")
	m := likeMutation(func() error { return remoteErr })

	start := likeState{liked: false, count: 4}
	got, err := m.Run(start)
	if !errors.Is(err, remoteErr) {
		t.Fatalf("error = %v, want the remote error", err)
	}
	if got != start {
		t.Errorf("state after rollback = %+v, want %+v", got, start)
	}
}
