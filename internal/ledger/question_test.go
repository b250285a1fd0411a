package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/samikassu/crewboard/internal/domain/entity"
	"github.com/samikassu/crewboard/internal/ledger"
)

func openQuestion(id, authorID string) entity.Question {
	return entity.Question{
		ID:        id,
		AuthorID:  authorID,
		Upvotes:   []string{},
		Downvotes: []string{},
		Solutions: []entity.Solution{},
	}
}

func TestPostQuestionByMemberOpensInterestCheck(t *testing.T) {
	e := newTestEngine()
	snap := crewSnapshot(member("u1", "Poster", 0))

	next, dirty, q, ok := e.PostQuestion(snap, "u1", "Movie night?", "vote pls")

	assert.True(t, ok)
	assert.True(t, dirty.Questions)
	assert.True(t, q.IsInterestCheck)
	assert.Equal(t, q.ID, next.Questions[0].ID)
}

func TestPostQuestionByAdminSkipsInterestCheck(t *testing.T) {
	e := newTestEngine()
	snap := crewSnapshot(admin("a1", "Chief"))

	_, _, q, ok := e.PostQuestion(snap, "a1", "New rules", "")

	assert.True(t, ok)
	assert.False(t, q.IsInterestCheck)
}

func TestVoteQuestionOneVotePerUser(t *testing.T) {
	e := newTestEngine()
	snap := crewSnapshot(member("u1", "Voter", 0), member("u2", "Author", 0))
	snap.Questions = []entity.Question{openQuestion("q1", "u2")}

	snap, dirty, result := e.VoteQuestion(snap, "u1", "q1", ledger.VoteUp)
	assert.True(t, result.Applied)
	assert.True(t, dirty.Questions)

	// a second vote in either direction is a no-op
	_, dirty, result = e.VoteQuestion(snap, "u1", "q1", ledger.VoteDown)
	assert.False(t, result.Applied)
	assert.False(t, dirty.Any())
	assert.Equal(t, []string{"u1"}, snap.QuestionByID("q1").Upvotes)
	assert.Empty(t, snap.QuestionByID("q1").Downvotes)
}

func TestVoteQuestionDropRule(t *testing.T) {
	e := newTestEngine()
	snap := crewSnapshot(
		member("author", "Author", 3),
		member("u1", "A", 0),
		member("u2", "B", 0),
		member("u3", "C", 0),
	)
	q := openQuestion("q1", "author")
	q.IsInterestCheck = true
	snap.Questions = []entity.Question{q}

	snap, _, r := e.VoteQuestion(snap, "u1", "q1", ledger.VoteDown)
	assert.True(t, r.Applied)
	assert.False(t, r.Dropped, "one downvote is below the floor")

	snap, dirty, r := e.VoteQuestion(snap, "u2", "q1", ledger.VoteDown)
	assert.True(t, r.Dropped)
	assert.True(t, r.PenaltyApplied)
	assert.True(t, dirty.Users)

	dropped := snap.QuestionByID("q1")
	assert.True(t, dropped.Dropped)
	assert.False(t, dropped.IsInterestCheck)
	// penalty floors at zero
	assert.Equal(t, 0, snap.UserByID("author").Points)

	// voting on a dropped question is a no-op, so no second penalty
	_, dirty, r = e.VoteQuestion(snap, "u3", "q1", ledger.VoteDown)
	assert.False(t, r.Applied)
	assert.False(t, dirty.Any())
}

func TestVoteQuestionDownvotesMustOutnumberUpvotes(t *testing.T) {
	e := newTestEngine()
	snap := crewSnapshot(
		member("author", "Author", 100),
		member("u1", "A", 0), member("u2", "B", 0),
		member("u3", "C", 0), member("u4", "D", 0),
	)
	snap.Questions = []entity.Question{openQuestion("q1", "author")}

	snap, _, _ = e.VoteQuestion(snap, "u1", "q1", ledger.VoteUp)
	snap, _, _ = e.VoteQuestion(snap, "u2", "q1", ledger.VoteUp)
	snap, _, r := e.VoteQuestion(snap, "u3", "q1", ledger.VoteDown)
	assert.False(t, r.Dropped)
	snap, _, r = e.VoteQuestion(snap, "u4", "q1", ledger.VoteDown)
	assert.False(t, r.Dropped, "2-2 tie does not drop")
	assert.Equal(t, 100, snap.UserByID("author").Points)
}

func TestAddSolutionRequiresOpenNonInterestQuestion(t *testing.T) {
	e := newTestEngine()
	snap := crewSnapshot(member("u1", "Solver", 0))
	open := openQuestion("q1", "u1")
	interest := openQuestion("q2", "u1")
	interest.IsInterestCheck = true
	dropped := openQuestion("q3", "u1")
	dropped.Dropped = true
	snap.Questions = []entity.Question{open, interest, dropped}

	next, dirty, sol, ok := e.AddSolution(snap, "u1", "q1", "try this")
	assert.True(t, ok)
	assert.True(t, dirty.Questions)
	assert.Len(t, next.QuestionByID("q1").Solutions, 1)
	assert.Equal(t, "u1", sol.AuthorID)

	_, dirty, _, ok = e.AddSolution(snap, "u1", "q2", "too early")
	assert.False(t, ok)
	assert.False(t, dirty.Any())

	_, dirty, _, ok = e.AddSolution(snap, "u1", "q3", "too late")
	assert.False(t, ok)
	assert.False(t, dirty.Any())
}

func TestVoteSolutionOnePerQuestion(t *testing.T) {
	e := newTestEngine()
	snap := crewSnapshot(member("u1", "Voter", 0))
	q := openQuestion("q1", "u1")
	q.Solutions = []entity.Solution{
		{ID: "s1", AuthorID: "u1", Votes: []string{}},
		{ID: "s2", AuthorID: "u1", Votes: []string{}},
	}
	snap.Questions = []entity.Question{q}

	snap, _, applied := e.VoteSolution(snap, "u1", "q1", "s1")
	assert.True(t, applied)

	// the same voter cannot vote for a second solution under the question
	_, dirty, applied := e.VoteSolution(snap, "u1", "q1", "s2")
	assert.False(t, applied)
	assert.False(t, dirty.Any())
	assert.Equal(t, []string{"u1"}, snap.QuestionByID("q1").Solutions[0].Votes)
	assert.Empty(t, snap.QuestionByID("q1").Solutions[1].Votes)
}

func TestVoteSolutionUnknownSolutionIsNoOp(t *testing.T) {
	e := newTestEngine()
	snap := crewSnapshot(member("u1", "Voter", 0))
	q := openQuestion("q1", "u1")
	q.Solutions = []entity.Solution{{ID: "s1", Votes: []string{}}}
	snap.Questions = []entity.Question{q}

	_, dirty, applied := e.VoteSolution(snap, "u1", "q1", "ghost")
	assert.False(t, applied)
	assert.False(t, dirty.Any())
}

func TestMarkBestAnswerAwardsBonusOnce(t *testing.T) {
	e := newTestEngine()
	snap := crewSnapshot(member("winner", "Winner", 5))
	q := openQuestion("q1", "winner")
	q.Solutions = []entity.Solution{
		{ID: "s1", AuthorID: "winner", Votes: []string{}},
		{ID: "s2", AuthorID: "winner", Votes: []string{}},
	}
	snap.Questions = []entity.Question{q}

	snap, dirty, applied := e.MarkBestAnswer(snap, "q1", "s1")
	assert.True(t, applied)
	assert.True(t, dirty.Users)
	assert.Equal(t, 15, snap.UserByID("winner").Points)
	assert.True(t, snap.QuestionByID("q1").Solutions[0].IsBestAnswer)

	// a second designation on the same question is refused
	_, dirty, applied = e.MarkBestAnswer(snap, "q1", "s2")
	assert.False(t, applied)
	assert.False(t, dirty.Any())
	assert.Equal(t, 15, snap.UserByID("winner").Points)
}
