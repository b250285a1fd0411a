package ledger

import (
	"github.com/samikassu/crewboard/internal/domain/entity"
)

// VoteDirection is an up or down vote on a question.
type VoteDirection string

const (
	VoteUp   VoteDirection = "up"
	VoteDown VoteDirection = "down"
)

const (
	dropDownvoteFloor = 2
	dropPenaltyPoints = 5
	bestAnswerBonus   = 10
)

// PostQuestion appends a new council question. Admin-authored questions skip
// the interest-check voting phase and go straight to the solution phase.
func (e *Engine) PostQuestion(snap entity.Snapshot, authorID, title, content string) (entity.Snapshot, Dirty, entity.Question, bool) {
	author := snap.UserByID(authorID)
	if author == nil {
		return snap, Dirty{}, entity.Question{}, false
	}
	question := entity.Question{
		ID:              e.ids.NewUUID(),
		AuthorID:        authorID,
		Title:           title,
		Content:         content,
		IsInterestCheck: author.Role != entity.UserRoleAdmin,
		Upvotes:         []string{},
		Downvotes:       []string{},
		Dropped:         false,
		Solutions:       []entity.Solution{},
		CreatedAt:       e.now(),
	}
	next := snap.Clone()
	next.Questions = append([]entity.Question{question}, next.Questions...)
	return next, Dirty{Questions: true}, question, true
}

// VoteResult reports what a question vote did.
type VoteResult struct {
	Applied        bool
	Dropped        bool
	PenaltyApplied bool
}

// VoteQuestion records one vote per user per question; changing or repeating
// a vote is a no-op, as is voting on a missing or already-dropped question.
// After the vote the drop rule is re-evaluated: a question drops when it has
// at least two downvotes and downvotes outnumber upvotes. The -5 author
// penalty (floored at zero) fires on the false-to-true edge of Dropped inside
// this single transform, so re-evaluating a dropped question can never charge
// the author twice.
func (e *Engine) VoteQuestion(snap entity.Snapshot, voterID, questionID string, direction VoteDirection) (entity.Snapshot, Dirty, VoteResult) {
	question := snap.QuestionByID(questionID)
	if question == nil || question.Dropped || question.HasVoted(voterID) {
		return snap, Dirty{}, VoteResult{}
	}

	next := snap.Clone()
	q := next.QuestionByID(questionID)
	if direction == VoteDown {
		q.Downvotes = append(q.Downvotes, voterID)
	} else {
		q.Upvotes = append(q.Upvotes, voterID)
	}

	dirty := Dirty{Questions: true}
	result := VoteResult{Applied: true}

	if len(q.Downvotes) >= dropDownvoteFloor && len(q.Downvotes) > len(q.Upvotes) {
		q.Dropped = true
		q.IsInterestCheck = false
		result.Dropped = true
		if author := next.UserByID(q.AuthorID); author != nil {
			author.Points -= dropPenaltyPoints
			if author.Points < 0 {
				author.Points = 0
			}
			author.Level = entity.LevelForPoints(author.Points)
			dirty.Users = true
			result.PenaltyApplied = true
		}
	}
	return next, dirty, result
}

// AddSolution appends a solution to a question that is accepting them: the
// question must exist, not be dropped, and be past its interest check.
func (e *Engine) AddSolution(snap entity.Snapshot, authorID, questionID, content string) (entity.Snapshot, Dirty, entity.Solution, bool) {
	question := snap.QuestionByID(questionID)
	if question == nil || question.Dropped || question.IsInterestCheck {
		return snap, Dirty{}, entity.Solution{}, false
	}
	solution := entity.Solution{
		ID:       e.ids.NewUUID(),
		AuthorID: authorID,
		Content:  content,
		Votes:    []string{},
	}
	next := snap.Clone()
	q := next.QuestionByID(questionID)
	q.Solutions = append(q.Solutions, solution)
	return next, Dirty{Questions: true}, solution, true
}

// VoteSolution records one solution vote per question per user: if the voter
// already holds a vote on any solution under the question, nothing changes.
func (e *Engine) VoteSolution(snap entity.Snapshot, voterID, questionID, solutionID string) (entity.Snapshot, Dirty, bool) {
	question := snap.QuestionByID(questionID)
	if question == nil || question.Dropped || question.HasSolutionVote(voterID) {
		return snap, Dirty{}, false
	}
	found := false
	next := snap.Clone()
	q := next.QuestionByID(questionID)
	for i := range q.Solutions {
		if q.Solutions[i].ID == solutionID {
			q.Solutions[i].Votes = append(q.Solutions[i].Votes, voterID)
			found = true
			break
		}
	}
	if !found {
		return snap, Dirty{}, false
	}
	return next, Dirty{Questions: true}, true
}

// MarkBestAnswer flags the winning solution and grants its author a one-time
// bonus. A question with a best answer already marked rejects the action, so
// the bonus can only ever be granted once.
func (e *Engine) MarkBestAnswer(snap entity.Snapshot, questionID, solutionID string) (entity.Snapshot, Dirty, bool) {
	question := snap.QuestionByID(questionID)
	if question == nil || question.BestAnswerID() != "" {
		return snap, Dirty{}, false
	}

	next := snap.Clone()
	q := next.QuestionByID(questionID)
	dirty := Dirty{Questions: true}
	for i := range q.Solutions {
		if q.Solutions[i].ID != solutionID {
			continue
		}
		q.Solutions[i].IsBestAnswer = true
		if author := next.UserByID(q.Solutions[i].AuthorID); author != nil {
			author.Points += bestAnswerBonus
			author.Level = entity.LevelForPoints(author.Points)
			dirty.Users = true
		}
		return next, dirty, true
	}
	return snap, Dirty{}, false
}
