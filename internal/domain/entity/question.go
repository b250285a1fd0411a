package entity

import (
	"time"
)

// Question is a council proposal. While IsInterestCheck is true it is in the
// voting phase; once Dropped flips true the question is terminally rejected
// and accepts no further votes or solutions.
type Question struct {
	ID               string     `bson:"_id,omitempty" json:"id"`
	AuthorID         string     `bson:"author_id" json:"author_id"`
	Title            string     `bson:"title" json:"title"`
	Content          string     `bson:"content" json:"content"`
	IsInterestCheck  bool       `bson:"is_interest_check" json:"is_interest_check"`
	Upvotes          []string   `bson:"upvotes" json:"upvotes"`
	Downvotes        []string   `bson:"downvotes" json:"downvotes"`
	Dropped          bool       `bson:"dropped" json:"dropped"`
	Solutions        []Solution `bson:"solutions" json:"solutions"`
	CreatedAt        time.Time  `bson:"created_at" json:"created_at"`
	AdminApproved    bool       `bson:"admin_approved,omitempty" json:"admin_approved,omitempty"`
	MajorityApproved bool       `bson:"majority_approved,omitempty" json:"majority_approved,omitempty"`
}

// Solution is a proposed answer under a question. At most one solution per
// question carries IsBestAnswer; once set it is never unset by voting.
type Solution struct {
	ID           string   `bson:"_id,omitempty" json:"id"`
	AuthorID     string   `bson:"author_id" json:"author_id"`
	Content      string   `bson:"content" json:"content"`
	Votes        []string `bson:"votes" json:"votes"`
	IsBestAnswer bool     `bson:"is_best_answer,omitempty" json:"is_best_answer,omitempty"`
}

// HasVoted reports whether the user is present in either vote set.
func (q *Question) HasVoted(userID string) bool {
	for _, id := range q.Upvotes {
		if id == userID {
			return true
		}
	}
	for _, id := range q.Downvotes {
		if id == userID {
			return true
		}
	}
	return false
}

// HasSolutionVote reports whether the user holds a vote on any solution of
// this question. One solution vote per question per user.
func (q *Question) HasSolutionVote(userID string) bool {
	for _, s := range q.Solutions {
		for _, id := range s.Votes {
			if id == userID {
				return true
			}
		}
	}
	return false
}

// BestAnswerID returns the ID of the marked best answer, or "" if none.
func (q *Question) BestAnswerID() string {
	for _, s := range q.Solutions {
		if s.IsBestAnswer {
			return s.ID
		}
	}
	return ""
}

// Clone returns a deep copy of the question, including nested solutions.
func (q Question) Clone() Question {
	c := q
	if q.Upvotes != nil {
		c.Upvotes = append([]string(nil), q.Upvotes...)
	}
	if q.Downvotes != nil {
		c.Downvotes = append([]string(nil), q.Downvotes...)
	}
	if q.Solutions != nil {
		c.Solutions = make([]Solution, len(q.Solutions))
		for i, s := range q.Solutions {
			c.Solutions[i] = s.Clone()
		}
	}
	return c
}

// Clone returns a deep copy of the solution.
func (s Solution) Clone() Solution {
	c := s
	if s.Votes != nil {
		c.Votes = append([]string(nil), s.Votes...)
	}
	return c
}
