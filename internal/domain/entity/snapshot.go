package entity

// Snapshot is the full in-memory working copy of the shared collections held
// by one session. It is a read-mutate-write copy, not an authoritative owner:
// authority stays with the entity store and the sync loop reconciles the two.
type Snapshot struct {
	Users     []User
	Tasks     []Task
	Questions []Question
}

// Clone returns a deep copy of the snapshot. Ledger transforms operate on a
// clone so the caller's copy is never mutated.
func (s Snapshot) Clone() Snapshot {
	c := Snapshot{}
	if s.Users != nil {
		c.Users = make([]User, len(s.Users))
		for i, u := range s.Users {
			c.Users[i] = u.Clone()
		}
	}
	if s.Tasks != nil {
		c.Tasks = make([]Task, len(s.Tasks))
		for i, t := range s.Tasks {
			c.Tasks[i] = t.Clone()
		}
	}
	if s.Questions != nil {
		c.Questions = make([]Question, len(s.Questions))
		for i, q := range s.Questions {
			c.Questions[i] = q.Clone()
		}
	}
	return c
}

// UserByID returns a pointer into the snapshot's user slice, or nil.
func (s *Snapshot) UserByID(id string) *User {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return &s.Users[i]
		}
	}
	return nil
}

// TaskByID returns a pointer into the snapshot's task slice, or nil.
func (s *Snapshot) TaskByID(id string) *Task {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return &s.Tasks[i]
		}
	}
	return nil
}

// QuestionByID returns a pointer into the snapshot's question slice, or nil.
func (s *Snapshot) QuestionByID(id string) *Question {
	for i := range s.Questions {
		if s.Questions[i].ID == id {
			return &s.Questions[i]
		}
	}
	return nil
}
