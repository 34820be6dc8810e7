package roadmap

import "k8s.io/apimachinery/pkg/util/sets"

// Tracker records which milestones are done. A milestone can only be toggled once all
// of its dependencies are completed.
type Tracker struct {
	milestones map[string]Milestone
	completed  sets.Set[string]
}

func NewTracker(ms []Milestone) *Tracker {
	t := &Tracker{
		milestones: make(map[string]Milestone, len(ms)),
		completed:  sets.New[string](),
	}
	for _, m := range ms {
		t.milestones[m.ID] = m
	}
	return t
}

// CanStart reports whether every dependency of id is completed.
func (t *Tracker) CanStart(id string) bool {
	m, ok := t.milestones[id]
	if !ok {
		return false
	}
	return t.completed.HasAll(m.Dependencies...)
}

// Toggle flips the completion state of id. It returns false when id is unknown or
// cannot start yet.
func (t *Tracker) Toggle(id string) bool {
	if !t.CanStart(id) {
		return false
	}
	if t.completed.Has(id) {
		t.completed.Delete(id)
	} else {
		t.completed.Insert(id)
	}
	return true
}

// Complete marks ids done in the given order, skipping any that cannot start.
// It returns the ids that were rejected.
func (t *Tracker) Complete(ids ...string) []string {
	var rejected []string
	for _, id := range ids {
		if t.completed.Has(id) {
			continue
		}
		if !t.Toggle(id) {
			rejected = append(rejected, id)
		}
	}
	return rejected
}

func (t *Tracker) IsCompleted(id string) bool {
	return t.completed.Has(id)
}

// Progress returns completed and total milestone counts.
func (t *Tracker) Progress() (int, int) {
	return t.completed.Len(), len(t.milestones)
}
