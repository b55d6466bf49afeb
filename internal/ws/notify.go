package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const EventJobPosted = "job_posted"

type JobPostedEvent struct {
	Type           string    `json:"type"`
	JobID          uuid.UUID `json:"jobId"`
	Title          string    `json:"title"`
	JobType        string    `json:"jobType"`
	Location       string    `json:"location,omitempty"`
	RequiredSkills []string  `json:"requiredSkills"`
	Timestamp      string    `json:"timestamp"`
}

// Notifier publishes domain events to every connected client.
type Notifier struct {
	hub *Hub
	now func() time.Time
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub, now: time.Now}
}

func (n *Notifier) JobPosted(id uuid.UUID, title, jobType, location string, skills []string) {
	if n == nil || n.hub == nil {
		return
	}
	if skills == nil {
		skills = []string{}
	}

	b, err := json.Marshal(JobPostedEvent{
		Type:           EventJobPosted,
		JobID:          id,
		Title:          title,
		JobType:        jobType,
		Location:       location,
		RequiredSkills: skills,
		Timestamp:      n.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
