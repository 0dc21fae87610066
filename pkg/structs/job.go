package structs

const (
	JobWaiting   = "waiting"
	JobDelayed   = "delayed"
	JobActive    = "active"
	JobCompleted = "completed"
	JobFailed    = "failed"
)

type Job struct {
	ID           string `json:"id"`
	State        string `json:"state"`
	Progress     int    `json:"progress"`
	FailedReason string `json:"failedReason,omitempty"`
}

func (j *Job) Finished() bool {
	return j.State == JobCompleted || j.State == JobFailed
}
