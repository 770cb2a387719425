package queue

// Job is one pipeline run submitted through the queue.
type Job struct {
	ID         string  `json:"id"`
	URL        string  `json:"url"`
	MusicStyle string  `json:"music_style"`
	Duration   float64 `json:"duration"`
}

// Valid reports whether the job can be processed at all.
func (j *Job) Valid() bool {
	return j.URL != "" && j.Duration > 0
}
