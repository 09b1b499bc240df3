package session

import "strings"

// JobInput holds the two ways of describing the job. Setting one clears the
// other.
type JobInput struct {
	url         string
	description string
}

func (j *JobInput) SetURL(v string) {
	j.url = v
	if strings.TrimSpace(v) != "" {
		j.description = ""
	}
}

func (j *JobInput) SetDescription(v string) {
	j.description = v
	if strings.TrimSpace(v) != "" {
		j.url = ""
	}
}

func (j JobInput) URL() string         { return j.url }
func (j JobInput) Description() string { return j.description }

// JobData is the text sent as jobData, the URL when one is set.
func (j JobInput) JobData() string {
	if u := strings.TrimSpace(j.url); u != "" {
		return u
	}
	return strings.TrimSpace(j.description)
}
