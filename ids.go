package main

import "strings"

// Hadoop IDs all share the same shape: a prefix, the cluster timestamp,
// and a step number, followed by increasingly specific components. For
// example, attempt_201512232143_0008_m_000001_3 belongs to task
// task_201512232143_0008_m_000001, which belongs to job
// job_201512232143_0008.

// toJobID derives a job ID from an attempt or task ID. Returns "" if id
// doesn't have enough components.
func toJobID(id string) string {
	parts := strings.Split(id, "_")
	if len(parts) < 3 {
		return ""
	}
	return strings.Join(append([]string{"job"}, parts[1:3]...), "_")
}

// attemptToTaskID strips the attempt number off an attempt ID. Returns ""
// if id doesn't look like an attempt ID.
func attemptToTaskID(attemptID string) string {
	parts := strings.Split(attemptID, "_")
	if len(parts) < 6 || parts[0] != "attempt" {
		return ""
	}
	return strings.Join(append([]string{"task"}, parts[1:len(parts)-1]...), "_")
}

// addImpliedIDs fills in any identifiers implied by the ones the error
// record already carries.
func addImpliedIDs(e *errorRecord) {
	if e.AttemptID == "" {
		return
	}
	if e.TaskID == "" {
		e.TaskID = attemptToTaskID(e.AttemptID)
	}
	if e.JobID == "" {
		e.JobID = toJobID(e.AttemptID)
	}
}
