package model

// Task is the domain model for a todo entry.
type Task struct {
	ID   uint64 `json:"id" yaml:"id"`
	Done bool   `json:"done" yaml:"done"`
	Text string `json:"text" yaml:"text"`
}

// NextID returns max existing id + 1, or 1 for an empty list.
func NextID(tasks []Task) uint64 {
	var hi uint64
	for _, t := range tasks {
		if t.ID > hi {
			hi = t.ID
		}
	}
	return hi + 1
}

// IndexOf returns the position of the first task with the given id, or -1.
func IndexOf(tasks []Task, id uint64) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Stats counts done and pending tasks.
func Stats(tasks []Task) (done, pending int) {
	for _, t := range tasks {
		if t.Done {
			done++
		} else {
			pending++
		}
	}
	return
}
