package domain

// TaskFilter selects a view over an already-fetched task collection.
//
// "Assigned to me" and "created by me" are deliberately separate filters;
// there is no combined "mine" view.
type TaskFilter string

const (
	FilterAll          TaskFilter = "all"
	FilterAssignedToMe TaskFilter = "assigned_to_me"
	FilterCreatedByMe  TaskFilter = "created_by_me"
	FilterPending      TaskFilter = TaskFilter(TaskStatusPending)
	FilterInProgress   TaskFilter = TaskFilter(TaskStatusInProgress)
	FilterCompleted    TaskFilter = TaskFilter(TaskStatusCompleted)
)

// IsValid checks if the filter is one of the allowed values.
func (f TaskFilter) IsValid() bool {
	switch f {
	case FilterAll, FilterAssignedToMe, FilterCreatedByMe,
		FilterPending, FilterInProgress, FilterCompleted:
		return true
	default:
		return false
	}
}

// FilterTasks returns the subset of tasks matching the filter for the acting
// user. It is a pure function: no fetching, and the input order is preserved.
func FilterTasks(tasks []*Task, filter TaskFilter, actingUserID string) ([]*Task, error) {
	if !filter.IsValid() {
		return nil, ErrInvalidFilter
	}

	if filter == FilterAll {
		return tasks, nil
	}

	filtered := make([]*Task, 0, len(tasks))
	for _, task := range tasks {
		switch filter {
		case FilterAssignedToMe:
			if task.IsAssignedTo(actingUserID) {
				filtered = append(filtered, task)
			}
		case FilterCreatedByMe:
			if task.IsCreatedBy(actingUserID) {
				filtered = append(filtered, task)
			}
		default:
			if task.Status == TaskStatus(filter) {
				filtered = append(filtered, task)
			}
		}
	}
	return filtered, nil
}
