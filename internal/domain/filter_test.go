package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interactkolhapur/clubsite/internal/domain"
)

const (
	userA = "00000000-0000-0000-0000-00000000000a"
	userB = "00000000-0000-0000-0000-00000000000b"
)

func sampleTasks() []*domain.Task {
	assigneeA := userA
	assigneeB := userB
	return []*domain.Task{
		{ID: "t1", Status: domain.TaskStatusPending, CreatorID: userA, AssigneeID: &assigneeB},
		{ID: "t2", Status: domain.TaskStatusInProgress, CreatorID: userB, AssigneeID: &assigneeA},
		{ID: "t3", Status: domain.TaskStatusCompleted, CreatorID: userA},
		{ID: "t4", Status: domain.TaskStatusPending, CreatorID: userB, AssigneeID: &assigneeA},
	}
}

func taskIDs(tasks []*domain.Task) []string {
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return ids
}

func TestFilterTasks(t *testing.T) {
	tests := []struct {
		name   string
		filter domain.TaskFilter
		want   []string
	}{
		{"all returns everything", domain.FilterAll, []string{"t1", "t2", "t3", "t4"}},
		{"assigned to me", domain.FilterAssignedToMe, []string{"t2", "t4"}},
		{"created by me", domain.FilterCreatedByMe, []string{"t1", "t3"}},
		{"pending", domain.FilterPending, []string{"t1", "t4"}},
		{"in progress", domain.FilterInProgress, []string{"t2"}},
		{"completed", domain.FilterCompleted, []string{"t3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.FilterTasks(sampleTasks(), tt.filter, userA)
			require.NoError(t, err)
			assert.Equal(t, tt.want, taskIDs(got))
		})
	}
}

func TestFilterTasks_InvalidFilter(t *testing.T) {
	_, err := domain.FilterTasks(sampleTasks(), "urgent", userA)
	assert.ErrorIs(t, err, domain.ErrInvalidFilter)
}

func TestFilterTasks_UnassignedTasksNeverMatchAssignee(t *testing.T) {
	tasks := []*domain.Task{
		{ID: "t1", Status: domain.TaskStatusPending, CreatorID: userA},
	}

	got, err := domain.FilterTasks(tasks, domain.FilterAssignedToMe, userA)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFilterTasks_PreservesOrder(t *testing.T) {
	assignee := userA
	tasks := []*domain.Task{
		{ID: "t3", Status: domain.TaskStatusPending, CreatorID: userB, AssigneeID: &assignee},
		{ID: "t1", Status: domain.TaskStatusPending, CreatorID: userB, AssigneeID: &assignee},
		{ID: "t2", Status: domain.TaskStatusPending, CreatorID: userB, AssigneeID: &assignee},
	}

	got, err := domain.FilterTasks(tasks, domain.FilterAssignedToMe, userA)
	require.NoError(t, err)
	assert.Equal(t, []string{"t3", "t1", "t2"}, taskIDs(got))
}

func TestTaskStatusIsValid(t *testing.T) {
	assert.True(t, domain.TaskStatusPending.IsValid())
	assert.True(t, domain.TaskStatusInProgress.IsValid())
	assert.True(t, domain.TaskStatusCompleted.IsValid())
	assert.False(t, domain.TaskStatus("done").IsValid())
	assert.False(t, domain.TaskStatus("").IsValid())
}

func TestTaskPriorityIsValid(t *testing.T) {
	assert.True(t, domain.TaskPriorityLow.IsValid())
	assert.True(t, domain.TaskPriorityMedium.IsValid())
	assert.True(t, domain.TaskPriorityHigh.IsValid())
	assert.False(t, domain.TaskPriority("urgent").IsValid())
}
