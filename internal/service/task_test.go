package service

import (
	"context"
	"testing"

	"salesdesk/internal/apperr"
	"salesdesk/internal/authz"
	"salesdesk/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTaskCreateDefaultsAssignee(t *testing.T) {
	actor := authz.Actor{ID: primitive.NewObjectID(), Role: model.RoleUser}
	svc := NewTaskService(newTaskRepo())

	task, err := svc.Create(context.Background(), actor, &model.CreateTaskRequest{
		Title: "Call back", Type: "call",
	})
	require.NoError(t, err)
	assert.Equal(t, actor.ID, task.AssignedTo)
	assert.Equal(t, actor.ID, task.CreatedBy)
	assert.Equal(t, model.TaskStatusPending, task.Status)
	assert.Nil(t, task.CompletedAt)

	other := primitive.NewObjectID()
	task, err = svc.Create(context.Background(), actor, &model.CreateTaskRequest{
		Title: "Demo", Type: "demo", AssignedTo: other.Hex(),
	})
	require.NoError(t, err)
	assert.Equal(t, other, task.AssignedTo)
	assert.Equal(t, actor.ID, task.CreatedBy)
}

func TestTaskListIsWorkQueue(t *testing.T) {
	assignee := authz.Actor{ID: primitive.NewObjectID(), Role: model.RoleUser}
	creator := authz.Actor{ID: primitive.NewObjectID(), Role: model.RoleUser}

	task := &model.Task{ID: primitive.NewObjectID(), CreatedBy: creator.ID, AssignedTo: assignee.ID}
	svc := NewTaskService(newTaskRepo(task))
	ctx := context.Background()

	mine, err := svc.List(ctx, assignee)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	// The creator does not see the task in the list but can still fetch it.
	listed, err := svc.List(ctx, creator)
	require.NoError(t, err)
	assert.Len(t, listed, 0)

	got, err := svc.Get(ctx, creator, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, got.ID)
}

func TestTaskCompleteStampsTime(t *testing.T) {
	assignee := authz.Actor{ID: primitive.NewObjectID(), Role: model.RoleUser}
	task := &model.Task{ID: primitive.NewObjectID(), CreatedBy: primitive.NewObjectID(), AssignedTo: assignee.ID, Status: model.TaskStatusPending}
	svc := NewTaskService(newTaskRepo(task))

	updated, err := svc.Update(context.Background(), assignee, task.ID, &model.UpdateTaskRequest{
		Title: "Call back", Status: model.TaskStatusCompleted,
	})
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusCompleted, updated.Status)
	require.NotNil(t, updated.CompletedAt)
	assert.False(t, updated.CompletedAt.IsZero())
}

// The assignee may update a task but only the creator may delete it.
func TestTaskAssigneeCannotDelete(t *testing.T) {
	assignee := authz.Actor{ID: primitive.NewObjectID(), Role: model.RoleUser}
	creator := authz.Actor{ID: primitive.NewObjectID(), Role: model.RoleUser}

	task := &model.Task{ID: primitive.NewObjectID(), CreatedBy: creator.ID, AssignedTo: assignee.ID}
	repo := newTaskRepo(task)
	svc := NewTaskService(repo)
	ctx := context.Background()

	_, err := svc.Update(ctx, assignee, task.ID, &model.UpdateTaskRequest{Title: "Renamed"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, assignee, task.ID), apperr.ErrNotAuthorized)

	// And the creator the other way around.
	_, err = svc.Update(ctx, creator, task.ID, &model.UpdateTaskRequest{Title: "Again"})
	assert.ErrorIs(t, err, apperr.ErrNotAuthorized)
	require.NoError(t, svc.Delete(ctx, creator, task.ID))
	assert.Len(t, repo.docs, 0)
}
