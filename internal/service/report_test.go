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

func TestDashboardAdminOnly(t *testing.T) {
	svc := NewReportService(newUserRepo(), newLeadRepo())

	_, err := svc.Dashboard(context.Background(), authz.Actor{ID: primitive.NewObjectID(), Role: model.RoleManager})
	assert.ErrorIs(t, err, apperr.ErrNotAuthorized)

	report, err := svc.Dashboard(context.Background(), authz.Actor{ID: primitive.NewObjectID(), Role: model.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, 0, report.TotalLeads)
	assert.NotNil(t, report.TopReps)
}

func TestBuildDashboardTotals(t *testing.T) {
	rep := &model.User{ID: primitive.NewObjectID(), Name: "Rep", Role: model.RoleUser}
	boss := &model.User{ID: primitive.NewObjectID(), Name: "Boss", Role: model.RoleAdmin}

	leads := []*model.Lead{
		{AssignedTo: rep.ID, Status: model.LeadStatusWon, Value: 100},
		{AssignedTo: rep.ID, Status: model.LeadStatusLost, Value: 999},
		{Status: model.LeadStatusWon, Value: 50}, // unassigned still counts in totals
	}

	report := BuildDashboard([]*model.User{rep, boss}, leads, 5)

	// Admins are excluded from the user count.
	assert.Equal(t, 1, report.TotalUsers)
	assert.Equal(t, 3, report.TotalLeads)
	assert.Equal(t, 2, report.WonLeads)
	assert.Equal(t, 150.0, report.TotalRevenue)

	require.Len(t, report.TopReps, 1)
	assert.Equal(t, rep.ID.Hex(), report.TopReps[0].UserID)
	assert.Equal(t, "Rep", report.TopReps[0].Name)
	assert.Equal(t, 2, report.TopReps[0].TotalLeads)
	assert.Equal(t, 1, report.TopReps[0].WonLeads)
	assert.Equal(t, 100.0, report.TopReps[0].Revenue)
}

// A rep with one big won lead outranks a rep with more, smaller wins:
// ranking is by revenue, not by lead count.
func TestBuildDashboardRanking(t *testing.T) {
	u1 := primitive.NewObjectID()
	u2 := primitive.NewObjectID()

	leads := []*model.Lead{
		{AssignedTo: u1, Status: model.LeadStatusWon, Value: 40},
		{AssignedTo: u1, Status: model.LeadStatusWon, Value: 60},
		{AssignedTo: u2, Status: model.LeadStatusWon, Value: 150},
	}

	report := BuildDashboard(nil, leads, 5)
	require.Len(t, report.TopReps, 2)
	assert.Equal(t, u2.Hex(), report.TopReps[0].UserID)
	assert.Equal(t, u1.Hex(), report.TopReps[1].UserID)
}

// Revenue ties keep first-appearance order, so the ranking is reproducible
// for a given lead order.
func TestBuildDashboardStableTies(t *testing.T) {
	first := primitive.NewObjectID()
	second := primitive.NewObjectID()

	leads := []*model.Lead{
		{AssignedTo: first, Status: model.LeadStatusWon, Value: 100},
		{AssignedTo: second, Status: model.LeadStatusWon, Value: 100},
	}

	report := BuildDashboard(nil, leads, 5)
	require.Len(t, report.TopReps, 2)
	assert.Equal(t, first.Hex(), report.TopReps[0].UserID)
	assert.Equal(t, second.Hex(), report.TopReps[1].UserID)
}

func TestBuildDashboardTopNTruncation(t *testing.T) {
	leads := make([]*model.Lead, 0, 7)
	for i := 0; i < 7; i++ {
		leads = append(leads, &model.Lead{
			AssignedTo: primitive.NewObjectID(),
			Status:     model.LeadStatusWon,
			Value:      float64(100 - i),
		})
	}

	report := BuildDashboard(nil, leads, 5)
	require.Len(t, report.TopReps, 5)
	assert.Equal(t, 100.0, report.TopReps[0].Revenue)
	assert.Equal(t, 96.0, report.TopReps[4].Revenue)
}
