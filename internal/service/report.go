package service

import (
	"context"
	"sort"

	"salesdesk/internal/apperr"
	"salesdesk/internal/authz"
	"salesdesk/internal/config"
	"salesdesk/internal/model"
	"salesdesk/pkg/generic"

	"go.mongodb.org/mongo-driver/bson"
)

// RepPerformance is one sales rep's aggregated lead figures.
type RepPerformance struct {
	UserID     string  `json:"userId"`
	Name       string  `json:"name"`
	TotalLeads int     `json:"totalLeads"`
	WonLeads   int     `json:"wonLeads"`
	Revenue    float64 `json:"revenue"`
}

// DashboardReport is the admin dashboard summary.
type DashboardReport struct {
	TotalUsers   int              `json:"totalUsers"`
	TotalLeads   int              `json:"totalLeads"`
	WonLeads     int              `json:"wonLeads"`
	TotalRevenue float64          `json:"totalRevenue"`
	TopReps      []RepPerformance `json:"topReps"`
}

// ReportService computes the admin dashboard aggregation. Recomputed from
// scratch on every request; nothing is stored.
type ReportService struct {
	users generic.BaseRepository[*model.User]
	leads generic.BaseRepository[*model.Lead]
}

func NewReportService(users generic.BaseRepository[*model.User], leads generic.BaseRepository[*model.Lead]) *ReportService {
	return &ReportService{users: users, leads: leads}
}

// Dashboard builds the admin report over the full user and lead collections.
func (s *ReportService) Dashboard(ctx context.Context, actor authz.Actor) (*DashboardReport, error) {
	if !actor.IsAdmin() {
		return nil, apperr.ErrNotAuthorized
	}

	users, err := s.users.Find(ctx, nil, bson.D{})
	if err != nil {
		return nil, err
	}
	leads, err := s.leads.Find(ctx, nil, bson.D{{Key: "createdAt", Value: -1}})
	if err != nil {
		return nil, err
	}

	return BuildDashboard(users, leads, config.DefaultTopRepsLimit), nil
}

// BuildDashboard is the pure aggregation: won-lead revenue totals plus the
// top-N reps by revenue. Revenue ties keep the order reps first appear in
// the lead list, so results are reproducible for a given input order.
func BuildDashboard(users []*model.User, leads []*model.Lead, topN int) *DashboardReport {
	report := &DashboardReport{
		TotalLeads: len(leads),
		TopReps:    []RepPerformance{},
	}

	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID.Hex()] = u.Name
		if u.Role != model.RoleAdmin {
			report.TotalUsers++
		}
	}

	perRep := make(map[string]*RepPerformance)
	order := make([]string, 0)

	for _, lead := range leads {
		won := lead.Status == model.LeadStatusWon
		if won {
			report.WonLeads++
			report.TotalRevenue += lead.Value
		}

		if lead.AssignedTo.IsZero() {
			continue
		}
		key := lead.AssignedTo.Hex()
		rep, ok := perRep[key]
		if !ok {
			rep = &RepPerformance{UserID: key, Name: names[key]}
			perRep[key] = rep
			order = append(order, key)
		}
		rep.TotalLeads++
		if won {
			rep.WonLeads++
			rep.Revenue += lead.Value
		}
	}

	ranked := make([]RepPerformance, 0, len(order))
	for _, key := range order {
		ranked = append(ranked, *perRep[key])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue > ranked[j].Revenue
	})
	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	report.TopReps = ranked

	return report
}
