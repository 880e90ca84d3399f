package server

import (
	"salesdesk/internal/auth"
	"salesdesk/internal/handler"
	"salesdesk/internal/repository"
	"salesdesk/internal/service"
)

// Services bundles every business-logic service.
type Services struct {
	Auth          *service.AuthService
	Users         *service.UserService
	Leads         *service.LeadService
	Tasks         *service.TaskService
	Meetings      *service.MeetingService
	Customers     *service.CustomerService
	Complaints    *service.ComplaintService
	Documents     *service.DocumentService
	Activities    *service.ActivityService
	Notifications *service.NotificationService
	Mail          *service.MailService
	Reports       *service.ReportService
}

// InitServices constructs the service layer over the store.
func InitServices(store *repository.Store, tokens *auth.Tokens) *Services {
	return &Services{
		Auth:          service.NewAuthService(store.Users, tokens),
		Users:         service.NewUserService(store.Users),
		Leads:         service.NewLeadService(store.Leads, store.Notifications),
		Tasks:         service.NewTaskService(store.Tasks),
		Meetings:      service.NewMeetingService(store.Meetings),
		Customers:     service.NewCustomerService(store.Customers),
		Complaints:    service.NewComplaintService(store.Complaints),
		Documents:     service.NewDocumentService(store.Documents),
		Activities:    service.NewActivityService(store.Activities),
		Notifications: service.NewNotificationService(store.Notifications),
		Mail:          service.NewMailService(store.Mail, store.Users),
		Reports:       service.NewReportService(store.Users, store.Leads),
	}
}

// Handlers bundles every HTTP handler.
type Handlers struct {
	Auth          *handler.AuthHandler
	Users         *handler.UserHandler
	Leads         *handler.LeadHandler
	Tasks         *handler.TaskHandler
	Meetings      *handler.MeetingHandler
	Customers     *handler.CustomerHandler
	Complaints    *handler.ComplaintHandler
	Documents     *handler.DocumentHandler
	Activities    *handler.ActivityHandler
	Notifications *handler.NotificationHandler
	Mail          *handler.MailHandler
	Reports       *handler.ReportHandler
}

// InitHandlers constructs the handler layer over the services.
func InitHandlers(s *Services) *Handlers {
	return &Handlers{
		Auth:          handler.NewAuthHandler(s.Auth, s.Users),
		Users:         handler.NewUserHandler(s.Users),
		Leads:         handler.NewLeadHandler(s.Leads),
		Tasks:         handler.NewTaskHandler(s.Tasks),
		Meetings:      handler.NewMeetingHandler(s.Meetings),
		Customers:     handler.NewCustomerHandler(s.Customers),
		Complaints:    handler.NewComplaintHandler(s.Complaints),
		Documents:     handler.NewDocumentHandler(s.Documents),
		Activities:    handler.NewActivityHandler(s.Activities),
		Notifications: handler.NewNotificationHandler(s.Notifications),
		Mail:          handler.NewMailHandler(s.Mail),
		Reports:       handler.NewReportHandler(s.Reports),
	}
}
