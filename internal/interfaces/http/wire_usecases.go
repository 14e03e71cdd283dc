package http

import (
	adminUsecases "oficina/internal/application/admin/usecases"
	clientUsecases "oficina/internal/application/client/usecases"
	notificationUsecases "oficina/internal/application/notification/usecases"
	ticketUsecases "oficina/internal/application/ticket/usecases"
)

// allUseCases holds every use case served over HTTP.
type allUseCases struct {
	// Admin
	loginUC          *adminUsecases.LoginUseCase
	getProfileUC     *adminUsecases.GetProfileUseCase
	uploadPhotoUC    *adminUsecases.UploadPhotoUseCase
	listAccessLogsUC *adminUsecases.ListAccessLogsUseCase

	// Clients
	createClientUC      *clientUsecases.CreateClientUseCase
	listClientsUC       *clientUsecases.ListClientsUseCase
	searchClientsUC     *clientUsecases.SearchClientsUseCase
	getClientUC         *clientUsecases.GetClientUseCase
	listClientTicketsUC *clientUsecases.ListClientTicketsUseCase
	updateClientUC      *clientUsecases.UpdateClientUseCase
	deleteClientUC      *clientUsecases.DeleteClientUseCase

	// Tickets
	createTicketUC    *ticketUsecases.CreateTicketUseCase
	listTicketsUC     *ticketUsecases.ListTicketsUseCase
	listMyTicketsUC   *ticketUsecases.ListMyTicketsUseCase
	getTicketByCodeUC *ticketUsecases.GetTicketByCodeUseCase
	getTicketDetailUC *ticketUsecases.GetTicketDetailUseCase
	trackTicketUC     *ticketUsecases.TrackTicketUseCase
	updateTicketUC    *ticketUsecases.UpdateTicketUseCase
	receiptUC         *ticketUsecases.GenerateReceiptUseCase
	addUpdateLogUC    *ticketUsecases.AddUpdateLogUseCase
	listUpdateLogsUC  *ticketUsecases.ListUpdateLogsUseCase
	ticketStatsUC     *ticketUsecases.TicketStatsUseCase

	// Notifications
	sendUpdateEmailUC *notificationUsecases.SendUpdateEmailUseCase
}

func (c *Container) initUseCases() {
	r := c.repos
	s := c.svcs
	log := c.log

	c.ucs = &allUseCases{
		loginUC:          adminUsecases.NewLoginUseCase(r.adminRepo, r.accessLogRepo, s.hasher, s.jwtSvc, s.limiter, log),
		getProfileUC:     adminUsecases.NewGetProfileUseCase(r.adminRepo, log),
		uploadPhotoUC:    adminUsecases.NewUploadPhotoUseCase(r.adminRepo, s.photos, log),
		listAccessLogsUC: adminUsecases.NewListAccessLogsUseCase(r.accessLogRepo, log),

		createClientUC:      clientUsecases.NewCreateClientUseCase(r.clientRepo, log),
		listClientsUC:       clientUsecases.NewListClientsUseCase(r.clientRepo, log),
		searchClientsUC:     clientUsecases.NewSearchClientsUseCase(r.clientRepo, log),
		getClientUC:         clientUsecases.NewGetClientUseCase(s.guard, r.ticketRepo, log),
		listClientTicketsUC: clientUsecases.NewListClientTicketsUseCase(s.guard, r.ticketRepo, log),
		updateClientUC:      clientUsecases.NewUpdateClientUseCase(s.guard, r.clientRepo, log),
		deleteClientUC:      clientUsecases.NewDeleteClientUseCase(s.guard, r.clientRepo, log),

		createTicketUC:    ticketUsecases.NewCreateTicketUseCase(s.guard, r.ticketRepo, s.txMgr, s.notifier, log),
		listTicketsUC:     ticketUsecases.NewListTicketsUseCase(r.ticketRepo, log),
		listMyTicketsUC:   ticketUsecases.NewListMyTicketsUseCase(r.ticketRepo, log),
		getTicketByCodeUC: ticketUsecases.NewGetTicketByCodeUseCase(s.guard, log),
		getTicketDetailUC: ticketUsecases.NewGetTicketDetailUseCase(s.guard, r.updateLogRepo, log),
		trackTicketUC:     ticketUsecases.NewTrackTicketUseCase(r.ticketRepo, log),
		updateTicketUC:    ticketUsecases.NewUpdateTicketUseCase(s.guard, r.ticketRepo, r.updateLogRepo, log),
		receiptUC:         ticketUsecases.NewGenerateReceiptUseCase(s.guard, s.receipts, r.accessLogRepo, log),
		addUpdateLogUC:    ticketUsecases.NewAddUpdateLogUseCase(s.guard, r.updateLogRepo, log),
		listUpdateLogsUC:  ticketUsecases.NewListUpdateLogsUseCase(s.guard, r.updateLogRepo, log),
		ticketStatsUC:     ticketUsecases.NewTicketStatsUseCase(r.ticketRepo, log),

		sendUpdateEmailUC: notificationUsecases.NewSendUpdateEmailUseCase(s.templates, s.mailer, log),
	}
}
