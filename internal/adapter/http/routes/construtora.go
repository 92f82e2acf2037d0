package routes

import (
	"construtora_obraprima/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects      = "/projects"
	PathBudgets       = "/budgets"
	PathAppointments  = "/appointments"
	PathInvoices      = "/invoices"
	PathDiaries       = "/diaries"
	PathNotifications = "/notifications"
)

func addObraRoutes(
	rg *gin.RouterGroup,
	projectHandler *handlers.ProjectHandler,
	budgetHandler *handlers.BudgetHandler,
	appointmentHandler *handlers.AppointmentHandler,
	invoiceHandler *handlers.InvoiceHandler,
	diaryHandler *handlers.DiaryHandler,
	notificationHandler *handlers.NotificationHandler,
) {
	projects := rg.Group(PathProjects)
	{
		projects.POST("", projectHandler.Create)
		projects.GET("", projectHandler.ListByClient)
		projects.GET("/:id", projectHandler.GetByID)
		projects.PATCH("/:id/progress", projectHandler.UpdateProgress)
		projects.PATCH("/:id/status", projectHandler.PatchStatus)
	}

	budgets := rg.Group(PathBudgets)
	{
		budgets.POST("", budgetHandler.Create)
		budgets.GET("", budgetHandler.ListByClient)
		budgets.GET("/:id", budgetHandler.GetByID)
		budgets.POST("/:id/send", budgetHandler.Send)
		budgets.PATCH("/:id/status", budgetHandler.PatchStatus)
	}

	appointments := rg.Group(PathAppointments)
	{
		appointments.POST("", appointmentHandler.Create)
		appointments.GET("", appointmentHandler.ListByClient)
		appointments.GET("/:id", appointmentHandler.GetByID)
		appointments.PATCH("/:id/status", appointmentHandler.PatchStatus)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", invoiceHandler.Create)
		invoices.GET("", invoiceHandler.ListByClient)
		invoices.GET("/:id", invoiceHandler.GetByID)
		invoices.PATCH("/:id/status", invoiceHandler.PatchStatus)
	}

	diaries := rg.Group(PathDiaries)
	{
		diaries.POST("", diaryHandler.Create)
		diaries.GET("", diaryHandler.ListByProject)
		diaries.GET("/:id", diaryHandler.GetByID)
	}

	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", notificationHandler.ListByUser)
		notifications.PATCH("/:id/read", notificationHandler.MarkRead)
	}
}
