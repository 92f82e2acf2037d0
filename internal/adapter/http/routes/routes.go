package routes

import (
	"log"
	"os"
	"strconv"

	_ "construtora_obraprima/docs" // This will be auto-generated
	"construtora_obraprima/internal/adapter/http/handlers"
	repository2 "construtora_obraprima/internal/adapter/persistence/repository"
	"construtora_obraprima/internal/infrastructure/ai"
	"construtora_obraprima/internal/infrastructure/database"
	"construtora_obraprima/internal/infrastructure/messaging"
	"construtora_obraprima/internal/infrastructure/payments"
	"construtora_obraprima/internal/usecase"
	"construtora_obraprima/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// defaultStaffInboxUser receives client-initiated notifications when no
// STAFF_INBOX_USER_ID is configured.
const defaultStaffInboxUser = "equipe-interna"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	projectRepo := repository2.NewProjectDynamoRepository(ddb)
	budgetRepo := repository2.NewBudgetDynamoRepository(ddb)
	appointmentRepo := repository2.NewAppointmentDynamoRepository(ddb)
	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)
	notificationRepo := repository2.NewNotificationDynamoRepository(ddb)
	diaryRepo := repository2.NewWorkDiaryDynamoRepository(ddb)

	var channel interfaces.INotificationChannel
	webhook, err := messaging.NewWebhookChannel(os.Getenv("NOTIFICATION_WEBHOOK_URL"))
	if err != nil {
		log.Printf("External notification channel not configured: %v", err)
	} else {
		channel = webhook
	}
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, channel)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	staffInbox := os.Getenv("STAFF_INBOX_USER_ID")
	if staffInbox == "" {
		staffInbox = defaultStaffInboxUser
	}

	lifecycleUseCase := usecase.NewLifecycleUseCase(
		projectRepo,
		budgetRepo,
		appointmentRepo,
		invoiceRepo,
		notificationUseCase,
		paymentGateway,
		staffInbox,
	)

	var annotator interfaces.IDiaryAnnotator
	anthropic, err := ai.NewAnthropicAnnotator(os.Getenv("ANTHROPIC_API_KEY"), os.Getenv("ANTHROPIC_MODEL"))
	if err != nil {
		log.Printf("Diary annotator not configured: %v", err)
	} else {
		annotator = anthropic
	}

	projectHandler := handlers.NewProjectHandler(usecase.NewProjectUseCase(projectRepo), lifecycleUseCase)
	budgetHandler := handlers.NewBudgetHandler(usecase.NewBudgetUseCase(budgetRepo), lifecycleUseCase)
	appointmentHandler := handlers.NewAppointmentHandler(usecase.NewAppointmentUseCase(appointmentRepo), lifecycleUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(usecase.NewInvoiceUseCase(invoiceRepo), lifecycleUseCase)
	diaryHandler := handlers.NewDiaryHandler(usecase.NewDiaryUseCase(diaryRepo, annotator))
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addObraRoutes(v1, projectHandler, budgetHandler, appointmentHandler, invoiceHandler, diaryHandler, notificationHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
