package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	// Auth endpoints
	LoginOperator  gin.HandlerFunc
	LogoutOperator gin.HandlerFunc

	// Session endpoints
	ListSessions      gin.HandlerFunc
	GetSnapshot       gin.HandlerFunc
	CreateSession     gin.HandlerFunc
	GetSession        gin.HandlerFunc
	UpdateSession     gin.HandlerFunc
	DeleteSession     gin.HandlerFunc
	GetSummary        gin.HandlerFunc
	TransitionSession gin.HandlerFunc
	GenerateShoot     gin.HandlerFunc
	CreateInvoice     gin.HandlerFunc
	EmailClient       gin.HandlerFunc
	GetDocument       gin.HandlerFunc

	// Catalog endpoints
	ListPackages  gin.HandlerFunc
	ListAddOns    gin.HandlerFunc
	UpsertPackage gin.HandlerFunc
	UpsertAddOn   gin.HandlerFunc
}
