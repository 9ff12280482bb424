package routes

import (
	"github.com/nafhansa/JobTracker-sub000/handlers/payment/fastspring"
	"github.com/nafhansa/JobTracker-sub000/handlers/payment/midtrans"
	"github.com/nafhansa/JobTracker-sub000/handlers/payment/paddle"
	"github.com/nafhansa/JobTracker-sub000/handlers/payment/paypal"
	"github.com/nafhansa/JobTracker-sub000/middleware"

	"github.com/gin-gonic/gin"
)

func PaymentRoutes(r *gin.Engine) {
	r.POST("/api/payment/midtrans/checkout", middleware.JWTAuth(), midtrans.CreateCheckout)
	r.POST("/api/payment/midtrans/webhook", midtrans.Webhook)
	r.POST("/api/payment/midtrans/verify", middleware.JWTAuth(), midtrans.Verify)

	r.POST("/api/webhook/paddle", paddle.Webhook)
	r.POST("/api/webhook/paypal", paypal.Webhook)

	// FastSpring posts its batches to the bare webhook path
	r.POST("/api/webhook", fastspring.Webhook)
}
