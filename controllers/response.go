package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Natanjhon7/delivery-backend-v2/apperrors"
)

// All responses share one envelope: a success flag, a message on failure and
// a data payload on success.

func respond(c *gin.Context, status int, payload gin.H) {
	payload["success"] = true
	c.JSON(status, payload)
}

func respondError(c *gin.Context, err error) {
	appErr := apperrors.From(err)
	c.JSON(appErr.Code, gin.H{
		"success": false,
		"message": appErr.Message,
	})
}
