package controllers

import (
	"net/http"

	"github.com/AlexHerbertGit/Kobra-Kai-Web-Application/services"

	"github.com/gin-gonic/gin"
)

type PushController struct {
	Push *services.PushService
}

func NewPushController(ps *services.PushService) *PushController {
	return &PushController{Push: ps}
}

func (pc *PushController) Subscribe(c *gin.Context) {
	if pc.Push == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "push notifications not configured"})
		return
	}

	var req services.RegisterDeviceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, err := pc.Push.RegisterDevice(c.GetUint("userID"), req.Platform, req.Token)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"endpoint_arn": sub.EndpointARN})
}
